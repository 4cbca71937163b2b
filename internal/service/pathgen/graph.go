package pathgen

import (
	"sort"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
)

// orderByPrerequisites returns course indexes ordered so that every known
// prerequisite appears before the course that requires it. Traversal is
// seeded in descending score order, so the highest-scoring chains come
// first. Prerequisite ids pointing outside the catalog are ignored; cycles
// cannot trap the walk because visited nodes are never re-entered.
func orderByPrerequisites(courses []domain.Course, scores []float64) []int {
	indexByID := make(map[uuid.UUID]int, len(courses))
	for i, c := range courses {
		indexByID[c.ID] = i
	}

	seeds := make([]int, len(courses))
	for i := range seeds {
		seeds[i] = i
	}
	sort.SliceStable(seeds, func(a, b int) bool {
		return scores[seeds[a]] > scores[seeds[b]]
	})

	visited := make([]bool, len(courses))
	order := make([]int, 0, len(courses))

	var visit func(int)
	visit = func(i int) {
		if visited[i] {
			return
		}
		visited[i] = true
		for _, prereqID := range courses[i].PrerequisiteIDs {
			if j, ok := indexByID[prereqID]; ok {
				visit(j)
			}
		}
		order = append(order, i)
	}

	for _, i := range seeds {
		visit(i)
	}

	return order
}

package pathgen

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
)

// ListPaths returns the learner's stored paths with their course sequences
// resolved: courses in exact sequence order, ids without a matching catalog
// record dropped.
func (s *Service) ListPaths(ctx context.Context, learnerID string) ([]ResolvedPath, error) {
	if err := domain.ValidateLearnerID(learnerID); err != nil {
		return nil, err
	}

	paths, err := s.paths.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list paths: %w", err)
	}
	if len(paths) == 0 {
		return []ResolvedPath{}, nil
	}

	// One catalog fetch for the union of all referenced courses.
	idSet := make(map[uuid.UUID]struct{})
	for _, p := range paths {
		for _, id := range p.CourseSequence {
			idSet[id] = struct{}{}
		}
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	courses, err := s.courses.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve path courses: %w", err)
	}

	resolved := make([]ResolvedPath, len(paths))
	for i, p := range paths {
		resolved[i] = ResolvedPath{
			Path:    p,
			Courses: p.ResolveSequence(courses),
		}
	}

	return resolved, nil
}

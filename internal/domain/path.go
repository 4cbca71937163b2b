package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearningPath is a generated, persisted course sequence for one learner.
// Read-only after creation; regeneration replaces the learner's stored path.
type LearningPath struct {
	ID              uuid.UUID
	LearnerID       string
	CourseSequence  []uuid.UUID
	RelevanceScores map[uuid.UUID]float64
	Reasoning       string
	CreatedAt       time.Time
}

// PathCourse is one resolved step of a learning path: the course record plus
// its relevance, when the path scored it.
type PathCourse struct {
	Course Course
	// RelevancePercent is round(score*100); nil when the course has no score.
	RelevancePercent *int
}

// ResolveSequence orders courses exactly by the path's sequence, dropping ids
// with no matching course record, and attaches relevance percentages.
func (p *LearningPath) ResolveSequence(courses []Course) []PathCourse {
	byID := make(map[uuid.UUID]Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	resolved := make([]PathCourse, 0, len(p.CourseSequence))
	for _, id := range p.CourseSequence {
		course, ok := byID[id]
		if !ok {
			continue
		}
		step := PathCourse{Course: course}
		if score, scored := p.RelevanceScores[id]; scored {
			percent := int(score*100 + 0.5)
			step.RelevancePercent = &percent
		}
		resolved = append(resolved, step)
	}

	return resolved
}

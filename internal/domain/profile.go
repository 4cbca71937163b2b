package domain

import (
	"strings"
	"time"
)

// MaxLearnerIDLength bounds the opaque client-generated learner identifier.
const MaxLearnerIDLength = 128

// LearnerProfile is the learner's stated goal and background. Upserted ahead
// of every path generation; keyed by the opaque learner identifier.
type LearnerProfile struct {
	LearnerID        string
	CareerGoal       string
	EducationLevel   EducationLevel
	DesiredSkills    []string
	Interests        []string
	ProficiencyLevel ProficiencyLevel
	UpdatedAt        time.Time
}

// ProfileText is the flattened text used for relevance matching:
// career goal, desired skills, and interests joined with spaces.
func (p *LearnerProfile) ProfileText() string {
	parts := make([]string, 0, 1+len(p.DesiredSkills)+len(p.Interests))
	parts = append(parts, p.CareerGoal)
	parts = append(parts, p.DesiredSkills...)
	parts = append(parts, p.Interests...)
	return strings.Join(parts, " ")
}

// ValidateLearnerID checks the opaque learner identifier. The server treats it
// as a pure correlation key; only presence and length are enforced.
func ValidateLearnerID(id string) error {
	if strings.TrimSpace(id) == "" {
		return NewValidationError("learner_id", "required")
	}
	if len(id) > MaxLearnerIDLength {
		return NewValidationError("learner_id", "max 128 characters")
	}
	return nil
}

// CareerGoalCount is one logged career goal with its usage frequency,
// backing the autocomplete suggestions.
type CareerGoalCount struct {
	CareerGoal string
	Frequency  int
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Course is a catalog course record.
type Course struct {
	ID              uuid.UUID
	Title           string
	Description     string
	DifficultyLevel DifficultyLevel
	EducationLevel  EducationLevel
	Tags            []string
	// PrerequisiteIDs lists courses that should be taken first. Ids pointing
	// outside the catalog are ignored by consumers.
	PrerequisiteIDs []uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Materials []Material
}

// SearchText is the flattened text used for relevance matching:
// title, description, and tags joined with spaces.
func (c *Course) SearchText() string {
	text := c.Title + " " + c.Description
	for _, tag := range c.Tags {
		text += " " + tag
	}
	return text
}

// CourseUpdateParams carries partial-update fields for a course.
// nil means "leave unchanged".
type CourseUpdateParams struct {
	Title           *string
	Description     *string
	DifficultyLevel *DifficultyLevel
	EducationLevel  *EducationLevel
	Tags            []string
	PrerequisiteIDs []uuid.UUID
}

// CourseFilter narrows a catalog listing. Search matches title or description
// by case-insensitive substring; Difficulty matches exactly, case-insensitive.
type CourseFilter struct {
	Search     string
	Difficulty string
}

// IsZero reports whether the filter imposes no constraint.
func (f CourseFilter) IsZero() bool {
	return f.Search == "" && f.Difficulty == ""
}

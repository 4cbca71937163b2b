package domain

import (
	"time"

	"github.com/google/uuid"
)

// Material is a link or uploaded file associated with a course.
type Material struct {
	ID           uuid.UUID
	CourseID     uuid.UUID
	MaterialType MaterialType
	URL          string
	DisplayName  *string
	CreatedAt    time.Time
}

// MaterialUpdateParams carries partial-update fields for a material.
// nil means "leave unchanged"; a DisplayName of ptr("") clears it.
type MaterialUpdateParams struct {
	MaterialType *MaterialType
	URL          *string
	DisplayName  *string
}

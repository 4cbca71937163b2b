package domain

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is one learner-course interaction event, recorded as a
// collaborative-filtering signal.
type Interaction struct {
	ID              uuid.UUID
	LearnerID       string
	CourseID        uuid.UUID
	InteractionType InteractionType
	// Rating is set only for "rate" interactions; bounded 1..5.
	Rating    *int
	CreatedAt time.Time
}

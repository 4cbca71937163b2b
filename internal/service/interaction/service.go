// Package interaction records learner-course interaction events. The events
// feed course popularity signals and future recommendation work.
package interaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
)

type interactionRepo interface {
	Create(ctx context.Context, in *domain.Interaction) (*domain.Interaction, error)
	ListByLearner(ctx context.Context, learnerID string) ([]domain.Interaction, error)
}

// Service provides interaction tracking operations.
type Service struct {
	interactions interactionRepo
	log          *slog.Logger
}

// NewService creates an interaction service.
func NewService(log *slog.Logger, interactions interactionRepo) *Service {
	return &Service{
		interactions: interactions,
		log:          log.With("service", "interaction"),
	}
}

// TrackInput holds the parameters for recording one interaction event.
type TrackInput struct {
	LearnerID       string
	CourseID        uuid.UUID
	InteractionType string
	Rating          *int
}

// Validate checks all fields and collects all errors.
func (i TrackInput) Validate() error {
	var errs []domain.FieldError

	if err := domain.ValidateLearnerID(i.LearnerID); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			errs = append(errs, vErr.Errors...)
		}
	}
	if i.CourseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}

	iType := domain.InteractionType(i.InteractionType)
	if !iType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "interaction_type", Message: "unknown interaction type"})
	}
	if i.Rating != nil {
		switch {
		case iType.IsValid() && iType != domain.InteractionRate:
			errs = append(errs, domain.FieldError{Field: "rating", Message: "rating is only valid for rate interactions"})
		case *i.Rating < 1 || *i.Rating > 5:
			errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
		}
	}
	if i.Rating == nil && iType == domain.InteractionRate {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "required for rate interactions"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Track records one interaction event.
func (s *Service) Track(ctx context.Context, input TrackInput) (*domain.Interaction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.interactions.Create(ctx, &domain.Interaction{
		LearnerID:       input.LearnerID,
		CourseID:        input.CourseID,
		InteractionType: domain.InteractionType(input.InteractionType),
		Rating:          input.Rating,
	})
	if err != nil {
		return nil, fmt.Errorf("track interaction: %w", err)
	}

	s.log.InfoContext(ctx, "interaction tracked",
		slog.String("learner_id", created.LearnerID),
		slog.String("course_id", created.CourseID.String()),
		slog.String("type", created.InteractionType.String()),
	)

	return created, nil
}

// History returns a learner's interaction events, newest first.
func (s *Service) History(ctx context.Context, learnerID string) ([]domain.Interaction, error) {
	if err := domain.ValidateLearnerID(learnerID); err != nil {
		return nil, err
	}

	events, err := s.interactions.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	return events, nil
}

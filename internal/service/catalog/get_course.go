package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
)

// GetCourse returns one course with its materials attached.
func (s *Service) GetCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("course_id", "required")
	}

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	materials, err := s.materials.ListByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list course materials: %w", err)
	}
	course.Materials = materials

	return course, nil
}

package catalog

import (
	"context"
	"fmt"

	"github.com/skillone/skillone-backend/internal/domain"
)

// ListCourses returns catalog courses matching the filter, newest first.
func (s *Service) ListCourses(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error) {
	courses, err := s.courses.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skillone/skillone-backend/internal/domain"
	"github.com/skillone/skillone-backend/pkg/ctxutil"
)

// UpdateCourse applies a partial update to a course. Admin only.
func (s *Service) UpdateCourse(ctx context.Context, input UpdateCourseInput) (*domain.Course, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CourseUpdateParams{
		PrerequisiteIDs: input.PrerequisiteIDs,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		params.Description = &description
	}
	if input.DifficultyLevel != nil {
		level := domain.DifficultyLevel(*input.DifficultyLevel)
		params.DifficultyLevel = &level
	}
	if input.EducationLevel != nil {
		level := domain.EducationLevel(*input.EducationLevel)
		params.EducationLevel = &level
	}
	if input.Tags != nil {
		params.Tags = trimTags(input.Tags)
	}

	course, err := s.courses.Update(ctx, input.CourseID, params)
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}

	s.log.InfoContext(ctx, "course updated",
		slog.String("course_id", course.ID.String()),
	)

	return course, nil
}

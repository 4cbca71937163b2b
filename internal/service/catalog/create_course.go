package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skillone/skillone-backend/internal/domain"
	"github.com/skillone/skillone-backend/pkg/ctxutil"
)

// CreateCourse creates a new catalog course. Admin only.
func (s *Service) CreateCourse(ctx context.Context, input CreateCourseInput) (*domain.Course, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	course, err := s.courses.Create(ctx, &domain.Course{
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		DifficultyLevel: domain.DifficultyLevel(input.DifficultyLevel),
		EducationLevel:  domain.EducationLevel(input.EducationLevel),
		Tags:            trimTags(input.Tags),
		PrerequisiteIDs: input.PrerequisiteIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.log.InfoContext(ctx, "course created",
		slog.String("course_id", course.ID.String()),
		slog.String("title", course.Title),
	)

	return course, nil
}

func trimTags(tags []string) []string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = strings.TrimSpace(tag)
	}
	return out
}

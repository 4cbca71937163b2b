package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
	"github.com/skillone/skillone-backend/pkg/ctxutil"
)

// DeleteCourse removes a course and, through the schema, its materials and
// interaction records. Admin only.
func (s *Service) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if id == uuid.Nil {
		return domain.NewValidationError("course_id", "required")
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}

	s.log.InfoContext(ctx, "course deleted",
		slog.String("course_id", id.String()),
	)

	return nil
}

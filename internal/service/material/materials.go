package material

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
	"github.com/skillone/skillone-backend/pkg/ctxutil"
)

// ListMaterials returns a course's materials, oldest first. The course must
// exist.
func (s *Service) ListMaterials(ctx context.Context, courseID uuid.UUID) ([]domain.Material, error) {
	if courseID == uuid.Nil {
		return nil, domain.NewValidationError("course_id", "required")
	}

	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	materials, err := s.materials.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

// AddMaterial attaches a link material to a course. Admin only.
func (s *Service) AddMaterial(ctx context.Context, input AddMaterialInput) (*domain.Material, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.materials.Create(ctx, &domain.Material{
		CourseID:     input.CourseID,
		MaterialType: domain.MaterialType(input.MaterialType),
		URL:          input.URL,
		DisplayName:  input.DisplayName,
	})
	if err != nil {
		return nil, fmt.Errorf("add material: %w", err)
	}

	s.log.InfoContext(ctx, "material added",
		slog.String("material_id", created.ID.String()),
		slog.String("course_id", created.CourseID.String()),
		slog.String("type", created.MaterialType.String()),
	)

	return created, nil
}

// UpdateMaterial applies a partial update to a material. Admin only.
func (s *Service) UpdateMaterial(ctx context.Context, input UpdateMaterialInput) (*domain.Material, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.MaterialUpdateParams{
		URL:         input.URL,
		DisplayName: input.DisplayName,
	}
	if input.MaterialType != nil {
		mt := domain.MaterialType(*input.MaterialType)
		params.MaterialType = &mt
	}

	updated, err := s.materials.Update(ctx, input.MaterialID, params)
	if err != nil {
		return nil, fmt.Errorf("update material: %w", err)
	}

	s.log.InfoContext(ctx, "material updated",
		slog.String("material_id", updated.ID.String()),
	)

	return updated, nil
}

// DeleteMaterial removes a material. Admin only.
func (s *Service) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if id == uuid.Nil {
		return domain.NewValidationError("material_id", "required")
	}

	if err := s.materials.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete material: %w", err)
	}

	s.log.InfoContext(ctx, "material deleted",
		slog.String("material_id", id.String()),
	)

	return nil
}

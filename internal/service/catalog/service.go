// Package catalog provides course catalog operations: public browsing and
// admin-only management.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
)

type courseRepo interface {
	List(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error)
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CourseUpdateParams) (*domain.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type materialRepo interface {
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.Material, error)
}

// Service provides course catalog operations.
type Service struct {
	courses   courseRepo
	materials materialRepo
	log       *slog.Logger
}

// NewService creates a catalog service.
func NewService(log *slog.Logger, courses courseRepo, materials materialRepo) *Service {
	return &Service{
		courses:   courses,
		materials: materials,
		log:       log.With("service", "catalog"),
	}
}

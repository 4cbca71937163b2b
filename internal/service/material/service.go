// Package material manages course materials: links, documents, and uploaded
// files served from the static file host.
package material

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
)

type materialRepo interface {
	Create(ctx context.Context, m *domain.Material) (*domain.Material, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.Material, error)
	Update(ctx context.Context, id uuid.UUID, params domain.MaterialUpdateParams) (*domain.Material, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type courseRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
}

// uploader pushes file content to the static file host. nil when no storage
// backend is configured; uploads then fail with domain.ErrUnavailable.
type uploader interface {
	Upload(ctx context.Context, fileName string, content io.Reader) (string, error)
}

// Service provides course material operations.
type Service struct {
	materials materialRepo
	courses   courseRepo
	uploader  uploader
	log       *slog.Logger
}

// NewService creates a material service. uploader may be nil when file
// storage is not configured.
func NewService(log *slog.Logger, materials materialRepo, courses courseRepo, up uploader) *Service {
	return &Service{
		materials: materials,
		courses:   courses,
		uploader:  up,
		log:       log.With("service", "material"),
	}
}

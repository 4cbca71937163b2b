package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
)

type courseRepo interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CourseUpdateParams) (*domain.Course, error)
}

type materialRepo interface {
	Create(ctx context.Context, m *domain.Material) (*domain.Material, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result holds counts from a completed seeding run.
type Result struct {
	Courses   int
	Materials int
}

// Seeder inserts a validated seed catalog.
type Seeder struct {
	courses   courseRepo
	materials materialRepo
	tx        txManager
	log       *slog.Logger
}

// New creates a Seeder.
func New(log *slog.Logger, courses courseRepo, materials materialRepo, tx txManager) *Seeder {
	return &Seeder{
		courses:   courses,
		materials: materials,
		tx:        tx,
		log:       log.With("service", "seeder"),
	}
}

// Run inserts the records in one transaction. Courses are created first
// without prerequisites, then linked by a second pass once every title has
// an id. The whole run rolls back on any failure.
func (s *Seeder) Run(ctx context.Context, records []CourseRecord) (Result, error) {
	var result Result

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		idsByTitle := make(map[string]uuid.UUID, len(records))

		for _, rec := range records {
			created, err := s.courses.Create(ctx, &domain.Course{
				Title:           rec.Title,
				Description:     rec.Description,
				DifficultyLevel: domain.DifficultyLevel(rec.DifficultyLevel),
				EducationLevel:  domain.EducationLevel(rec.EducationLevel),
				Tags:            rec.Tags,
			})
			if err != nil {
				return fmt.Errorf("create course %q: %w", rec.Title, err)
			}
			idsByTitle[rec.Title] = created.ID
			result.Courses++

			for _, m := range rec.Materials {
				mat := domain.Material{
					CourseID:     created.ID,
					MaterialType: domain.MaterialType(m.MaterialType),
					URL:          m.URL,
				}
				if m.DisplayName != "" {
					name := m.DisplayName
					mat.DisplayName = &name
				}
				if _, err := s.materials.Create(ctx, &mat); err != nil {
					return fmt.Errorf("create material for %q: %w", rec.Title, err)
				}
				result.Materials++
			}
		}

		for _, rec := range records {
			if len(rec.Prerequisites) == 0 {
				continue
			}
			prereqs := make([]uuid.UUID, 0, len(rec.Prerequisites))
			for _, title := range rec.Prerequisites {
				prereqs = append(prereqs, idsByTitle[title])
			}
			if _, err := s.courses.Update(ctx, idsByTitle[rec.Title], domain.CourseUpdateParams{
				PrerequisiteIDs: prereqs,
			}); err != nil {
				return fmt.Errorf("link prerequisites for %q: %w", rec.Title, err)
			}
		}

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.log.InfoContext(ctx, "catalog seeded",
		slog.Int("courses", result.Courses),
		slog.Int("materials", result.Materials),
	)

	return result, nil
}

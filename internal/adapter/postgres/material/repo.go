// Package material implements persistence for course materials.
package material

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/adapter/postgres"
	"github.com/skillone/skillone-backend/internal/domain"
)

const table = "course_files"

var columns = []string{
	"id", "course_id", "material_type", "url", "display_name", "created_at",
}

// Repo provides course material persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new material repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	CourseID     uuid.UUID `db:"course_id"`
	MaterialType string    `db:"material_type"`
	URL          string    `db:"url"`
	DisplayName  *string   `db:"display_name"`
	CreatedAt    time.Time `db:"created_at"`
}

// Create inserts a new material and returns the persisted record.
// Returns domain.ErrNotFound if the referenced course does not exist.
func (r *Repo) Create(ctx context.Context, m *domain.Material) (*domain.Material, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("course_id", "material_type", "url", "display_name").
		Values(m.CourseID, m.MaterialType.String(), m.URL, m.DisplayName).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create material: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "material", m.CourseID)
	}

	out := toDomain(rec)
	return &out, nil
}

// GetByID returns a material by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get material: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "material", id)
	}

	out := toDomain(rec)
	return &out, nil
}

// ListByCourse returns all materials of a course, oldest first.
func (r *Repo) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.Material, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list materials: %w", err)
	}

	var recs []row
	if err := pgxscan.Select(ctx, q, &recs, sql, args...); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}

	materials := make([]domain.Material, len(recs))
	for i, rec := range recs {
		materials[i] = toDomain(rec)
	}

	return materials, nil
}

// Update modifies a material using partial update params and returns the
// updated record. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.MaterialUpdateParams) (*domain.Material, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder().
		Update(table).
		Where(squirrel.Eq{"id": id})

	changed := false
	if params.MaterialType != nil {
		update = update.Set("material_type", params.MaterialType.String())
		changed = true
	}
	if params.URL != nil {
		update = update.Set("url", *params.URL)
		changed = true
	}
	if params.DisplayName != nil {
		update = update.Set("display_name", *params.DisplayName)
		changed = true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	sql, args, err := update.
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update material: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "material", id)
	}

	out := toDomain(rec)
	return &out, nil
}

// Delete removes a material.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete material: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "material", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("material %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func toDomain(rec row) domain.Material {
	return domain.Material{
		ID:           rec.ID,
		CourseID:     rec.CourseID,
		MaterialType: domain.MaterialType(rec.MaterialType),
		URL:          rec.URL,
		DisplayName:  rec.DisplayName,
		CreatedAt:    rec.CreatedAt,
	}
}

// Package course implements the course catalog repository using PostgreSQL.
package course

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

const table = "courses"

var columns = []string{
	"id", "title", "description", "difficulty_level", "education_level",
	"tags", "prerequisite_course_ids", "created_at", "updated_at",
}

// Repo provides course persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new course repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// row mirrors one courses record for scanning.
type row struct {
	ID              uuid.UUID   `db:"id"`
	Title           string      `db:"title"`
	Description     string      `db:"description"`
	DifficultyLevel string      `db:"difficulty_level"`
	EducationLevel  string      `db:"education_level"`
	Tags            []string    `db:"tags"`
	PrerequisiteIDs []uuid.UUID `db:"prerequisite_course_ids"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"`
}

// GetByID returns a course by primary key.
// Returns domain.ErrNotFound if the course does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get course: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "course", id)
	}

	c := toDomain(rec)
	return &c, nil
}

// List returns catalog courses matching the filter, newest first.
// Search matches title or description by case-insensitive substring;
// Difficulty matches exactly, case-insensitive. Returns an empty slice
// (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}
	if filter.Difficulty != "" {
		query = query.Where(squirrel.Expr("lower(difficulty_level) = lower(?)", filter.Difficulty))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list courses: %w", err)
	}

	var recs []row
	if err := pgxscan.Select(ctx, q, &recs, sql, args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	return toDomainSlice(recs), nil
}

// GetByIDs returns courses for the given ids, in no particular order.
// Missing ids are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Course, error) {
	if len(ids) == 0 {
		return []domain.Course{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get courses by ids: %w", err)
	}

	var recs []row
	if err := pgxscan.Select(ctx, q, &recs, sql, args...); err != nil {
		return nil, fmt.Errorf("get courses by ids: %w", err)
	}

	return toDomainSlice(recs), nil
}

// Create inserts a new course and returns the persisted record.
func (r *Repo) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("title", "description", "difficulty_level", "education_level", "tags", "prerequisite_course_ids").
		Values(
			course.Title,
			course.Description,
			course.DifficultyLevel.String(),
			course.EducationLevel.String(),
			course.Tags,
			prereqsOrEmpty(course.PrerequisiteIDs),
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create course: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "course", course.Title)
	}

	c := toDomain(rec)
	return &c, nil
}

// Update modifies a course using partial update params and returns the
// updated record. Returns domain.ErrNotFound if the course does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CourseUpdateParams) (*domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.DifficultyLevel != nil {
		update = update.Set("difficulty_level", params.DifficultyLevel.String())
	}
	if params.EducationLevel != nil {
		update = update.Set("education_level", params.EducationLevel.String())
	}
	if params.Tags != nil {
		update = update.Set("tags", params.Tags)
	}
	if params.PrerequisiteIDs != nil {
		update = update.Set("prerequisite_course_ids", params.PrerequisiteIDs)
	}

	sql, args, err := update.
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update course: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "course", id)
	}

	c := toDomain(rec)
	return &c, nil
}

// Delete removes a course. CASCADE deletes its materials and interactions.
// Returns domain.ErrNotFound if the course does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete course: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "course", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("course %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func prereqsOrEmpty(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

func toDomain(rec row) domain.Course {
	return domain.Course{
		ID:              rec.ID,
		Title:           rec.Title,
		Description:     rec.Description,
		DifficultyLevel: domain.DifficultyLevel(rec.DifficultyLevel),
		EducationLevel:  domain.EducationLevel(rec.EducationLevel),
		Tags:            rec.Tags,
		PrerequisiteIDs: rec.PrerequisiteIDs,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

func toDomainSlice(recs []row) []domain.Course {
	courses := make([]domain.Course, len(recs))
	for i, rec := range recs {
		courses[i] = toDomain(rec)
	}
	return courses
}

// Package learningpath implements persistence for generated learning paths.
package learningpath

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

const table = "learning_paths"

var columns = []string{
	"id", "learner_id", "course_sequence", "relevance_scores", "reasoning", "created_at",
}

// Repo provides learning path persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new learning path repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID              uuid.UUID          `db:"id"`
	LearnerID       string             `db:"learner_id"`
	CourseSequence  []uuid.UUID        `db:"course_sequence"`
	RelevanceScores map[string]float64 `db:"relevance_scores"`
	Reasoning       string             `db:"reasoning"`
	CreatedAt       time.Time          `db:"created_at"`
}

// Create inserts a new learning path and returns the persisted record.
func (r *Repo) Create(ctx context.Context, path *domain.LearningPath) (*domain.LearningPath, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	scores := make(map[string]float64, len(path.RelevanceScores))
	for id, score := range path.RelevanceScores {
		scores[id.String()] = score
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("learner_id", "course_sequence", "relevance_scores", "reasoning").
		Values(path.LearnerID, path.CourseSequence, scores, path.Reasoning).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create learning path: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "learning path", path.LearnerID)
	}

	return toDomain(rec)
}

// DeleteByLearner removes all stored paths for a learner and reports how
// many were deleted. Deleting for a learner with no paths is not an error.
func (r *Repo) DeleteByLearner(ctx context.Context, learnerID string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"learner_id": learnerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete learning paths: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "learning path", learnerID)
	}

	return tag.RowsAffected(), nil
}

// ListByLearner returns all stored paths for a learner, newest first.
func (r *Repo) ListByLearner(ctx context.Context, learnerID string) ([]domain.LearningPath, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"learner_id": learnerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list learning paths: %w", err)
	}

	var recs []row
	if err := pgxscan.Select(ctx, q, &recs, sql, args...); err != nil {
		return nil, fmt.Errorf("list learning paths: %w", err)
	}

	paths := make([]domain.LearningPath, 0, len(recs))
	for _, rec := range recs {
		path, err := toDomain(rec)
		if err != nil {
			return nil, err
		}
		paths = append(paths, *path)
	}

	return paths, nil
}

func toDomain(rec row) (*domain.LearningPath, error) {
	scores := make(map[uuid.UUID]float64, len(rec.RelevanceScores))
	for key, score := range rec.RelevanceScores {
		id, err := uuid.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("parse relevance score key %q: %w", key, err)
		}
		scores[id] = score
	}

	return &domain.LearningPath{
		ID:              rec.ID,
		LearnerID:       rec.LearnerID,
		CourseSequence:  rec.CourseSequence,
		RelevanceScores: scores,
		Reasoning:       rec.Reasoning,
		CreatedAt:       rec.CreatedAt,
	}, nil
}

// Package careergoal implements the career goal frequency log used to back
// autocomplete suggestions.
package careergoal

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/skillone/skillone-backend/internal/adapter/postgres"
	"github.com/skillone/skillone-backend/internal/domain"
)

const table = "career_goal_logs"

// Repo provides career goal log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new career goal log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Increment records one more use of a career goal, creating the log entry
// with frequency 1 on first sight.
func (r *Repo) Increment(ctx context.Context, goal string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("career_goal", "frequency").
		Values(goal, 1).
		Suffix(`ON CONFLICT (career_goal) DO UPDATE SET
			frequency = career_goal_logs.frequency + 1,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build increment career goal: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "career goal", goal)
	}

	return nil
}

// Suggest returns logged career goals containing the query as a
// case-insensitive substring, most frequent first.
func (r *Repo) Suggest(ctx context.Context, query string, limit int) ([]domain.CareerGoalCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("career_goal", "frequency").
		From(table).
		Where(squirrel.ILike{"career_goal": "%" + query + "%"}).
		OrderBy("frequency DESC", "career_goal ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build suggest career goals: %w", err)
	}

	var recs []struct {
		CareerGoal string `db:"career_goal"`
		Frequency  int    `db:"frequency"`
	}
	if err := pgxscan.Select(ctx, q, &recs, sql, args...); err != nil {
		return nil, fmt.Errorf("suggest career goals: %w", err)
	}

	goals := make([]domain.CareerGoalCount, len(recs))
	for i, rec := range recs {
		goals[i] = domain.CareerGoalCount{CareerGoal: rec.CareerGoal, Frequency: rec.Frequency}
	}

	return goals, nil
}

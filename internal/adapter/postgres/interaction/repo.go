// Package interaction implements persistence for learner-course
// interaction events.
package interaction

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

const table = "learner_course_interactions"

var columns = []string{
	"id", "learner_id", "course_id", "interaction_type", "rating", "created_at",
}

// Repo provides interaction event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new interaction repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID              uuid.UUID `db:"id"`
	LearnerID       string    `db:"learner_id"`
	CourseID        uuid.UUID `db:"course_id"`
	InteractionType string    `db:"interaction_type"`
	Rating          *int      `db:"rating"`
	CreatedAt       time.Time `db:"created_at"`
}

// Create appends a new interaction event and returns the persisted record.
// Returns domain.ErrNotFound if the referenced course does not exist.
func (r *Repo) Create(ctx context.Context, in *domain.Interaction) (*domain.Interaction, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("learner_id", "course_id", "interaction_type", "rating").
		Values(in.LearnerID, in.CourseID, in.InteractionType.String(), in.Rating).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create interaction: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "interaction", in.CourseID)
	}

	out := toDomain(rec)
	return &out, nil
}

// ListByLearner returns all interaction events of a learner, newest first.
func (r *Repo) ListByLearner(ctx context.Context, learnerID string) ([]domain.Interaction, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"learner_id": learnerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list interactions: %w", err)
	}

	var recs []row
	if err := pgxscan.Select(ctx, q, &recs, sql, args...); err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}

	interactions := make([]domain.Interaction, len(recs))
	for i, rec := range recs {
		interactions[i] = toDomain(rec)
	}

	return interactions, nil
}

func toDomain(rec row) domain.Interaction {
	return domain.Interaction{
		ID:              rec.ID,
		LearnerID:       rec.LearnerID,
		CourseID:        rec.CourseID,
		InteractionType: domain.InteractionType(rec.InteractionType),
		Rating:          rec.Rating,
		CreatedAt:       rec.CreatedAt,
	}
}

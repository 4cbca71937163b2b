// Package learnerprofile implements persistence for learner profiles.
package learnerprofile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/skillone/skillone-backend/internal/adapter/postgres"
	"github.com/skillone/skillone-backend/internal/domain"
)

const table = "learner_profiles"

var columns = []string{
	"learner_id", "career_goal", "education_level", "desired_skills",
	"interests", "proficiency_level", "updated_at",
}

// Repo provides learner profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new learner profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	LearnerID        string    `db:"learner_id"`
	CareerGoal       string    `db:"career_goal"`
	EducationLevel   string    `db:"education_level"`
	DesiredSkills    []string  `db:"desired_skills"`
	Interests        []string  `db:"interests"`
	ProficiencyLevel string    `db:"proficiency_level"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Upsert inserts the profile or replaces the existing one for the same
// learner, returning the persisted record.
func (r *Repo) Upsert(ctx context.Context, profile *domain.LearnerProfile) (*domain.LearnerProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("learner_id", "career_goal", "education_level", "desired_skills", "interests", "proficiency_level").
		Values(
			profile.LearnerID,
			profile.CareerGoal,
			profile.EducationLevel.String(),
			profile.DesiredSkills,
			profile.Interests,
			profile.ProficiencyLevel.String(),
		).
		Suffix(`ON CONFLICT (learner_id) DO UPDATE SET
			career_goal = EXCLUDED.career_goal,
			education_level = EXCLUDED.education_level,
			desired_skills = EXCLUDED.desired_skills,
			interests = EXCLUDED.interests,
			proficiency_level = EXCLUDED.proficiency_level,
			updated_at = now()`).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert learner profile: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "learner profile", profile.LearnerID)
	}

	p := toDomain(rec)
	return &p, nil
}

// GetByLearner returns the stored profile for a learner.
// Returns domain.ErrNotFound if none exists.
func (r *Repo) GetByLearner(ctx context.Context, learnerID string) (*domain.LearnerProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"learner_id": learnerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get learner profile: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "learner profile", learnerID)
	}

	p := toDomain(rec)
	return &p, nil
}

func toDomain(rec row) domain.LearnerProfile {
	return domain.LearnerProfile{
		LearnerID:        rec.LearnerID,
		CareerGoal:       rec.CareerGoal,
		EducationLevel:   domain.EducationLevel(rec.EducationLevel),
		DesiredSkills:    rec.DesiredSkills,
		Interests:        rec.Interests,
		ProficiencyLevel: domain.ProficiencyLevel(rec.ProficiencyLevel),
		UpdatedAt:        rec.UpdatedAt,
	}
}

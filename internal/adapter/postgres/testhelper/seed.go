package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedCourse inserts a course directly and returns its generated id.
func SeedCourse(t *testing.T, pool *pgxpool.Pool, title, description, difficulty, education string, tags []string, prereqs []uuid.UUID) uuid.UUID {
	t.Helper()

	if prereqs == nil {
		prereqs = []uuid.UUID{}
	}

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO courses (title, description, difficulty_level, education_level, tags, prerequisite_course_ids)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		title, description, difficulty, education, tags, prereqs,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: failed to seed course %q: %v", title, err)
	}

	return id
}

// SeedProfile inserts a learner profile directly.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, learnerID, careerGoal, education string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO learner_profiles (learner_id, career_goal, education_level, desired_skills, interests, proficiency_level)
		 VALUES ($1, $2, $3, '{}', '{}', 'Beginner')`,
		learnerID, careerGoal, education,
	)
	if err != nil {
		t.Fatalf("testhelper: failed to seed profile %q: %v", learnerID, err)
	}
}

package learningpath_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/adapter/postgres/learningpath"
	"github.com/skillone/skillone-backend/internal/adapter/postgres/testhelper"
	"github.com/skillone/skillone-backend/internal/domain"
)

func TestRepo_Create_AndListByLearner(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := learningpath.New(pool)
	ctx := context.Background()

	a := testhelper.SeedCourse(t, pool, "Algebra", "", "Beginner", "High School", []string{"math"}, nil)
	b := testhelper.SeedCourse(t, pool, "Calculus", "", "Intermediate", "Undergraduate", []string{"math"}, nil)

	created, err := repo.Create(ctx, &domain.LearningPath{
		LearnerID:      "learner-path-1",
		CourseSequence: []uuid.UUID{a, b},
		RelevanceScores: map[uuid.UUID]float64{
			a: 0.82,
			b: 0.41,
		},
		Reasoning: "Matched against goal: Mathematician",
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil path ID")
	}
	if len(created.CourseSequence) != 2 || created.CourseSequence[0] != a {
		t.Errorf("CourseSequence mismatch: got %v", created.CourseSequence)
	}
	if created.RelevanceScores[a] != 0.82 {
		t.Errorf("RelevanceScores mismatch: got %v", created.RelevanceScores)
	}

	got, err := repo.ListByLearner(ctx, "learner-path-1")
	if err != nil {
		t.Fatalf("ListByLearner: unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 path, got %d", len(got))
	}
	if got[0].Reasoning != "Matched against goal: Mathematician" {
		t.Errorf("Reasoning mismatch: got %q", got[0].Reasoning)
	}
	if got[0].RelevanceScores[b] != 0.41 {
		t.Errorf("RelevanceScores round-trip mismatch: got %v", got[0].RelevanceScores)
	}
}

func TestRepo_DeleteByLearner(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := learningpath.New(pool)
	ctx := context.Background()

	a := testhelper.SeedCourse(t, pool, "Chemistry", "", "Beginner", "Undergraduate", []string{"science"}, nil)

	for range 2 {
		if _, err := repo.Create(ctx, &domain.LearningPath{
			LearnerID:       "learner-path-2",
			CourseSequence:  []uuid.UUID{a},
			RelevanceScores: map[uuid.UUID]float64{a: 0.5},
		}); err != nil {
			t.Fatalf("Create: unexpected error: %v", err)
		}
	}

	deleted, err := repo.DeleteByLearner(ctx, "learner-path-2")
	if err != nil {
		t.Fatalf("DeleteByLearner: unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 deleted, got %d", deleted)
	}

	// Deleting again is a no-op, not an error.
	deleted, err = repo.DeleteByLearner(ctx, "learner-path-2")
	if err != nil {
		t.Fatalf("DeleteByLearner repeat: unexpected error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted, got %d", deleted)
	}

	got, err := repo.ListByLearner(ctx, "learner-path-2")
	if err != nil {
		t.Fatalf("ListByLearner: unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no paths after delete, got %d", len(got))
	}
}

func TestRepo_ListByLearner_Empty(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := learningpath.New(pool)

	got, err := repo.ListByLearner(context.Background(), "learner-never-seen")
	if err != nil {
		t.Fatalf("ListByLearner: unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no paths, got %d", len(got))
	}
}

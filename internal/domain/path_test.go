package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestResolveSequence_OrderAndDrops(t *testing.T) {
	t.Parallel()

	c1 := Course{ID: uuid.New(), Title: "Intro"}
	c2 := Course{ID: uuid.New(), Title: "Deep Dive"}
	c3 := Course{ID: uuid.New(), Title: "Capstone"}
	missing := uuid.New()

	path := LearningPath{
		CourseSequence:  []uuid.UUID{c2.ID, missing, c1.ID, c3.ID},
		RelevanceScores: map[uuid.UUID]float64{},
	}

	resolved := path.ResolveSequence([]Course{c1, c2, c3})

	if len(resolved) != 3 {
		t.Fatalf("resolved length: got %d, want 3", len(resolved))
	}
	wantOrder := []string{"Deep Dive", "Intro", "Capstone"}
	for i, want := range wantOrder {
		if resolved[i].Course.Title != want {
			t.Errorf("position %d: got %q, want %q", i, resolved[i].Course.Title, want)
		}
	}
}

func TestResolveSequence_RelevancePercent(t *testing.T) {
	t.Parallel()

	c1 := Course{ID: uuid.New()}
	c2 := Course{ID: uuid.New()}

	path := LearningPath{
		CourseSequence: []uuid.UUID{c1.ID, c2.ID},
		RelevanceScores: map[uuid.UUID]float64{
			c1.ID: 0.8,
		},
	}

	resolved := path.ResolveSequence([]Course{c1, c2})

	if resolved[0].RelevancePercent == nil || *resolved[0].RelevancePercent != 80 {
		t.Errorf("c1 relevance: got %v, want 80", resolved[0].RelevancePercent)
	}
	if resolved[1].RelevancePercent != nil {
		t.Errorf("c2 relevance: got %v, want nil", resolved[1].RelevancePercent)
	}
}

func TestResolveSequence_EmptySequence(t *testing.T) {
	t.Parallel()

	path := LearningPath{}
	resolved := path.ResolveSequence([]Course{{ID: uuid.New()}})
	if len(resolved) != 0 {
		t.Errorf("expected empty resolution, got %d entries", len(resolved))
	}
}

func TestValidateLearnerID(t *testing.T) {
	t.Parallel()

	if err := ValidateLearnerID("learner_1700000000000"); err != nil {
		t.Errorf("valid id rejected: %v", err)
	}
	if err := ValidateLearnerID(""); err == nil {
		t.Error("empty id accepted")
	}
	if err := ValidateLearnerID("   "); err == nil {
		t.Error("blank id accepted")
	}

	long := make([]byte, MaxLearnerIDLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidateLearnerID(string(long)); err == nil {
		t.Error("overlong id accepted")
	}
}

func TestCourse_SearchText(t *testing.T) {
	t.Parallel()

	c := Course{
		Title:       "Go Basics",
		Description: "Learn Go",
		Tags:        []string{"go", "programming"},
	}
	want := "Go Basics Learn Go go programming"
	if got := c.SearchText(); got != want {
		t.Errorf("SearchText: got %q, want %q", got, want)
	}
}

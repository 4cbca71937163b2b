package domain

import "testing"

func TestDifficultyLevel_IsValid(t *testing.T) {
	t.Parallel()

	valid := []DifficultyLevel{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
	for _, d := range valid {
		if !d.IsValid() {
			t.Errorf("%q should be valid", d)
		}
	}

	invalid := []DifficultyLevel{"", "beginner", "Expert"}
	for _, d := range invalid {
		if d.IsValid() {
			t.Errorf("%q should be invalid", d)
		}
	}
}

func TestDifficultyLevel_Rank(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level DifficultyLevel
		want  int
	}{
		{DifficultyBeginner, 1},
		{DifficultyIntermediate, 2},
		{DifficultyAdvanced, 3},
		{"", 1},       // unknown ranks as Beginner
		{"Expert", 1}, // unknown ranks as Beginner
	}
	for _, tc := range cases {
		if got := tc.level.Rank(); got != tc.want {
			t.Errorf("Rank(%q): got %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestEducationLevel_Rank(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level EducationLevel
		want  int
	}{
		{EducationHighSchool, 1},
		{EducationUndergraduate, 2},
		{EducationGraduate, 3},
		{EducationProfessional, 4},
		{"", 2}, // unknown ranks as Undergraduate
	}
	for _, tc := range cases {
		if got := tc.level.Rank(); got != tc.want {
			t.Errorf("Rank(%q): got %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestMaterialType_IsValid(t *testing.T) {
	t.Parallel()

	for _, m := range []MaterialType{MaterialVideo, MaterialDocument, MaterialLink} {
		if !m.IsValid() {
			t.Errorf("%q should be valid", m)
		}
	}
	if MaterialType("pdf").IsValid() {
		t.Error(`"pdf" should be invalid`)
	}
}

func TestInteractionType_IsValid(t *testing.T) {
	t.Parallel()

	for _, i := range []InteractionType{InteractionView, InteractionEnroll, InteractionComplete, InteractionRate} {
		if !i.IsValid() {
			t.Errorf("%q should be valid", i)
		}
	}
	if InteractionType("click").IsValid() {
		t.Error(`"click" should be invalid`)
	}
}

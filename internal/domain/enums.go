package domain

// DifficultyLevel classifies how demanding a course is.
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "Beginner"
	DifficultyIntermediate DifficultyLevel = "Intermediate"
	DifficultyAdvanced     DifficultyLevel = "Advanced"
)

func (d DifficultyLevel) String() string { return string(d) }

func (d DifficultyLevel) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Rank maps the difficulty to its ordinal used by the generation engine.
// Unknown values rank as Beginner.
func (d DifficultyLevel) Rank() int {
	switch d {
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	default:
		return 1
	}
}

// EducationLevel is the academic level a course targets or a learner reports.
type EducationLevel string

const (
	EducationHighSchool    EducationLevel = "High School"
	EducationUndergraduate EducationLevel = "Undergraduate"
	EducationGraduate      EducationLevel = "Graduate"
	EducationProfessional  EducationLevel = "Professional"
)

func (e EducationLevel) String() string { return string(e) }

func (e EducationLevel) IsValid() bool {
	switch e {
	case EducationHighSchool, EducationUndergraduate, EducationGraduate, EducationProfessional:
		return true
	}
	return false
}

// Rank maps the education level to its ordinal used by the generation engine.
// Unknown values rank as Undergraduate.
func (e EducationLevel) Rank() int {
	switch e {
	case EducationHighSchool:
		return 1
	case EducationGraduate:
		return 3
	case EducationProfessional:
		return 4
	default:
		return 2
	}
}

// ProficiencyLevel is the learner's self-reported proficiency.
type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "Beginner"
	ProficiencyIntermediate ProficiencyLevel = "Intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "Advanced"
)

func (p ProficiencyLevel) String() string { return string(p) }

func (p ProficiencyLevel) IsValid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced:
		return true
	}
	return false
}

// MaterialType identifies the kind of course material.
type MaterialType string

const (
	MaterialVideo    MaterialType = "video"
	MaterialDocument MaterialType = "document"
	MaterialLink     MaterialType = "link"
)

func (m MaterialType) String() string { return string(m) }

func (m MaterialType) IsValid() bool {
	switch m {
	case MaterialVideo, MaterialDocument, MaterialLink:
		return true
	}
	return false
}

// InteractionType identifies the kind of learner-course interaction.
type InteractionType string

const (
	InteractionView     InteractionType = "view"
	InteractionEnroll   InteractionType = "enroll"
	InteractionComplete InteractionType = "complete"
	InteractionRate     InteractionType = "rate"
)

func (i InteractionType) String() string { return string(i) }

func (i InteractionType) IsValid() bool {
	switch i {
	case InteractionView, InteractionEnroll, InteractionComplete, InteractionRate:
		return true
	}
	return false
}

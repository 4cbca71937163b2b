package pathgen

import (
	"errors"
	"strings"

	"github.com/skillone/skillone-backend/internal/domain"
)

// GenerateInput holds the learner profile submitted for path generation.
type GenerateInput struct {
	LearnerID        string
	CareerGoal       string
	EducationLevel   string
	DesiredSkills    []string
	Interests        []string
	ProficiencyLevel string
}

// Validate checks all fields and collects all errors. Empty education and
// proficiency levels fall back to defaults; non-empty values must be valid.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if err := domain.ValidateLearnerID(i.LearnerID); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			errs = append(errs, vErr.Errors...)
		}
	}

	goal := strings.TrimSpace(i.CareerGoal)
	if goal == "" {
		errs = append(errs, domain.FieldError{Field: "career_goal", Message: "required"})
	}
	if len(goal) > 200 {
		errs = append(errs, domain.FieldError{Field: "career_goal", Message: "max 200 characters"})
	}

	if i.EducationLevel != "" && !domain.EducationLevel(i.EducationLevel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "education_level", Message: "unknown education level"})
	}
	if i.ProficiencyLevel != "" && !domain.ProficiencyLevel(i.ProficiencyLevel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "proficiency_level", Message: "unknown proficiency level"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// toProfile converts the input into a profile record, applying defaults and
// dropping blank skill and interest entries.
func (i GenerateInput) toProfile() *domain.LearnerProfile {
	education := domain.EducationLevel(i.EducationLevel)
	if i.EducationLevel == "" {
		education = domain.EducationUndergraduate
	}
	proficiency := domain.ProficiencyLevel(i.ProficiencyLevel)
	if i.ProficiencyLevel == "" {
		proficiency = domain.ProficiencyBeginner
	}

	return &domain.LearnerProfile{
		LearnerID:        i.LearnerID,
		CareerGoal:       strings.TrimSpace(i.CareerGoal),
		EducationLevel:   education,
		DesiredSkills:    trimNonEmpty(i.DesiredSkills),
		Interests:        trimNonEmpty(i.Interests),
		ProficiencyLevel: proficiency,
	}
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

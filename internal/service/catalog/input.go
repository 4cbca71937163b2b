package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
	maxTags              = 20
)

// CreateCourseInput holds the parameters for creating a course.
type CreateCourseInput struct {
	Title           string
	Description     string
	DifficultyLevel string
	EducationLevel  string
	Tags            []string
	PrerequisiteIDs []uuid.UUID
}

// Validate checks all fields and collects all errors. An empty tag list is
// rejected here, before any storage call.
func (i CreateCourseInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if !domain.DifficultyLevel(i.DifficultyLevel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty_level", Message: "unknown difficulty level"})
	}
	if !domain.EducationLevel(i.EducationLevel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "education_level", Message: "unknown education level"})
	}

	errs = append(errs, validateTags(i.Tags)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCourseInput holds the parameters for updating a course.
// nil means "leave unchanged".
type UpdateCourseInput struct {
	CourseID        uuid.UUID
	Title           *string
	Description     *string
	DifficultyLevel *string
	EducationLevel  *string
	Tags            []string
	PrerequisiteIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateCourseInput) Validate() error {
	var errs []domain.FieldError

	if i.CourseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.DifficultyLevel == nil &&
		i.EducationLevel == nil && i.Tags == nil && i.PrerequisiteIDs == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if i.DifficultyLevel != nil && !domain.DifficultyLevel(*i.DifficultyLevel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty_level", Message: "unknown difficulty level"})
	}
	if i.EducationLevel != nil && !domain.EducationLevel(*i.EducationLevel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "education_level", Message: "unknown education level"})
	}
	if i.Tags != nil {
		errs = append(errs, validateTags(i.Tags)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateTags rejects empty tag lists and blank entries.
func validateTags(tags []string) []domain.FieldError {
	var errs []domain.FieldError
	if len(tags) == 0 {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "at least one tag required"})
	}
	if len(tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 tags"})
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "blank tags are not allowed"})
			break
		}
	}
	return errs
}

package material

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
)

// MaxUploadBytes is the largest material upload the API accepts.
const MaxUploadBytes = 50 << 20

const maxDisplayNameLength = 200

// AddMaterialInput holds the parameters for attaching a material to a course.
type AddMaterialInput struct {
	CourseID     uuid.UUID
	MaterialType string
	URL          string
	DisplayName  *string
}

// Validate checks all fields and collects all errors.
func (i AddMaterialInput) Validate() error {
	var errs []domain.FieldError

	if i.CourseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}
	if !domain.MaterialType(i.MaterialType).IsValid() {
		errs = append(errs, domain.FieldError{Field: "material_type", Message: "unknown material type"})
	}
	errs = append(errs, validateURL(i.URL)...)
	if i.DisplayName != nil && len(*i.DisplayName) > maxDisplayNameLength {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateMaterialInput holds the parameters for updating a material.
// nil means "leave unchanged".
type UpdateMaterialInput struct {
	MaterialID   uuid.UUID
	MaterialType *string
	URL          *string
	DisplayName  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateMaterialInput) Validate() error {
	var errs []domain.FieldError

	if i.MaterialID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "material_id", Message: "required"})
	}
	if i.MaterialType == nil && i.URL == nil && i.DisplayName == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.MaterialType != nil && !domain.MaterialType(*i.MaterialType).IsValid() {
		errs = append(errs, domain.FieldError{Field: "material_type", Message: "unknown material type"})
	}
	if i.URL != nil {
		errs = append(errs, validateURL(*i.URL)...)
	}
	if i.DisplayName != nil && len(*i.DisplayName) > maxDisplayNameLength {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UploadMaterialInput holds the parameters for a file upload.
type UploadMaterialInput struct {
	CourseID    uuid.UUID
	FileName    string
	Size        int64
	DisplayName *string
}

// Validate checks all fields and collects all errors.
func (i UploadMaterialInput) Validate() error {
	var errs []domain.FieldError

	if i.CourseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}
	if strings.TrimSpace(i.FileName) == "" {
		errs = append(errs, domain.FieldError{Field: "file", Message: "file name required"})
	}
	if i.Size <= 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "empty file"})
	}
	if i.Size > MaxUploadBytes {
		errs = append(errs, domain.FieldError{Field: "file", Message: "max file size 50 MB"})
	}
	if i.DisplayName != nil && len(*i.DisplayName) > maxDisplayNameLength {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateURL(raw string) []domain.FieldError {
	if strings.TrimSpace(raw) == "" {
		return []domain.FieldError{{Field: "url", Message: "required"}}
	}
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return []domain.FieldError{{Field: "url", Message: "must be an absolute http(s) URL"}}
	}
	return nil
}

// materialTypeForFile infers the material type from a file extension.
var videoExtensions = map[string]struct{}{
	".mp4": {}, ".webm": {}, ".mov": {}, ".mkv": {}, ".avi": {},
}

func materialTypeForFile(fileName string) domain.MaterialType {
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := videoExtensions[ext]; ok {
		return domain.MaterialVideo
	}
	return domain.MaterialDocument
}

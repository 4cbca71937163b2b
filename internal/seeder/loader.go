// Package seeder loads a course catalog from a JSON file into the database.
// It is orchestration for the offline seed command, not part of the server.
package seeder

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/skillone/skillone-backend/internal/domain"
)

// CourseRecord is one catalog entry in the seed file. Prerequisites reference
// other entries in the same file by title.
type CourseRecord struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DifficultyLevel string           `json:"difficulty_level"`
	EducationLevel  string           `json:"education_level"`
	Tags            []string         `json:"tags"`
	Prerequisites   []string         `json:"prerequisites"`
	Materials       []MaterialRecord `json:"materials"`
}

// MaterialRecord is one material attached to a seeded course.
type MaterialRecord struct {
	MaterialType string `json:"material_type"`
	URL          string `json:"url"`
	DisplayName  string `json:"display_name"`
}

// LoadFile reads and validates a seed file. Validation covers duplicate
// titles, dangling or self-referencing prerequisites, and invalid enum
// values; row-level field checks are left to the insert path.
func LoadFile(path string) ([]CourseRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var records []CourseRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("seed file %s contains no courses", path)
	}

	titles := make(map[string]struct{}, len(records))
	for i, rec := range records {
		title := strings.TrimSpace(rec.Title)
		if title == "" {
			return nil, fmt.Errorf("course %d: title is required", i)
		}
		if _, dup := titles[title]; dup {
			return nil, fmt.Errorf("duplicate course title %q", title)
		}
		titles[title] = struct{}{}

		if len(rec.Tags) == 0 {
			return nil, fmt.Errorf("course %q: at least one tag is required", title)
		}
		if !domain.DifficultyLevel(rec.DifficultyLevel).IsValid() {
			return nil, fmt.Errorf("course %q: unknown difficulty level %q", title, rec.DifficultyLevel)
		}
		if !domain.EducationLevel(rec.EducationLevel).IsValid() {
			return nil, fmt.Errorf("course %q: unknown education level %q", title, rec.EducationLevel)
		}
		for _, m := range rec.Materials {
			if !domain.MaterialType(m.MaterialType).IsValid() {
				return nil, fmt.Errorf("course %q: unknown material type %q", title, m.MaterialType)
			}
		}
	}

	for _, rec := range records {
		for _, prereq := range rec.Prerequisites {
			if prereq == rec.Title {
				return nil, fmt.Errorf("course %q lists itself as a prerequisite", rec.Title)
			}
			if _, ok := titles[prereq]; !ok {
				return nil, fmt.Errorf("course %q: unknown prerequisite %q", rec.Title, prereq)
			}
		}
	}

	return records, nil
}

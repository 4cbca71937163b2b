package rest

import (
	"time"

	"github.com/skillone/skillone-backend/internal/domain"
)

type courseResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DifficultyLevel string    `json:"difficulty_level"`
	EducationLevel  string    `json:"education_level"`
	Tags            []string  `json:"tags"`
	PrerequisiteIDs []string  `json:"prerequisite_course_ids"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Materials []materialResponse `json:"materials,omitempty"`
}

type materialResponse struct {
	ID           string    `json:"id"`
	CourseID     string    `json:"course_id"`
	MaterialType string    `json:"material_type"`
	URL          string    `json:"url"`
	DisplayName  *string   `json:"display_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type pathCourseResponse struct {
	courseResponse
	RelevancePercent *int `json:"relevance_percent,omitempty"`
}

func toCourseResponse(c domain.Course) courseResponse {
	prereqs := make([]string, 0, len(c.PrerequisiteIDs))
	for _, id := range c.PrerequisiteIDs {
		prereqs = append(prereqs, id.String())
	}

	resp := courseResponse{
		ID:              c.ID.String(),
		Title:           c.Title,
		Description:     c.Description,
		DifficultyLevel: c.DifficultyLevel.String(),
		EducationLevel:  c.EducationLevel.String(),
		Tags:            c.Tags,
		PrerequisiteIDs: prereqs,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	for _, m := range c.Materials {
		resp.Materials = append(resp.Materials, toMaterialResponse(m))
	}
	return resp
}

func toCourseResponses(courses []domain.Course) []courseResponse {
	out := make([]courseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, toCourseResponse(c))
	}
	return out
}

func toMaterialResponse(m domain.Material) materialResponse {
	return materialResponse{
		ID:           m.ID.String(),
		CourseID:     m.CourseID.String(),
		MaterialType: m.MaterialType.String(),
		URL:          m.URL,
		DisplayName:  m.DisplayName,
		CreatedAt:    m.CreatedAt,
	}
}

func toPathCourseResponses(steps []domain.PathCourse) []pathCourseResponse {
	out := make([]pathCourseResponse, 0, len(steps))
	for _, step := range steps {
		out = append(out, pathCourseResponse{
			courseResponse:   toCourseResponse(step.Course),
			RelevancePercent: step.RelevancePercent,
		})
	}
	return out
}

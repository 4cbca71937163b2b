package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/skillone/skillone-backend/internal/service/pathgen"
	"github.com/skillone/skillone-backend/pkg/ctxutil"
)

type pathService interface {
	Generate(ctx context.Context, input pathgen.GenerateInput) (*pathgen.Result, error)
	ListPaths(ctx context.Context, learnerID string) ([]pathgen.ResolvedPath, error)
}

type suggestService interface {
	Suggest(ctx context.Context, query string) []string
}

// PathHandler serves path generation, path retrieval, and career goal
// suggestion endpoints.
type PathHandler struct {
	paths   pathService
	suggest suggestService
	log     *slog.Logger
}

// NewPathHandler creates a PathHandler.
func NewPathHandler(paths pathService, suggest suggestService, logger *slog.Logger) *PathHandler {
	return &PathHandler{
		paths:   paths,
		suggest: suggest,
		log:     logger.With("handler", "path"),
	}
}

type generateRequest struct {
	LearnerID        string   `json:"learner_id"`
	CareerGoal       string   `json:"career_goal"`
	EducationLevel   string   `json:"education_level"`
	DesiredSkills    []string `json:"desired_skills"`
	Interests        []string `json:"interests"`
	ProficiencyLevel string   `json:"proficiency_level"`
}

type generateResponse struct {
	LearningPath   []string             `json:"learning_path"`
	Scores         map[string]float64   `json:"scores"`
	Reasoning      string               `json:"reasoning"`
	TotalCourses   int                  `json:"total_courses"`
	PathwayDetails []pathCourseResponse `json:"pathway_details"`
}

// Generate handles POST /api/generate-learning-path.
func (h *PathHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	r = r.WithContext(ctxutil.WithLearnerID(r.Context(), req.LearnerID))

	result, err := h.paths.Generate(r.Context(), pathgen.GenerateInput{
		LearnerID:        req.LearnerID,
		CareerGoal:       req.CareerGoal,
		EducationLevel:   req.EducationLevel,
		DesiredSkills:    req.DesiredSkills,
		Interests:        req.Interests,
		ProficiencyLevel: req.ProficiencyLevel,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGenerateResponse(result))
}

type pathResponse struct {
	ID             string               `json:"id"`
	LearnerID      string               `json:"learner_id"`
	LearningPath   []string             `json:"learning_path"`
	Scores         map[string]float64   `json:"scores"`
	Reasoning      string               `json:"reasoning"`
	CreatedAt      string               `json:"created_at"`
	PathwayDetails []pathCourseResponse `json:"pathway_details"`
}

// ListPaths handles GET /api/learning-paths/{learner_id}.
func (h *PathHandler) ListPaths(w http.ResponseWriter, r *http.Request) {
	learnerID := r.PathValue("learner_id")
	r = r.WithContext(ctxutil.WithLearnerID(r.Context(), learnerID))

	resolved, err := h.paths.ListPaths(r.Context(), learnerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	paths := make([]pathResponse, 0, len(resolved))
	for _, rp := range resolved {
		paths = append(paths, toPathResponse(rp))
	}

	writeJSON(w, http.StatusOK, map[string]any{"paths": paths})
}

// Suggestions handles GET /api/career-goals/suggestions. Lookup failures
// inside the service degrade to an empty list; this endpoint never fails.
func (h *PathHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	suggestions := h.suggest.Suggest(r.Context(), r.URL.Query().Get("query"))
	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

func toGenerateResponse(result *pathgen.Result) generateResponse {
	sequence := make([]string, 0, len(result.Path.CourseSequence))
	for _, id := range result.Path.CourseSequence {
		sequence = append(sequence, id.String())
	}

	scores := make(map[string]float64, len(result.Path.RelevanceScores))
	for id, score := range result.Path.RelevanceScores {
		scores[id.String()] = score
	}

	return generateResponse{
		LearningPath:   sequence,
		Scores:         scores,
		Reasoning:      result.Path.Reasoning,
		TotalCourses:   len(sequence),
		PathwayDetails: toPathCourseResponses(result.Courses),
	}
}

func toPathResponse(rp pathgen.ResolvedPath) pathResponse {
	sequence := make([]string, 0, len(rp.Path.CourseSequence))
	for _, id := range rp.Path.CourseSequence {
		sequence = append(sequence, id.String())
	}

	scores := make(map[string]float64, len(rp.Path.RelevanceScores))
	for id, score := range rp.Path.RelevanceScores {
		scores[id.String()] = score
	}

	return pathResponse{
		ID:             rp.Path.ID.String(),
		LearnerID:      rp.Path.LearnerID,
		LearningPath:   sequence,
		Scores:         scores,
		Reasoning:      rp.Path.Reasoning,
		CreatedAt:      rp.Path.CreatedAt.Format(time.RFC3339),
		PathwayDetails: toPathCourseResponses(rp.Courses),
	}
}

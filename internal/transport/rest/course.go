package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
	"github.com/skillone/skillone-backend/internal/service/catalog"
)

type catalogService interface {
	ListCourses(ctx context.Context, filter domain.CourseFilter) ([]domain.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	CreateCourse(ctx context.Context, input catalog.CreateCourseInput) (*domain.Course, error)
	UpdateCourse(ctx context.Context, input catalog.UpdateCourseInput) (*domain.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
}

// CourseHandler serves catalog endpoints. Reads are public; writes sit
// behind the admin auth middleware.
type CourseHandler struct {
	catalog catalogService
	log     *slog.Logger
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(catalog catalogService, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{catalog: catalog, log: logger.With("handler", "course")}
}

// List handles GET /api/courses?search=&difficulty=.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.CourseFilter{
		Search:     r.URL.Query().Get("search"),
		Difficulty: r.URL.Query().Get("difficulty"),
	}

	courses, err := h.catalog.ListCourses(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"courses": toCourseResponses(courses)})
}

// Get handles GET /api/courses/{id}. The response includes the course's
// materials.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	course, err := h.catalog.GetCourse(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCourseResponse(*course))
}

type createCourseRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DifficultyLevel string   `json:"difficulty_level"`
	EducationLevel  string   `json:"education_level"`
	Tags            []string `json:"tags"`
	PrerequisiteIDs []string `json:"prerequisite_course_ids"`
}

// Create handles POST /api/courses.
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCourseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prereqs, err := parseUUIDs(req.PrerequisiteIDs)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid prerequisite course id")
		return
	}

	course, err := h.catalog.CreateCourse(r.Context(), catalog.CreateCourseInput{
		Title:           req.Title,
		Description:     req.Description,
		DifficultyLevel: req.DifficultyLevel,
		EducationLevel:  req.EducationLevel,
		Tags:            req.Tags,
		PrerequisiteIDs: prereqs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCourseResponse(*course))
}

type updateCourseRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	DifficultyLevel *string  `json:"difficulty_level"`
	EducationLevel  *string  `json:"education_level"`
	Tags            []string `json:"tags"`
	PrerequisiteIDs []string `json:"prerequisite_course_ids"`
}

// Update handles PUT /api/courses/{id}. Absent fields are left unchanged.
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	var req updateCourseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var prereqs []uuid.UUID
	if req.PrerequisiteIDs != nil {
		prereqs, err = parseUUIDs(req.PrerequisiteIDs)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid prerequisite course id")
			return
		}
	}

	course, err := h.catalog.UpdateCourse(r.Context(), catalog.UpdateCourseInput{
		CourseID:        id,
		Title:           req.Title,
		Description:     req.Description,
		DifficultyLevel: req.DifficultyLevel,
		EducationLevel:  req.EducationLevel,
		Tags:            req.Tags,
		PrerequisiteIDs: prereqs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCourseResponse(*course))
}

// Delete handles DELETE /api/courses/{id}.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	if err := h.catalog.DeleteCourse(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
	"github.com/skillone/skillone-backend/internal/service/material"
)

// uploadFormOverhead leaves room for multipart boundaries and the
// display_name field on top of the file itself.
const uploadFormOverhead = 1 << 20

type materialService interface {
	ListMaterials(ctx context.Context, courseID uuid.UUID) ([]domain.Material, error)
	AddMaterial(ctx context.Context, input material.AddMaterialInput) (*domain.Material, error)
	UpdateMaterial(ctx context.Context, input material.UpdateMaterialInput) (*domain.Material, error)
	DeleteMaterial(ctx context.Context, id uuid.UUID) error
	UploadMaterial(ctx context.Context, input material.UploadMaterialInput, content io.Reader) (*domain.Material, error)
}

// MaterialHandler serves course material endpoints.
type MaterialHandler struct {
	materials materialService
	log       *slog.Logger
}

// NewMaterialHandler creates a MaterialHandler.
func NewMaterialHandler(materials materialService, logger *slog.Logger) *MaterialHandler {
	return &MaterialHandler{materials: materials, log: logger.With("handler", "material")}
}

// ListByCourse handles GET /api/courses/{id}/materials.
func (h *MaterialHandler) ListByCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	materials, err := h.materials.ListMaterials(r.Context(), courseID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]materialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, toMaterialResponse(m))
	}
	writeJSON(w, http.StatusOK, map[string]any{"materials": out})
}

type addMaterialRequest struct {
	MaterialType string  `json:"material_type"`
	URL          string  `json:"url"`
	DisplayName  *string `json:"display_name"`
}

// Add handles POST /api/courses/{id}/materials.
func (h *MaterialHandler) Add(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	var req addMaterialRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.materials.AddMaterial(r.Context(), material.AddMaterialInput{
		CourseID:     courseID,
		MaterialType: req.MaterialType,
		URL:          req.URL,
		DisplayName:  req.DisplayName,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMaterialResponse(*created))
}

type updateMaterialRequest struct {
	MaterialType *string `json:"material_type"`
	URL          *string `json:"url"`
	DisplayName  *string `json:"display_name"`
}

// Update handles PUT /api/materials/{id}.
func (h *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid material id")
		return
	}

	var req updateMaterialRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.materials.UpdateMaterial(r.Context(), material.UpdateMaterialInput{
		MaterialID:   id,
		MaterialType: req.MaterialType,
		URL:          req.URL,
		DisplayName:  req.DisplayName,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMaterialResponse(*updated))
}

// Delete handles DELETE /api/materials/{id}.
func (h *MaterialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid material id")
		return
	}

	if err := h.materials.DeleteMaterial(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Upload handles POST /api/courses/{id}/materials/upload. Expects a
// multipart form with a "file" part and an optional "display_name" field.
func (h *MaterialHandler) Upload(w http.ResponseWriter, r *http.Request) {
	courseID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	// Cap the body before multipart parsing spools an oversized upload to disk.
	r.Body = http.MaxBytesReader(w, r.Body, material.MaxUploadBytes+uploadFormOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	input := material.UploadMaterialInput{
		CourseID: courseID,
		FileName: header.Filename,
		Size:     header.Size,
	}
	if name := r.FormValue("display_name"); name != "" {
		input.DisplayName = &name
	}

	created, err := h.materials.UploadMaterial(r.Context(), input, file)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMaterialResponse(*created))
}

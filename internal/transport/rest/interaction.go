package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/skillone/skillone-backend/internal/domain"
	"github.com/skillone/skillone-backend/internal/service/interaction"
	"github.com/skillone/skillone-backend/pkg/ctxutil"
)

type interactionService interface {
	Track(ctx context.Context, input interaction.TrackInput) (*domain.Interaction, error)
	History(ctx context.Context, learnerID string) ([]domain.Interaction, error)
}

// InteractionHandler serves interaction tracking endpoints.
type InteractionHandler struct {
	interactions interactionService
	log          *slog.Logger
}

// NewInteractionHandler creates an InteractionHandler.
func NewInteractionHandler(interactions interactionService, logger *slog.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactions: interactions,
		log:          logger.With("handler", "interaction"),
	}
}

type trackRequest struct {
	LearnerID       string `json:"learner_id"`
	CourseID        string `json:"course_id"`
	InteractionType string `json:"interaction_type"`
	Rating          *int   `json:"rating"`
}

type interactionResponse struct {
	ID              string `json:"id"`
	LearnerID       string `json:"learner_id"`
	CourseID        string `json:"course_id"`
	InteractionType string `json:"interaction_type"`
	Rating          *int   `json:"rating,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// Track handles POST /api/track-interaction.
func (h *InteractionHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var courseID uuid.UUID
	if req.CourseID != "" {
		var err error
		courseID, err = uuid.Parse(req.CourseID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid course id")
			return
		}
	}

	r = r.WithContext(ctxutil.WithLearnerID(r.Context(), req.LearnerID))

	created, err := h.interactions.Track(r.Context(), interaction.TrackInput{
		LearnerID:       req.LearnerID,
		CourseID:        courseID,
		InteractionType: req.InteractionType,
		Rating:          req.Rating,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toInteractionResponse(*created))
}

// History handles GET /api/interactions/{learner_id}.
func (h *InteractionHandler) History(w http.ResponseWriter, r *http.Request) {
	learnerID := r.PathValue("learner_id")
	r = r.WithContext(ctxutil.WithLearnerID(r.Context(), learnerID))

	events, err := h.interactions.History(r.Context(), learnerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]interactionResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toInteractionResponse(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{"interactions": out})
}

func toInteractionResponse(e domain.Interaction) interactionResponse {
	return interactionResponse{
		ID:              e.ID.String(),
		LearnerID:       e.LearnerID,
		CourseID:        e.CourseID.String(),
		InteractionType: e.InteractionType.String(),
		Rating:          e.Rating,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

package rest

import (
	"log/slog"
	"net/http"

	"github.com/skillone/skillone-backend/internal/auth"
)

type credentialVerifier interface {
	Verify(username, password string) error
}

type tokenIssuer interface {
	GenerateAccessToken(username, role string) (string, error)
}

// AuthHandler serves the admin login endpoint.
type AuthHandler struct {
	verifier credentialVerifier
	tokens   tokenIssuer
	log      *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(verifier credentialVerifier, tokens tokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		verifier: verifier,
		tokens:   tokens,
		log:      logger.With("handler", "auth"),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.verifier.Verify(req.Username, req.Password); err != nil {
		h.log.WarnContext(r.Context(), "admin login rejected", slog.String("username", req.Username))
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.tokens.GenerateAccessToken(req.Username, auth.RoleAdmin)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

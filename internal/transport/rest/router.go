package rest

import (
	"net/http"

	"github.com/skillone/skillone-backend/internal/transport/middleware"
)

// Handlers groups the handler set wired into the router.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Path        *PathHandler
	Course      *CourseHandler
	Material    *MaterialHandler
	Interaction *InteractionHandler
}

// NewRouter builds the route table. adminOnly wraps the handlers that
// require a valid admin token.
func NewRouter(h Handlers, adminOnly middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	// Health probes.
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	// Public learner endpoints.
	mux.HandleFunc("POST /api/generate-learning-path", h.Path.Generate)
	mux.HandleFunc("GET /api/learning-paths/{learner_id}", h.Path.ListPaths)
	mux.HandleFunc("GET /api/career-goals/suggestions", h.Path.Suggestions)
	mux.HandleFunc("GET /api/courses", h.Course.List)
	mux.HandleFunc("GET /api/courses/{id}", h.Course.Get)
	mux.HandleFunc("GET /api/courses/{id}/materials", h.Material.ListByCourse)
	mux.HandleFunc("POST /api/track-interaction", h.Interaction.Track)
	mux.HandleFunc("GET /api/interactions/{learner_id}", h.Interaction.History)

	// Admin login.
	mux.HandleFunc("POST /api/admin/login", h.Auth.Login)

	// Admin-only catalog management.
	admin := func(handler http.HandlerFunc) http.Handler {
		return adminOnly(handler)
	}
	mux.Handle("POST /api/courses", admin(h.Course.Create))
	mux.Handle("PUT /api/courses/{id}", admin(h.Course.Update))
	mux.Handle("DELETE /api/courses/{id}", admin(h.Course.Delete))
	mux.Handle("POST /api/courses/{id}/materials", admin(h.Material.Add))
	mux.Handle("POST /api/courses/{id}/materials/upload", admin(h.Material.Upload))
	mux.Handle("PUT /api/materials/{id}", admin(h.Material.Update))
	mux.Handle("DELETE /api/materials/{id}", admin(h.Material.Delete))

	return mux
}

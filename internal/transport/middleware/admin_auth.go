package middleware

import (
	"net/http"
	"strings"

	"github.com/skillone/skillone-backend/internal/auth"
	"github.com/skillone/skillone-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (subject string, role string, err error)
}

// AdminAuth returns middleware that requires a valid admin bearer token.
// Requests without one are rejected with 401.
func AdminAuth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			_, role, err := validator.ValidateAccessToken(token)
			if err != nil || role != auth.RoleAdmin {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := ctxutil.WithAdmin(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

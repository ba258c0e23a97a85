package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/auth"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

// RoleResolver looks up the portal role for a verified email. It runs on
// every authenticated request so whitelist changes take effect immediately.
type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (*domain.RoleInfo, error)
}

// Auth verifies the bearer token and resolves the caller's role into the
// request context. A missing or invalid token is 401. A valid token whose
// email has no portal role still passes through with the role unset; the
// role-gated handlers decide whether that matters.
func Auth(verifier auth.TokenVerifier, resolver RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearer(r)
			if token == "" {
				writeUnauthorized(w, "authorization token required")
				return
			}

			id, err := verifier.Verify(r.Context(), token)
			if err != nil {
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyEmail, id.Email)

			info, err := resolver.ResolveRole(ctx, id.Email)
			if err == nil {
				ctx = context.WithValue(ctx, ContextKeyUserRole, info.Role)
				ctx = context.WithValue(ctx, ContextKeyName, info.Name)
			} else if !errors.Is(err, domain.ErrForbidden) {
				// Infrastructure failure; the caller keeps an empty role and
				// role-gated routes will refuse them.
				log.Warn().Err(err).Str("email", id.Email).Msg("auth: role resolution failed")
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"success":false,"data":null,"error":{"code":"AUTH_REQUIRED","message":"` + message + `"}}`))
}

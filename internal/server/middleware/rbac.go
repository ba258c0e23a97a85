package middleware

import (
	"net/http"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

// RequireRole gates a route group to callers holding one of the given
// portal roles. It must be chained after Auth, which resolves the role into
// the request context.
//
// An authenticated caller without a matching role gets 403; the distinction
// from the 401 that Auth emits matters to the SPA, which redirects 401 to
// login but shows 403 in place.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				writeForbidden(w, "no portal role")
				return
			}

			if _, match := allowed[role]; !match {
				writeForbidden(w, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience wrapper for RequireRole(domain.RoleAdmin).
func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRole(domain.RoleAdmin)
}

func writeForbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"success":false,"data":null,"error":{"code":"AUTH_FORBIDDEN","message":"` + message + `"}}`))
}

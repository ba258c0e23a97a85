package middleware

import (
	"context"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

type contextKey string

const (
	ContextKeyEmail    contextKey = "email"
	ContextKeyUserRole contextKey = "role"
	ContextKeyName     contextKey = "name"
)

func EmailFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ContextKeyEmail).(string)
	return v, ok
}

// RoleFromContext returns the resolved portal role. The role may be absent
// even for an authenticated caller: a valid token whose email is neither
// staff nor whitelisted carries no role.
func RoleFromContext(ctx context.Context) (domain.Role, bool) {
	v, ok := ctx.Value(ContextKeyUserRole).(domain.Role)
	return v, ok
}

func NameFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ContextKeyName).(string)
	return v, ok
}

// IsAdmin reports whether the context carries the admin role.
func IsAdmin(ctx context.Context) bool {
	role, ok := RoleFromContext(ctx)
	return ok && role == domain.RoleAdmin
}

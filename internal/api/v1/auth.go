package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/server/middleware"
)

type ValidateAccessInput struct {
	Body struct {
		Email string `json:"email" minLength:"1" doc:"Email to check for portal access"`
	}
}

type ValidateAccessOutput struct {
	Body Envelope[*domain.AccessGrant]
}

type GetUserRoleOutput struct {
	Body Envelope[*domain.RoleInfo]
}

// RegisterAccessRoutes wires the pre-login access check. It is mounted on
// the public group so the SPA can probe an email before any sign-in.
func RegisterAccessRoutes(api huma.API, resolver AccessResolver) {
	huma.Register(api, huma.Operation{
		OperationID: "validate-access",
		Method:      http.MethodPost,
		Path:        "/auth/validate-access",
		Summary:     "Check whether an email may sign in, and how",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *ValidateAccessInput) (*ValidateAccessOutput, error) {
		grant, err := resolver.ValidateAccess(ctx, input.Body.Email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("No account found with this email address")
			}
			return nil, huma.Error500InternalServerError("failed to validate access", err)
		}

		return &ValidateAccessOutput{Body: envelope(grant)}, nil
	})
}

// RegisterRoleRoutes wires the post-login role lookup. It is mounted behind
// the token-verifying middleware, which places the caller's email in the
// request context.
func RegisterRoleRoutes(api huma.API, resolver AccessResolver) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user-role",
		Method:      http.MethodGet,
		Path:        "/auth/get-user-role",
		Summary:     "Resolve the authenticated caller's portal role",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, _ *struct{}) (*GetUserRoleOutput, error) {
		email, ok := middleware.EmailFromContext(ctx)
		if !ok {
			return nil, huma.Error401Unauthorized("authentication required")
		}

		info, err := resolver.ResolveRole(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrForbidden) {
				return nil, huma.Error403Forbidden("Access denied")
			}
			return nil, huma.Error500InternalServerError("failed to resolve role", err)
		}

		return &GetUserRoleOutput{Body: envelope(info)}, nil
	})
}

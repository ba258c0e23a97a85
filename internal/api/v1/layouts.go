package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/server/middleware"
)

type SaveLayoutInput struct {
	Body struct {
		Tiles []domain.TilePosition `json:"tiles" doc:"Ordered tile placements"`
	}
}

type LayoutOutput struct {
	Body Envelope[*domain.Layout]
}

// RegisterLayoutRoutes wires the homepage layout lifecycle. The active
// layout is readable by any authenticated caller; draft manipulation and
// publishing are admin-only.
func RegisterLayoutRoutes(api huma.API, layouts LayoutService) {
	huma.Register(api, huma.Operation{
		OperationID: "save-layout-draft",
		Method:      http.MethodPost,
		Path:        "/layouts/draft",
		Summary:     "Save the working draft layout",
		Tags:        []string{"Layouts"},
	}, func(ctx context.Context, input *SaveLayoutInput) (*LayoutOutput, error) {
		if !middleware.IsAdmin(ctx) {
			return nil, huma.Error403Forbidden("admin access required")
		}

		l, err := layouts.SaveDraft(ctx, input.Body.Tiles)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to save draft layout", err)
		}

		return &LayoutOutput{Body: envelope(l)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-layout-draft",
		Method:      http.MethodGet,
		Path:        "/layouts/draft",
		Summary:     "Get the working draft layout",
		Tags:        []string{"Layouts"},
	}, func(ctx context.Context, _ *struct{}) (*LayoutOutput, error) {
		if !middleware.IsAdmin(ctx) {
			return nil, huma.Error403Forbidden("admin access required")
		}

		// A missing draft is not an error; the editor starts from scratch.
		l, err := layouts.Draft(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to get draft layout", err)
		}

		return &LayoutOutput{Body: envelope(l)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "publish-layout",
		Method:      http.MethodPost,
		Path:        "/layouts/publish",
		Summary:     "Publish a layout, replacing the active one",
		Tags:        []string{"Layouts"},
	}, func(ctx context.Context, input *SaveLayoutInput) (*LayoutOutput, error) {
		if !middleware.IsAdmin(ctx) {
			return nil, huma.Error403Forbidden("admin access required")
		}

		l, err := layouts.Publish(ctx, input.Body.Tiles)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to publish layout", err)
		}

		return &LayoutOutput{Body: envelope(l)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-layout-active",
		Method:      http.MethodGet,
		Path:        "/layouts/active",
		Summary:     "Get the published layout",
		Tags:        []string{"Layouts"},
	}, func(ctx context.Context, _ *struct{}) (*LayoutOutput, error) {
		l, err := layouts.Active(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to get active layout", err)
		}

		return &LayoutOutput{Body: envelope(l)}, nil
	})
}

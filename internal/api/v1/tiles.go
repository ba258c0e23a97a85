package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/server/middleware"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/tile"
)

type CreateTileInput struct {
	Body struct {
		Title    string          `json:"title" minLength:"1" maxLength:"200" doc:"Tile title"`
		ImageURL string          `json:"imageUrl" minLength:"1" doc:"Image URL or storage key"`
		LinkURL  string          `json:"linkUrl,omitempty" doc:"Optional click-through URL"`
		Size     domain.TileSize `json:"size" enum:"SMALL,LARGE,FULL_WIDTH" doc:"Grid size class"`
	}
}

type CreateTileOutput struct {
	Body Envelope[*domain.Tile]
}

type ListTilesInput struct {
	Status string `query:"status" doc:"Filter by status (admin only; DRAFT or ACTIVE)"`
}

type ListTilesOutput struct {
	Body Envelope[[]*domain.Tile]
}

type UpdateTileInput struct {
	ID   uuid.UUID `path:"id" doc:"Tile ID"`
	Body struct {
		Title    string          `json:"title,omitempty" maxLength:"200" doc:"Tile title"`
		ImageURL string          `json:"imageUrl,omitempty" doc:"Image URL or storage key"`
		LinkURL  string          `json:"linkUrl,omitempty" doc:"Click-through URL"`
		Size     domain.TileSize `json:"size,omitempty" doc:"Grid size class"`
	}
}

type UpdateTileOutput struct {
	Body Envelope[*domain.Tile]
}

// RegisterTileRoutes wires the tile catalog. Listing is open to any
// authenticated caller; non-admins only ever see the ACTIVE set. Writes are
// admin-only, enforced here because the routes share a mixed-role group.
func RegisterTileRoutes(api huma.API, tiles TileService) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-tile",
		Method:        http.MethodPost,
		Path:          "/tiles",
		Summary:       "Create a draft tile",
		Tags:          []string{"Tiles"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CreateTileInput) (*CreateTileOutput, error) {
		if !middleware.IsAdmin(ctx) {
			return nil, huma.Error403Forbidden("admin access required")
		}
		email, _ := middleware.EmailFromContext(ctx)

		t, err := tiles.Create(ctx, tile.CreateInput{
			Title:    input.Body.Title,
			ImageURL: input.Body.ImageURL,
			LinkURL:  input.Body.LinkURL,
			Size:     input.Body.Size,
		}, email)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				return nil, huma.Error400BadRequest(err.Error())
			}
			return nil, huma.Error500InternalServerError("failed to create tile", err)
		}

		return &CreateTileOutput{Body: envelope(t)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-tiles",
		Method:      http.MethodGet,
		Path:        "/tiles",
		Summary:     "List tiles by status",
		Tags:        []string{"Tiles"},
	}, func(ctx context.Context, input *ListTilesInput) (*ListTilesOutput, error) {
		// Non-admins are pinned to the published set regardless of the
		// requested filter.
		status := domain.TileStatusActive
		if middleware.IsAdmin(ctx) {
			status = domain.TileStatusDraft
			if input.Status != "" {
				status = domain.TileStatus(input.Status)
				if status != domain.TileStatusDraft && status != domain.TileStatusActive {
					return nil, huma.Error400BadRequest("unknown tile status: " + input.Status)
				}
			}
		}

		list, err := tiles.ListByStatus(ctx, status)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list tiles", err)
		}

		return &ListTilesOutput{Body: envelope(list)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-tile",
		Method:      http.MethodPut,
		Path:        "/tiles/{id}",
		Summary:     "Update a tile",
		Tags:        []string{"Tiles"},
	}, func(ctx context.Context, input *UpdateTileInput) (*UpdateTileOutput, error) {
		if !middleware.IsAdmin(ctx) {
			return nil, huma.Error403Forbidden("admin access required")
		}

		t, err := tiles.Update(ctx, input.ID, tile.UpdateInput{
			Title:    input.Body.Title,
			ImageURL: input.Body.ImageURL,
			LinkURL:  input.Body.LinkURL,
			Size:     input.Body.Size,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				return nil, huma.Error404NotFound("tile not found")
			case errors.Is(err, domain.ErrValidation):
				return nil, huma.Error400BadRequest(err.Error())
			default:
				return nil, huma.Error500InternalServerError("failed to update tile", err)
			}
		}

		return &UpdateTileOutput{Body: envelope(t)}, nil
	})
}

package v1

import (
	"context"

	"github.com/google/uuid"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/media"
	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/tile"
)

// AccessResolver abstracts identity resolution for handler testing.
// *identity.Resolver satisfies this interface.
type AccessResolver interface {
	ValidateAccess(ctx context.Context, email string) (*domain.AccessGrant, error)
	ResolveRole(ctx context.Context, email string) (*domain.RoleInfo, error)
}

// TileService abstracts tile operations for handler testing.
// *tile.Registry satisfies this interface.
type TileService interface {
	Create(ctx context.Context, in tile.CreateInput, createdBy string) (*domain.Tile, error)
	ListByStatus(ctx context.Context, status domain.TileStatus) ([]*domain.Tile, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Tile, error)
	Update(ctx context.Context, id uuid.UUID, in tile.UpdateInput) (*domain.Tile, error)
}

// LayoutService abstracts layout lifecycle operations for handler testing.
// *layout.Manager satisfies this interface.
type LayoutService interface {
	SaveDraft(ctx context.Context, tiles []domain.TilePosition) (*domain.Layout, error)
	Publish(ctx context.Context, tiles []domain.TilePosition) (*domain.Layout, error)
	Draft(ctx context.Context) (*domain.Layout, error)
	Active(ctx context.Context) (*domain.Layout, error)
}

// YouthEmailService abstracts whitelist operations for handler testing.
// *youthemail.Registry satisfies this interface.
type YouthEmailService interface {
	Add(ctx context.Context, raw string) (*domain.YouthEmail, error)
	BulkAdd(ctx context.Context, raw []string) (domain.BulkUploadResult, error)
	List(ctx context.Context, q domain.YouthEmailQuery) (*domain.YouthEmailPage, error)
	SetStatus(ctx context.Context, ids []uuid.UUID, active bool) error
	Delete(ctx context.Context, ids []uuid.UUID) error
}

// MediaService abstracts presigned upload grants for handler testing.
// *media.Client satisfies this interface.
type MediaService interface {
	CreateUploadURL(ctx context.Context, req media.UploadRequest) (*media.UploadGrant, error)
}

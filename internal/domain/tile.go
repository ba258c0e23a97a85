package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TileSize string

const (
	TileSizeSmall     TileSize = "SMALL"
	TileSizeLarge     TileSize = "LARGE"
	TileSizeFullWidth TileSize = "FULL_WIDTH"
)

type TileStatus string

const (
	TileStatusDraft  TileStatus = "DRAFT"
	TileStatusActive TileStatus = "ACTIVE"
)

// tileDimensions maps a size class to its grid footprint. Width and height
// are always derived from the size class, never stored independently.
var tileDimensions = map[TileSize][2]int{
	TileSizeSmall:     {1, 1},
	TileSizeLarge:     {2, 2},
	TileSizeFullWidth: {4, 1},
}

// DimensionsFor returns the grid width and height for a size class.
func DimensionsFor(size TileSize) (width, height int, err error) {
	d, ok := tileDimensions[size]
	if !ok {
		return 0, 0, fmt.Errorf("tile: unknown size %q: %w", size, ErrValidation)
	}
	return d[0], d[1], nil
}

// Tile is a single homepage content card. Status is ACTIVE exactly when the
// tile is referenced by the published layout; only the layout publish
// operation flips it.
type Tile struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	ImageURL  string     `json:"imageUrl"`
	LinkURL   string     `json:"linkUrl,omitempty"`
	Size      TileSize   `json:"size"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Status    TileStatus `json:"status"`
	CreatedBy string     `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewTile creates a DRAFT tile with dimensions derived from the size class.
func NewTile(title, imageURL, linkURL string, size TileSize, createdBy string) (*Tile, error) {
	if title == "" {
		return nil, fmt.Errorf("tile: title is required: %w", ErrValidation)
	}
	if imageURL == "" {
		return nil, fmt.Errorf("tile: image URL is required: %w", ErrValidation)
	}

	w, h, err := DimensionsFor(size)
	if err != nil {
		return nil, err
	}

	return &Tile{
		ID:        uuid.New(),
		Title:     title,
		ImageURL:  imageURL,
		LinkURL:   linkURL,
		Size:      size,
		Width:     w,
		Height:    h,
		Status:    TileStatusDraft,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}, nil
}

type TileRepository interface {
	Create(ctx context.Context, t *Tile) error
	GetByID(ctx context.Context, id uuid.UUID) (*Tile, error)
	ListByStatus(ctx context.Context, status TileStatus) ([]*Tile, error)
	Update(ctx context.Context, t *Tile) error

	// Activate marks the given tiles ACTIVE. IDs that match no tile are
	// silently skipped.
	Activate(ctx context.Context, ids []uuid.UUID) error
	// DeactivateActive flips every ACTIVE tile back to DRAFT.
	DeactivateActive(ctx context.Context) error
}

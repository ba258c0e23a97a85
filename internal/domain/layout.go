package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type LayoutStatus string

const (
	LayoutStatusDraft     LayoutStatus = "DRAFT"
	LayoutStatusPublished LayoutStatus = "PUBLISHED"
	LayoutStatusArchived  LayoutStatus = "ARCHIVED"
)

// TilePosition is a tile placement within a layout. The coordinates are
// display hints carried through as-is; order determines render sequence.
type TilePosition struct {
	TileID uuid.UUID `json:"tileId"`
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Order  int       `json:"order"`
}

// Layout is an ordered list of tile placements plus a lifecycle status.
// At most one layout is DRAFT and at most one is PUBLISHED at any time;
// superseded published layouts become ARCHIVED.
type Layout struct {
	ID          uuid.UUID      `json:"id"`
	Tiles       []TilePosition `json:"tiles"`
	Status      LayoutStatus   `json:"status"`
	PublishedAt *time.Time     `json:"publishedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// NewPublishedLayout creates the snapshot row inserted by a publish.
func NewPublishedLayout(tiles []TilePosition, now time.Time) *Layout {
	if tiles == nil {
		tiles = []TilePosition{}
	}
	return &Layout{
		ID:          uuid.New(),
		Tiles:       tiles,
		Status:      LayoutStatusPublished,
		PublishedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type LayoutRepository interface {
	// GetByStatus returns the single layout with the given status, or
	// ErrNotFound when none exists.
	GetByStatus(ctx context.Context, status LayoutStatus) (*Layout, error)
	Insert(ctx context.Context, l *Layout) error

	// ArchivePublished marks every PUBLISHED layout ARCHIVED. There should
	// be at most one, but stray extras are archived too.
	ArchivePublished(ctx context.Context) error

	// UpsertDraft overwrites the singleton draft's tile list, creating the
	// draft row if it does not exist yet.
	UpsertDraft(ctx context.Context, tiles []TilePosition, now time.Time) (*Layout, error)
}

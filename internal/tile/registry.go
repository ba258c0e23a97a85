// Package tile owns tile records. Activation state is driven exclusively by
// the layout publish workflow; this package never flips it on its own.
package tile

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

// CredentialMinter derives a short-lived view URL from a stored image
// reference. Minting happens at read time; the stored reference stays bare.
type CredentialMinter interface {
	MintViewURL(ctx context.Context, ref string) (string, error)
}

type Registry struct {
	repo   domain.TileRepository
	minter CredentialMinter
}

func NewRegistry(repo domain.TileRepository, minter CredentialMinter) *Registry {
	return &Registry{repo: repo, minter: minter}
}

// CreateInput carries the admin-supplied tile fields.
type CreateInput struct {
	Title    string
	ImageURL string
	LinkURL  string
	Size     domain.TileSize
}

// UpdateInput carries a partial tile update; empty fields are left unchanged.
type UpdateInput struct {
	Title    string
	ImageURL string
	LinkURL  string
	Size     domain.TileSize
}

func (g *Registry) Create(ctx context.Context, in CreateInput, createdBy string) (*domain.Tile, error) {
	t, err := domain.NewTile(in.Title, sanitizeImageRef(in.ImageURL), in.LinkURL, in.Size, createdBy)
	if err != nil {
		return nil, fmt.Errorf("tile.Create: %w", err)
	}

	err = g.repo.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("tile.Create: %w", err)
	}

	g.mintInto(ctx, t)

	return t, nil
}

// ListByStatus returns tiles newest-first with freshly minted view URLs.
// Minting is per tile, concurrent, and failure-isolated: a tile whose URL
// cannot be signed keeps its stored reference instead of sinking the whole
// listing.
func (g *Registry) ListByStatus(ctx context.Context, status domain.TileStatus) ([]*domain.Tile, error) {
	tiles, err := g.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("tile.ListByStatus: %w", err)
	}

	var wg sync.WaitGroup
	for _, t := range tiles {
		if t.ImageURL == "" {
			continue
		}
		wg.Add(1)
		go func(t *domain.Tile) {
			defer wg.Done()
			g.mintInto(ctx, t)
		}(t)
	}
	wg.Wait()

	if tiles == nil {
		tiles = []*domain.Tile{}
	}

	return tiles, nil
}

func (g *Registry) Get(ctx context.Context, id uuid.UUID) (*domain.Tile, error) {
	t, err := g.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tile.Get: %w", err)
	}

	g.mintInto(ctx, t)

	return t, nil
}

// Update applies a partial edit. The image reference is re-sanitized and the
// dimensions are recomputed whenever the size class changes.
func (g *Registry) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.Tile, error) {
	t, err := g.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tile.Update: %w", err)
	}

	if in.Title != "" {
		t.Title = in.Title
	}
	if in.ImageURL != "" {
		t.ImageURL = sanitizeImageRef(in.ImageURL)
	}
	if in.LinkURL != "" {
		t.LinkURL = in.LinkURL
	}
	if in.Size != "" {
		w, h, dimErr := domain.DimensionsFor(in.Size)
		if dimErr != nil {
			return nil, fmt.Errorf("tile.Update: %w", dimErr)
		}
		t.Size = in.Size
		t.Width = w
		t.Height = h
	}

	err = g.repo.Update(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("tile.Update: %w", err)
	}

	g.mintInto(ctx, t)

	return t, nil
}

// mintInto swaps the tile's stored reference for a short-lived view URL,
// keeping the stored value when minting fails.
func (g *Registry) mintInto(ctx context.Context, t *domain.Tile) {
	if t.ImageURL == "" {
		return
	}

	signed, err := g.minter.MintViewURL(ctx, t.ImageURL)
	if err != nil {
		log.Warn().Err(err).Str("tile_id", t.ID.String()).Msg("tile: failed to mint view URL")
		return
	}

	t.ImageURL = signed
}

// sanitizeImageRef strips any query-string signature from an uploaded URL so
// only the bare object reference is persisted.
func sanitizeImageRef(url string) string {
	bare, _, _ := strings.Cut(url, "?")
	return bare
}

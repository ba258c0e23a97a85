// Package layout owns the singleton draft layout and the published layout,
// including the publish transition that flips tile activation.
package layout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

type Manager struct {
	layouts domain.LayoutRepository
	tiles   domain.TileRepository
}

func NewManager(layouts domain.LayoutRepository, tiles domain.TileRepository) *Manager {
	return &Manager{layouts: layouts, tiles: tiles}
}

// SaveDraft overwrites the singleton draft's tile list, creating the draft
// on first save.
func (m *Manager) SaveDraft(ctx context.Context, tiles []domain.TilePosition) (*domain.Layout, error) {
	draft, err := m.layouts.UpsertDraft(ctx, tiles, time.Now())
	if err != nil {
		return nil, fmt.Errorf("layout.SaveDraft: %w", err)
	}

	return draft, nil
}

// Publish runs the five-step publish transition:
//
//  1. archive every currently published layout
//  2. flip all active tiles back to draft
//  3. activate the tiles referenced by the new list
//  4. insert the new published snapshot
//  5. mirror the published tile list into the draft
//
// The steps are individually idempotent but not wrapped in a transaction;
// a concurrent publish or draft save can interleave between them. That
// window is accepted: publishes are rare, admin-only actions.
//
// Unknown tile IDs in the incoming list activate nothing and are not an
// error.
func (m *Manager) Publish(ctx context.Context, tiles []domain.TilePosition) (*domain.Layout, error) {
	err := m.layouts.ArchivePublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("layout.Publish: archive: %w", err)
	}

	err = m.tiles.DeactivateActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("layout.Publish: deactivate: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(tiles))
	for _, tp := range tiles {
		ids = append(ids, tp.TileID)
	}
	if len(ids) > 0 {
		err = m.tiles.Activate(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("layout.Publish: activate: %w", err)
		}
	}

	published := domain.NewPublishedLayout(tiles, time.Now())
	err = m.layouts.Insert(ctx, published)
	if err != nil {
		return nil, fmt.Errorf("layout.Publish: insert: %w", err)
	}

	// Keep the editor's draft in sync with what just went live. Unpublished
	// draft edits are overwritten here on purpose.
	_, err = m.layouts.UpsertDraft(ctx, tiles, published.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("layout.Publish: mirror draft: %w", err)
	}

	log.Info().
		Str("layout_id", published.ID.String()).
		Int("tiles", len(tiles)).
		Msg("layout published")

	return published, nil
}

// Draft returns the current draft layout, or nil when none has been saved
// yet.
func (m *Manager) Draft(ctx context.Context) (*domain.Layout, error) {
	return m.getByStatus(ctx, domain.LayoutStatusDraft)
}

// Active returns the currently published layout, or nil when nothing has
// been published.
func (m *Manager) Active(ctx context.Context) (*domain.Layout, error) {
	return m.getByStatus(ctx, domain.LayoutStatusPublished)
}

func (m *Manager) getByStatus(ctx context.Context, status domain.LayoutStatus) (*domain.Layout, error) {
	l, err := m.layouts.GetByStatus(ctx, status)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("layout.getByStatus: %w", err)
	}

	return l, nil
}

package layout

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

// fakeLayouts keeps layouts in memory and enforces nothing, so the tests can
// observe exactly what the manager asked for.
type fakeLayouts struct {
	rows []*domain.Layout
}

func (f *fakeLayouts) GetByStatus(_ context.Context, status domain.LayoutStatus) (*domain.Layout, error) {
	for _, l := range f.rows {
		if l.Status == status {
			return l, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeLayouts) Insert(_ context.Context, l *domain.Layout) error {
	f.rows = append(f.rows, l)
	return nil
}

func (f *fakeLayouts) ArchivePublished(_ context.Context) error {
	for _, l := range f.rows {
		if l.Status == domain.LayoutStatusPublished {
			l.Status = domain.LayoutStatusArchived
		}
	}
	return nil
}

func (f *fakeLayouts) UpsertDraft(_ context.Context, tiles []domain.TilePosition, now time.Time) (*domain.Layout, error) {
	if tiles == nil {
		tiles = []domain.TilePosition{}
	}
	for _, l := range f.rows {
		if l.Status == domain.LayoutStatusDraft {
			l.Tiles = tiles
			l.UpdatedAt = now
			return l, nil
		}
	}
	draft := &domain.Layout{
		ID:        uuid.New(),
		Tiles:     tiles,
		Status:    domain.LayoutStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.rows = append(f.rows, draft)
	return draft, nil
}

func (f *fakeLayouts) countByStatus(status domain.LayoutStatus) int {
	n := 0
	for _, l := range f.rows {
		if l.Status == status {
			n++
		}
	}
	return n
}

type fakeTiles struct {
	domain.TileRepository

	status map[uuid.UUID]domain.TileStatus
}

func (f *fakeTiles) Activate(_ context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		if _, ok := f.status[id]; ok {
			f.status[id] = domain.TileStatusActive
		}
	}
	return nil
}

func (f *fakeTiles) DeactivateActive(_ context.Context) error {
	for id, s := range f.status {
		if s == domain.TileStatusActive {
			f.status[id] = domain.TileStatusDraft
		}
	}
	return nil
}

func pos(id uuid.UUID, order int) domain.TilePosition {
	return domain.TilePosition{TileID: id, Order: order, Width: 1, Height: 1}
}

func TestPublish(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("flips_activation", func(t *testing.T) {
		t.Parallel()

		t1, t2, t3 := uuid.New(), uuid.New(), uuid.New()
		tiles := &fakeTiles{status: map[uuid.UUID]domain.TileStatus{
			t1: domain.TileStatusDraft,
			t2: domain.TileStatusDraft,
			t3: domain.TileStatusActive, // active from a previous publish
		}}
		layouts := &fakeLayouts{}
		m := NewManager(layouts, tiles)

		published, err := m.Publish(ctx, []domain.TilePosition{pos(t1, 0), pos(t2, 1)})
		require.NoError(t, err)

		assert.Equal(t, domain.TileStatusActive, tiles.status[t1])
		assert.Equal(t, domain.TileStatusActive, tiles.status[t2])
		assert.Equal(t, domain.TileStatusDraft, tiles.status[t3], "previously active tile demoted")
		assert.Equal(t, domain.LayoutStatusPublished, published.Status)
		require.NotNil(t, published.PublishedAt)
	})

	t.Run("archives_previous_published", func(t *testing.T) {
		t.Parallel()

		tiles := &fakeTiles{status: map[uuid.UUID]domain.TileStatus{}}
		layouts := &fakeLayouts{}
		m := NewManager(layouts, tiles)

		_, err := m.Publish(ctx, nil)
		require.NoError(t, err)
		_, err = m.Publish(ctx, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, layouts.countByStatus(domain.LayoutStatusPublished))
		assert.Equal(t, 1, layouts.countByStatus(domain.LayoutStatusArchived))
		assert.Equal(t, 1, layouts.countByStatus(domain.LayoutStatusDraft))
	})

	t.Run("empty_list_still_deactivates", func(t *testing.T) {
		t.Parallel()

		t1 := uuid.New()
		tiles := &fakeTiles{status: map[uuid.UUID]domain.TileStatus{t1: domain.TileStatusActive}}
		layouts := &fakeLayouts{}
		m := NewManager(layouts, tiles)

		published, err := m.Publish(ctx, []domain.TilePosition{})
		require.NoError(t, err)

		assert.Equal(t, domain.TileStatusDraft, tiles.status[t1])
		assert.NotNil(t, published.Tiles)
		assert.Empty(t, published.Tiles)
	})

	t.Run("unknown_tile_id_is_noop", func(t *testing.T) {
		t.Parallel()

		tiles := &fakeTiles{status: map[uuid.UUID]domain.TileStatus{}}
		m := NewManager(&fakeLayouts{}, tiles)

		_, err := m.Publish(ctx, []domain.TilePosition{pos(uuid.New(), 0)})
		assert.NoError(t, err)
	})

	t.Run("draft_mirrors_published", func(t *testing.T) {
		t.Parallel()

		t1 := uuid.New()
		tiles := &fakeTiles{status: map[uuid.UUID]domain.TileStatus{t1: domain.TileStatusDraft}}
		layouts := &fakeLayouts{}
		m := NewManager(layouts, tiles)

		// A stale draft exists before publish.
		_, err := m.SaveDraft(ctx, []domain.TilePosition{pos(uuid.New(), 0), pos(uuid.New(), 1)})
		require.NoError(t, err)

		want := []domain.TilePosition{pos(t1, 0)}
		_, err = m.Publish(ctx, want)
		require.NoError(t, err)

		draft, err := m.Draft(ctx)
		require.NoError(t, err)
		require.NotNil(t, draft)
		assert.Equal(t, want, draft.Tiles, "draft mirrors the just-published list")
	})
}

func TestSaveDraft(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("upserts_singleton", func(t *testing.T) {
		t.Parallel()

		layouts := &fakeLayouts{}
		m := NewManager(layouts, &fakeTiles{status: map[uuid.UUID]domain.TileStatus{}})

		first, err := m.SaveDraft(ctx, []domain.TilePosition{pos(uuid.New(), 0)})
		require.NoError(t, err)

		second, err := m.SaveDraft(ctx, []domain.TilePosition{pos(uuid.New(), 0), pos(uuid.New(), 1)})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "draft is updated in place")
		assert.Equal(t, 1, layouts.countByStatus(domain.LayoutStatusDraft))
		assert.Len(t, second.Tiles, 2)
	})
}

func TestDraftAndActiveWhenAbsent(t *testing.T) {
	t.Parallel()

	m := NewManager(&fakeLayouts{}, &fakeTiles{status: map[uuid.UUID]domain.TileStatus{}})

	draft, err := m.Draft(context.Background())
	require.NoError(t, err)
	assert.Nil(t, draft)

	active, err := m.Active(context.Background())
	require.NoError(t, err)
	assert.Nil(t, active)
}

package youthemail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

// fakeRepo mimics the unique-email constraint in memory.
type fakeRepo struct {
	domain.YouthEmailRepository

	stored    map[string]*domain.YouthEmail
	insertErr error

	lastBulk []string
	lastList domain.YouthEmailQuery
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: map[string]*domain.YouthEmail{}}
}

func (f *fakeRepo) Insert(_ context.Context, e *domain.YouthEmail) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if _, ok := f.stored[e.Email]; ok {
		return domain.ErrConflict
	}
	f.stored[e.Email] = e
	return nil
}

func (f *fakeRepo) BulkInsert(_ context.Context, emails []string, _ time.Time) (domain.BulkInsertResult, error) {
	if f.insertErr != nil {
		return domain.BulkInsertResult{}, f.insertErr
	}
	f.lastBulk = emails

	var res domain.BulkInsertResult
	for _, email := range emails {
		if _, ok := f.stored[email]; ok {
			res.Rejected++
			continue
		}
		f.stored[email] = domain.NewYouthEmail(email)
		res.Inserted++
	}
	return res, nil
}

func (f *fakeRepo) List(_ context.Context, q domain.YouthEmailQuery) ([]*domain.YouthEmail, int64, error) {
	f.lastList = q
	var items []*domain.YouthEmail
	for _, e := range f.stored {
		items = append(items, e)
	}
	return items, int64(len(items)), nil
}

func (f *fakeRepo) SetStatus(_ context.Context, ids []uuid.UUID, active bool) error {
	for _, e := range f.stored {
		for _, id := range ids {
			if e.ID == id {
				e.IsActive = active
			}
		}
	}
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, ids []uuid.UUID) error {
	for email, e := range f.stored {
		for _, id := range ids {
			if e.ID == id {
				delete(f.stored, email)
			}
		}
	}
	return nil
}

func TestAdd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("normalizes", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		g := NewRegistry(repo)

		entry, err := g.Add(ctx, "  Kid@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "kid@example.com", entry.Email)
		assert.True(t, entry.IsActive)
	})

	t.Run("duplicate_is_conflict", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		g := NewRegistry(repo)

		_, err := g.Add(ctx, "kid@example.com")
		require.NoError(t, err)

		_, err = g.Add(ctx, "KID@example.com")
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("not_an_email", func(t *testing.T) {
		t.Parallel()

		g := NewRegistry(newFakeRepo())

		_, err := g.Add(ctx, "not-an-email")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestBulkAdd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("counts_and_filtering", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		g := NewRegistry(repo)

		// One in-batch duplicate pair, one invalid entry.
		res, err := g.BulkAdd(ctx, []string{"a@x.com", "A@X.com ", " b@x.com", "not-an-email"})
		require.NoError(t, err)

		assert.Equal(t, 4, res.TotalProcessed, "processed counts the raw upload")
		assert.Equal(t, 2, res.TotalInserted)
		assert.Equal(t, 2, res.TotalDuplicatesIgnored)
		assert.Equal(t, []string{"a@x.com", "b@x.com"}, repo.lastBulk, "normalized and batch-deduplicated")
	})

	t.Run("idempotent_on_repeat", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		g := NewRegistry(repo)

		input := []string{"a@x.com", "A@X.com ", " b@x.com", "not-an-email"}

		_, err := g.BulkAdd(ctx, input)
		require.NoError(t, err)

		res, err := g.BulkAdd(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 4, res.TotalProcessed)
		assert.Equal(t, 0, res.TotalInserted)
		assert.Equal(t, 4, res.TotalDuplicatesIgnored)
	})

	t.Run("empty_input", func(t *testing.T) {
		t.Parallel()

		g := NewRegistry(newFakeRepo())

		res, err := g.BulkAdd(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.BulkUploadResult{}, res)
	})

	t.Run("storage_failure_surfaces", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		repo.insertErr = errors.New("pg: connection refused")
		g := NewRegistry(repo)

		_, err := g.BulkAdd(ctx, []string{"a@x.com"})
		require.Error(t, err)
	})
}

func TestListDefaults(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	g := NewRegistry(repo)

	page, err := g.List(context.Background(), domain.YouthEmailQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.NotNil(t, page.Items, "empty page serializes as [], not null")
	assert.Equal(t, domain.YouthEmailSortCreatedAt, repo.lastList.SortBy)
}

func TestListEndDateInclusive(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	g := NewRegistry(repo)

	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := g.List(context.Background(), domain.YouthEmailQuery{EndDate: &end})
	require.NoError(t, err)

	require.NotNil(t, repo.lastList.EndDate)
	assert.Equal(t, 23, repo.lastList.EndDate.Hour(), "end date extends to end of day")
}

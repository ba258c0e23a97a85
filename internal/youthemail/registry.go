// Package youthemail owns the whitelist of authorized youth-member emails.
package youthemail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 200
)

type Registry struct {
	repo domain.YouthEmailRepository
}

func NewRegistry(repo domain.YouthEmailRepository) *Registry {
	return &Registry{repo: repo}
}

// Add inserts a single whitelist entry. Duplicates are a Conflict, unlike
// bulk upload where they are silently skipped.
func (g *Registry) Add(ctx context.Context, raw string) (*domain.YouthEmail, error) {
	email := normalize(raw)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("youthemail.Add: %q is not an email address: %w", raw, domain.ErrValidation)
	}

	entry := domain.NewYouthEmail(email)
	err := g.repo.Insert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("youthemail.Add: %w", err)
	}

	return entry, nil
}

// BulkAdd ingests a raw upload of email addresses. TotalProcessed counts the
// upload as submitted; normalization drops blanks and non-addresses, the
// batch is deduplicated against itself, and anything already stored is
// skipped by the unique constraint rather than failing the call. Duplicates
// are therefore never an error here; only storage failure is.
func (g *Registry) BulkAdd(ctx context.Context, raw []string) (domain.BulkUploadResult, error) {
	if len(raw) == 0 {
		return domain.BulkUploadResult{}, nil
	}

	totalProcessed := len(raw)

	seen := make(map[string]struct{}, len(raw))
	unique := make([]string, 0, len(raw))
	for _, r := range raw {
		email := normalize(r)
		if email == "" || !strings.Contains(email, "@") {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		unique = append(unique, email)
	}

	res, err := g.repo.BulkInsert(ctx, unique, time.Now())
	if err != nil {
		return domain.BulkUploadResult{}, fmt.Errorf("youthemail.BulkAdd: %w", err)
	}

	if res.Rejected > 0 {
		log.Info().
			Int("attempted", len(unique)).
			Int("inserted", res.Inserted).
			Int("already_present", res.Rejected).
			Msg("bulk email upload partially deduplicated")
	}

	return domain.BulkUploadResult{
		TotalProcessed:         totalProcessed,
		TotalInserted:          res.Inserted,
		TotalDuplicatesIgnored: totalProcessed - res.Inserted,
	}, nil
}

// List returns one page of whitelist entries, applying defaults for
// pagination and sort.
func (g *Registry) List(ctx context.Context, q domain.YouthEmailQuery) (*domain.YouthEmailPage, error) {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	if q.SortBy == "" {
		q.SortBy = domain.YouthEmailSortCreatedAt
	}
	if q.EndDate != nil {
		// Date-only filters are inclusive of the whole end day.
		end := q.EndDate.Truncate(24 * time.Hour).Add(24*time.Hour - time.Millisecond)
		q.EndDate = &end
	}

	items, total, err := g.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("youthemail.List: %w", err)
	}
	if items == nil {
		items = []*domain.YouthEmail{}
	}

	return &domain.YouthEmailPage{
		Items:    items,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// SetStatus toggles isActive for the given entries.
func (g *Registry) SetStatus(ctx context.Context, ids []uuid.UUID, active bool) error {
	err := g.repo.SetStatus(ctx, ids, active)
	if err != nil {
		return fmt.Errorf("youthemail.SetStatus: %w", err)
	}
	return nil
}

// Delete removes the given entries outright.
func (g *Registry) Delete(ctx context.Context, ids []uuid.UUID) error {
	err := g.repo.Delete(ctx, ids)
	if err != nil {
		return fmt.Errorf("youthemail.Delete: %w", err)
	}
	return nil
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

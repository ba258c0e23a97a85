package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// YouthEmail is one whitelist entry. Email is stored normalized (lowercased,
// trimmed) and is unique across the collection; the uniqueness constraint
// lives in the database so concurrent bulk inserts stay correct.
type YouthEmail struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewYouthEmail creates an active whitelist entry for an already-normalized
// email.
func NewYouthEmail(email string) *YouthEmail {
	return &YouthEmail{
		ID:        uuid.New(),
		Email:     email,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

// BulkInsertResult is the structured outcome of an unordered multi-insert
// against the unique-email constraint. Rejected counts duplicate-key misses,
// which are expected and never an error.
type BulkInsertResult struct {
	Inserted int
	Rejected int
}

// BulkUploadResult is the caller-visible outcome of a bulk add.
// TotalProcessed reflects the raw upload size before any filtering.
type BulkUploadResult struct {
	TotalProcessed         int `json:"totalProcessed"`
	TotalInserted          int `json:"totalInserted"`
	TotalDuplicatesIgnored int `json:"totalDuplicatesIgnored"`
}

type YouthEmailSortField string

const (
	YouthEmailSortCreatedAt YouthEmailSortField = "createdAt"
	YouthEmailSortEmail     YouthEmailSortField = "email"
)

// YouthEmailQuery filters and paginates whitelist listings.
type YouthEmailQuery struct {
	Page      int
	PageSize  int
	Search    string
	IsActive  *bool
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    YouthEmailSortField
	SortDesc  bool
}

// YouthEmailPage is one page of whitelist entries.
type YouthEmailPage struct {
	Items    []*YouthEmail `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

type YouthEmailRepository interface {
	// Insert adds a single entry; a duplicate email yields ErrConflict.
	Insert(ctx context.Context, e *YouthEmail) error

	// BulkInsert attempts an unordered insert of already-normalized,
	// batch-deduplicated emails. Duplicate-key conflicts are tolerated and
	// reported in the result, never as an error.
	BulkInsert(ctx context.Context, emails []string, now time.Time) (BulkInsertResult, error)

	List(ctx context.Context, q YouthEmailQuery) ([]*YouthEmail, int64, error)
	SetStatus(ctx context.Context, ids []uuid.UUID, active bool) error
	Delete(ctx context.Context, ids []uuid.UUID) error

	// GetActiveByEmail returns the entry for a normalized email only when it
	// is active; ErrNotFound otherwise.
	GetActiveByEmail(ctx context.Context, email string) (*YouthEmail, error)
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

type LayoutRepo struct {
	pool *pgxpool.Pool
}

func NewLayoutRepo(pool *pgxpool.Pool) *LayoutRepo {
	return &LayoutRepo{pool: pool}
}

func (r *LayoutRepo) GetByStatus(ctx context.Context, status domain.LayoutStatus) (*domain.Layout, error) {
	var l domain.Layout
	var tiles []byte

	err := r.pool.QueryRow(ctx,
		`SELECT id, tiles, status, published_at, created_at, updated_at
		 FROM layouts WHERE status = $1`,
		status,
	).Scan(&l.ID, &tiles, &l.Status, &l.PublishedAt, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("layoutRepo.GetByStatus: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("layoutRepo.GetByStatus: %w", err)
	}

	err = json.Unmarshal(tiles, &l.Tiles)
	if err != nil {
		return nil, fmt.Errorf("layoutRepo.GetByStatus: unmarshal tiles: %w", err)
	}

	return &l, nil
}

func (r *LayoutRepo) Insert(ctx context.Context, l *domain.Layout) error {
	tiles, err := json.Marshal(l.Tiles)
	if err != nil {
		return fmt.Errorf("layoutRepo.Insert: marshal tiles: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO layouts (id, tiles, status, published_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, tiles, l.Status, l.PublishedAt, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("layoutRepo.Insert: %w", err)
	}

	return nil
}

func (r *LayoutRepo) ArchivePublished(ctx context.Context) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE layouts SET status = $1, updated_at = now() WHERE status = $2`,
		domain.LayoutStatusArchived, domain.LayoutStatusPublished,
	)
	if err != nil {
		return fmt.Errorf("layoutRepo.ArchivePublished: %w", err)
	}

	return nil
}

func (r *LayoutRepo) UpsertDraft(ctx context.Context, tiles []domain.TilePosition, now time.Time) (*domain.Layout, error) {
	if tiles == nil {
		tiles = []domain.TilePosition{}
	}

	encoded, err := json.Marshal(tiles)
	if err != nil {
		return nil, fmt.Errorf("layoutRepo.UpsertDraft: marshal tiles: %w", err)
	}

	// Update-then-insert instead of ON CONFLICT: the singleton draft is
	// keyed by status, which carries no unique constraint of its own.
	tag, err := r.pool.Exec(ctx,
		`UPDATE layouts SET tiles = $1, updated_at = $2 WHERE status = $3`,
		encoded, now, domain.LayoutStatusDraft,
	)
	if err != nil {
		return nil, fmt.Errorf("layoutRepo.UpsertDraft: update: %w", err)
	}

	if tag.RowsAffected() == 0 {
		draft := &domain.Layout{
			ID:        uuid.New(),
			Tiles:     tiles,
			Status:    domain.LayoutStatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err = r.Insert(ctx, draft)
		if err != nil {
			return nil, fmt.Errorf("layoutRepo.UpsertDraft: %w", err)
		}
		return draft, nil
	}

	return r.GetByStatus(ctx, domain.LayoutStatusDraft)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

type TileRepo struct {
	pool *pgxpool.Pool
}

func NewTileRepo(pool *pgxpool.Pool) *TileRepo {
	return &TileRepo{pool: pool}
}

func (r *TileRepo) Create(ctx context.Context, t *domain.Tile) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO tiles (id, title, image_url, link_url, size, width, height, status, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.Title, t.ImageURL, nilIfEmpty(t.LinkURL),
		t.Size, t.Width, t.Height, t.Status, t.CreatedBy, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("tileRepo.Create: %w", err)
	}

	return nil
}

func (r *TileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tile, error) {
	var t domain.Tile
	var linkURL *string

	err := r.pool.QueryRow(ctx,
		`SELECT id, title, image_url, link_url, size, width, height, status, created_by, created_at
		 FROM tiles WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Title, &t.ImageURL, &linkURL, &t.Size, &t.Width, &t.Height, &t.Status, &t.CreatedBy, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("tileRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("tileRepo.GetByID: %w", err)
	}

	t.LinkURL = derefStr(linkURL)

	return &t, nil
}

func (r *TileRepo) ListByStatus(ctx context.Context, status domain.TileStatus) ([]*domain.Tile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, image_url, link_url, size, width, height, status, created_by, created_at
		 FROM tiles WHERE status = $1 ORDER BY created_at DESC, id`,
		status,
	)
	if err != nil {
		return nil, fmt.Errorf("tileRepo.ListByStatus: %w", err)
	}
	defer rows.Close()

	var tiles []*domain.Tile
	for rows.Next() {
		var t domain.Tile
		var linkURL *string

		err = rows.Scan(&t.ID, &t.Title, &t.ImageURL, &linkURL, &t.Size, &t.Width, &t.Height, &t.Status, &t.CreatedBy, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("tileRepo.ListByStatus: scan: %w", err)
		}

		t.LinkURL = derefStr(linkURL)
		tiles = append(tiles, &t)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("tileRepo.ListByStatus: rows: %w", err)
	}

	return tiles, nil
}

func (r *TileRepo) Update(ctx context.Context, t *domain.Tile) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tiles SET title = $1, image_url = $2, link_url = $3, size = $4, width = $5, height = $6
		 WHERE id = $7`,
		t.Title, t.ImageURL, nilIfEmpty(t.LinkURL), t.Size, t.Width, t.Height, t.ID,
	)
	if err != nil {
		return fmt.Errorf("tileRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tileRepo.Update: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *TileRepo) Activate(ctx context.Context, ids []uuid.UUID) error {
	// Unknown IDs simply match nothing; that is fine by design of the
	// publish workflow.
	_, err := r.pool.Exec(ctx,
		`UPDATE tiles SET status = $1 WHERE id = ANY($2)`,
		domain.TileStatusActive, ids,
	)
	if err != nil {
		return fmt.Errorf("tileRepo.Activate: %w", err)
	}

	return nil
}

func (r *TileRepo) DeactivateActive(ctx context.Context) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE tiles SET status = $1 WHERE status = $2`,
		domain.TileStatusDraft, domain.TileStatusActive,
	)
	if err != nil {
		return fmt.Errorf("tileRepo.DeactivateActive: %w", err)
	}

	return nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

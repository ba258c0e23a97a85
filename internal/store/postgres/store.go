package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

type Store struct {
	pool        *pgxpool.Pool
	tiles       *TileRepo
	layouts     *LayoutRepo
	youthEmails *YouthEmailRepo
	staff       *StaffRepo
	customers   *CustomerRepo
}

func New(ctx context.Context, dsn string, maxConns int32) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: parse config: %w", err)
	}

	cfg.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: connect: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}

	return &Store{
		pool:        pool,
		tiles:       NewTileRepo(pool),
		layouts:     NewLayoutRepo(pool),
		youthEmails: NewYouthEmailRepo(pool),
		staff:       NewStaffRepo(pool),
		customers:   NewCustomerRepo(pool),
	}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Tiles() domain.TileRepository             { return s.tiles }
func (s *Store) Layouts() domain.LayoutRepository         { return s.layouts }
func (s *Store) YouthEmails() domain.YouthEmailRepository { return s.youthEmails }
func (s *Store) Staff() domain.StaffDirectory             { return s.staff }
func (s *Store) Customers() domain.CustomerDirectory      { return s.customers }

// isUniqueViolation reports whether err is a Postgres duplicate-key error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

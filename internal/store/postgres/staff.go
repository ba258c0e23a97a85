package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

// StaffRepo reads the staff lookup table. The table is owned by an external
// system of record; this service never writes to it.
type StaffRepo struct {
	pool *pgxpool.Pool
}

func NewStaffRepo(pool *pgxpool.Pool) *StaffRepo {
	return &StaffRepo{pool: pool}
}

func (r *StaffRepo) GetByEmail(ctx context.Context, email string) (*domain.StaffRecord, error) {
	var s domain.StaffRecord
	var name *string

	err := r.pool.QueryRow(ctx,
		`SELECT email, name, youth_portal_access FROM staff WHERE email = $1`,
		email,
	).Scan(&s.Email, &name, &s.YouthPortalAccess)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("staffRepo.GetByEmail: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("staffRepo.GetByEmail: %w", err)
	}

	s.Name = derefStr(name)

	return &s, nil
}

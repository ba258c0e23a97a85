package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

// CustomerRepo reads the customer lookup table. The table is owned by an
// external system of record; this service never writes to it.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.CustomerRecord, error) {
	var c domain.CustomerRecord
	var firstName, lastName *string

	err := r.pool.QueryRow(ctx,
		`SELECT email, first_name, last_name FROM customers WHERE email = $1`,
		email,
	).Scan(&c.Email, &firstName, &lastName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("customerRepo.GetByEmail: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("customerRepo.GetByEmail: %w", err)
	}

	c.FirstName = derefStr(firstName)
	c.LastName = derefStr(lastName)

	return &c, nil
}

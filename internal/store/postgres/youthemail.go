package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

type YouthEmailRepo struct {
	pool *pgxpool.Pool
}

func NewYouthEmailRepo(pool *pgxpool.Pool) *YouthEmailRepo {
	return &YouthEmailRepo{pool: pool}
}

func (r *YouthEmailRepo) Insert(ctx context.Context, e *domain.YouthEmail) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO youth_emails (id, email, is_active, created_at)
		 VALUES ($1, $2, $3, $4)`,
		e.ID, e.Email, e.IsActive, e.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("youthEmailRepo.Insert: %w", domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("youthEmailRepo.Insert: %w", err)
	}

	return nil
}

func (r *YouthEmailRepo) BulkInsert(ctx context.Context, emails []string, now time.Time) (domain.BulkInsertResult, error) {
	if len(emails) == 0 {
		return domain.BulkInsertResult{}, nil
	}

	ids := make([]uuid.UUID, len(emails))
	for i := range emails {
		ids[i] = uuid.New()
	}

	// A single unordered statement: duplicate keys are dropped row by row
	// without aborting siblings, and the command tag reports how many rows
	// actually landed.
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO youth_emails (id, email, is_active, created_at)
		 SELECT u.id, u.email, true, $3
		 FROM unnest($1::uuid[], $2::text[]) AS u(id, email)
		 ON CONFLICT (email) DO NOTHING`,
		ids, emails, now,
	)
	if err != nil {
		return domain.BulkInsertResult{}, fmt.Errorf("youthEmailRepo.BulkInsert: %w", err)
	}

	inserted := int(tag.RowsAffected())

	return domain.BulkInsertResult{
		Inserted: inserted,
		Rejected: len(emails) - inserted,
	}, nil
}

func (r *YouthEmailRepo) List(ctx context.Context, q domain.YouthEmailQuery) ([]*domain.YouthEmail, int64, error) {
	where, args := buildYouthEmailFilter(q)

	var total int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM youth_emails`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("youthEmailRepo.List: count: %w", err)
	}

	orderBy := "created_at"
	if q.SortBy == domain.YouthEmailSortEmail {
		orderBy = "email"
	}
	direction := "ASC"
	if q.SortDesc {
		direction = "DESC"
	}

	offset := (q.Page - 1) * q.PageSize
	args = append(args, q.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT id, email, is_active, created_at FROM youth_emails%s ORDER BY %s %s, id LIMIT $%d OFFSET $%d`,
		where, orderBy, direction, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("youthEmailRepo.List: %w", err)
	}
	defer rows.Close()

	var items []*domain.YouthEmail
	for rows.Next() {
		var e domain.YouthEmail
		err = rows.Scan(&e.ID, &e.Email, &e.IsActive, &e.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("youthEmailRepo.List: scan: %w", err)
		}
		items = append(items, &e)
	}
	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("youthEmailRepo.List: rows: %w", err)
	}

	return items, total, nil
}

func buildYouthEmailFilter(q domain.YouthEmailQuery) (string, []any) {
	var clauses []string
	var args []any

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		clauses = append(clauses, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if q.IsActive != nil {
		args = append(args, *q.IsActive)
		clauses = append(clauses, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if q.StartDate != nil {
		args = append(args, *q.StartDate)
		clauses = append(clauses, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if q.EndDate != nil {
		args = append(args, *q.EndDate)
		clauses = append(clauses, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *YouthEmailRepo) SetStatus(ctx context.Context, ids []uuid.UUID, active bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE youth_emails SET is_active = $1 WHERE id = ANY($2)`,
		active, ids,
	)
	if err != nil {
		return fmt.Errorf("youthEmailRepo.SetStatus: %w", err)
	}

	return nil
}

func (r *YouthEmailRepo) Delete(ctx context.Context, ids []uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM youth_emails WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("youthEmailRepo.Delete: %w", err)
	}

	return nil
}

func (r *YouthEmailRepo) GetActiveByEmail(ctx context.Context, email string) (*domain.YouthEmail, error) {
	var e domain.YouthEmail

	err := r.pool.QueryRow(ctx,
		`SELECT id, email, is_active, created_at
		 FROM youth_emails WHERE email = $1 AND is_active`,
		email,
	).Scan(&e.ID, &e.Email, &e.IsActive, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("youthEmailRepo.GetActiveByEmail: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("youthEmailRepo.GetActiveByEmail: %w", err)
	}

	return &e, nil
}

package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"eventshop/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) error {
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("marshal lines: %w", err)
	}
	const q = `
INSERT INTO orders (id, customer, lines, total_cents, currency, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	if _, err := r.pool.Exec(ctx, q, o.ID, customer, lines, o.TotalCents, o.Currency, string(o.Status), o.CreatedAt); err != nil {
		r.logger.Error("order repo: create", zap.String("id", o.ID), zap.Error(err))
		return err
	}
	r.logger.Info("order repo: created", zap.String("id", o.ID), zap.Int64("totalCents", o.TotalCents))
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, customer, lines, total_cents, currency, status, created_at
FROM orders
WHERE id = $1
`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("order repo: get", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id::text, customer, lines, total_cents, currency, status, created_at
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("order repo: list", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	const q = `UPDATE orders SET status = $1 WHERE id = $2`
	cmd, err := r.pool.Exec(ctx, q, string(status), id)
	if err != nil {
		r.logger.Error("order repo: update status", zap.String("id", id), zap.Error(err))
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o        domain.Order
		customer []byte
		lines    []byte
		status   string
	)
	if err := row.Scan(&o.ID, &customer, &lines, &o.TotalCents, &o.Currency, &status, &o.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(customer, &o.Customer); err != nil {
		return nil, fmt.Errorf("unmarshal customer: %w", err)
	}
	if err := json.Unmarshal(lines, &o.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal lines: %w", err)
	}
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

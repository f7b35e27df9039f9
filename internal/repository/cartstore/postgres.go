package cartstore

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

func (r *postgresRepo) Load(ctx context.Context, sessionKey string) (*domain.CartSnapshot, error) {
	const q = `SELECT snapshot FROM carts WHERE session_key = $1`
	var raw []byte
	if err := r.pool.QueryRow(ctx, q, sessionKey).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("cart store: load", zap.String("session", sessionKey), zap.Error(err))
		return nil, err
	}
	var snap domain.CartSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal cart snapshot: %w", err)
	}
	return &snap, nil
}

func (r *postgresRepo) Save(ctx context.Context, sessionKey string, snap domain.CartSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal cart snapshot: %w", err)
	}
	const q = `
INSERT INTO carts (session_key, snapshot, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (session_key) DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = now()
`
	if _, err := r.pool.Exec(ctx, q, sessionKey, raw); err != nil {
		r.logger.Error("cart store: save", zap.String("session", sessionKey), zap.Error(err))
		return err
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, sessionKey string) error {
	const q = `DELETE FROM carts WHERE session_key = $1`
	if _, err := r.pool.Exec(ctx, q, sessionKey); err != nil {
		r.logger.Error("cart store: delete", zap.String("session", sessionKey), zap.Error(err))
		return err
	}
	return nil
}

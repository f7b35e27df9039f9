package product

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

const productColumns = `id::text, key, sku, name, COALESCE(description, ''), COALESCE(category, ''),
price_cents, currency, images, colors, sizes, variants, pricing_tiers, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	q := fmt.Sprintf(`SELECT %s FROM products ORDER BY created_at DESC`, productColumns)
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("product repo: list", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("product repo: list rows", zap.Error(err))
		return nil, err
	}
	r.logger.Debug("product repo: list", zap.Int("count", len(result)))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("product repo: get", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	images, err := json.Marshal(orEmptySlice(product.Images))
	if err != nil {
		return nil, fmt.Errorf("marshal images: %w", err)
	}
	colors, err := json.Marshal(orEmptySlice(product.Colors))
	if err != nil {
		return nil, fmt.Errorf("marshal colors: %w", err)
	}
	sizes, err := json.Marshal(orEmptySlice(product.Sizes))
	if err != nil {
		return nil, fmt.Errorf("marshal sizes: %w", err)
	}
	variants, err := json.Marshal(orEmptySlice(product.Variants))
	if err != nil {
		return nil, fmt.Errorf("marshal variants: %w", err)
	}
	tiers, err := json.Marshal(orEmptySlice(product.Tiers))
	if err != nil {
		return nil, fmt.Errorf("marshal pricing tiers: %w", err)
	}

	const q = `
INSERT INTO products (id, key, sku, name, description, category, price_cents, currency, images, colors, sizes, variants, pricing_tiers)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (key) DO UPDATE SET
    sku = EXCLUDED.sku,
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    category = EXCLUDED.category,
    price_cents = EXCLUDED.price_cents,
    currency = EXCLUDED.currency,
    images = EXCLUDED.images,
    colors = EXCLUDED.colors,
    sizes = EXCLUDED.sizes,
    variants = EXCLUDED.variants,
    pricing_tiers = EXCLUDED.pricing_tiers
RETURNING id::text, created_at
`
	res := product
	err = r.pool.QueryRow(ctx, q,
		product.ID,
		product.Key,
		product.SKU,
		product.Name,
		product.Description,
		product.Category,
		product.PriceCents,
		product.Currency,
		images,
		colors,
		sizes,
		variants,
		tiers,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Error("product repo: upsert", zap.String("key", product.Key), zap.Error(err))
		return nil, err
	}
	r.logger.Info("product repo: upserted", zap.String("key", res.Key), zap.String("id", res.ID))
	return &res, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p        domain.Product
		images   []byte
		colors   []byte
		sizes    []byte
		variants []byte
		tiers    []byte
	)
	if err := row.Scan(
		&p.ID, &p.Key, &p.SKU, &p.Name, &p.Description, &p.Category,
		&p.PriceCents, &p.Currency, &images, &colors, &sizes, &variants, &tiers, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("unmarshal images: %w", err)
	}
	if err := json.Unmarshal(colors, &p.Colors); err != nil {
		return nil, fmt.Errorf("unmarshal colors: %w", err)
	}
	if err := json.Unmarshal(sizes, &p.Sizes); err != nil {
		return nil, fmt.Errorf("unmarshal sizes: %w", err)
	}
	if err := json.Unmarshal(variants, &p.Variants); err != nil {
		return nil, fmt.Errorf("unmarshal variants: %w", err)
	}
	if err := json.Unmarshal(tiers, &p.Tiers); err != nil {
		return nil, fmt.Errorf("unmarshal pricing tiers: %w", err)
	}
	return &p, nil
}

// orEmptySlice keeps jsonb columns as [] instead of null for nil slices.
func orEmptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

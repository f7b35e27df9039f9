package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eventshop/internal/domain"
	productrepo "eventshop/internal/repository/product"
)

// ErrInvalid marks catalog entries rejected by validation.
var ErrInvalid = errors.New("invalid product")

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Upsert validates and writes a catalog entry. Catalog edits come from the
// admin surface only; the cart engine treats products as read-only.
func (s *Service) Upsert(ctx context.Context, in domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(in.Key) == "" {
		return nil, fmt.Errorf("%w: key required", ErrInvalid)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalid)
	}
	if strings.TrimSpace(in.Currency) == "" {
		return nil, fmt.Errorf("%w: currency required", ErrInvalid)
	}
	if in.PriceCents <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalid)
	}
	if err := validateTiers(in.Tiers); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, in)
}

// validateTiers enforces the catalog invariant: ascending minQty order,
// no overlapping ranges.
func validateTiers(tiers []domain.PricingTier) error {
	prevMax := 0
	for _, t := range tiers {
		if t.MinQty < 1 {
			return fmt.Errorf("%w: tier minQty must be at least 1", ErrInvalid)
		}
		if t.PriceCents <= 0 {
			return fmt.Errorf("%w: tier price must be positive", ErrInvalid)
		}
		if t.MinQty <= prevMax {
			return fmt.Errorf("%w: tiers must be ascending and non-overlapping", ErrInvalid)
		}
		if t.MaxQty != nil {
			if *t.MaxQty < t.MinQty {
				return fmt.Errorf("%w: tier maxQty must not be below minQty", ErrInvalid)
			}
			prevMax = *t.MaxQty
		} else {
			// Unbounded tier closes the list.
			prevMax = int(^uint(0) >> 1)
		}
	}
	return nil
}

package seed

import (
	"context"
	"fmt"

	"eventshop/internal/domain"
)

// ProductWriter is satisfied by the product repository.
type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

func intPtr(v int) *int { return &v }

// Apply inserts demo catalog data for manual testing. Upserts keyed on
// product key keep it idempotent.
func Apply(ctx context.Context, repo ProductWriter) error {
	products := []domain.Product{
		{
			Key:         "event-tee",
			SKU:         "SKU-EVENT-TEE",
			Name:        "Event T-Shirt",
			Description: "Soft cotton tee with the event logo",
			Category:    "apparel",
			PriceCents:  1000,
			Currency:    "USD",
			Images:      []string{"https://cdn.example.com/event-tee.jpg"},
			Colors: []domain.ColorOption{
				{Name: "Red", DisplayColor: "#c0392b"},
				{Name: "Blue", DisplayColor: "#2980b9"},
			},
			Sizes: []string{"S", "M", "L"},
			Variants: []domain.Variant{
				{Color: "Red", Size: "S", SKU: "SKU-EVENT-TEE-R-S", Stock: 25},
				{Color: "Red", Size: "M", SKU: "SKU-EVENT-TEE-R-M", Stock: 40},
				{Color: "Red", Size: "L", SKU: "SKU-EVENT-TEE-R-L", Stock: 0},
				{Color: "Blue", Size: "S", SKU: "SKU-EVENT-TEE-B-S", Stock: 10},
				{Color: "Blue", Size: "M", SKU: "SKU-EVENT-TEE-B-M", Stock: 35},
				{Color: "Blue", Size: "L", SKU: "SKU-EVENT-TEE-B-L", Stock: 15},
			},
			Tiers: []domain.PricingTier{
				{MinQty: 10, MaxQty: intPtr(49), PriceCents: 900},
				{MinQty: 50, PriceCents: 800},
			},
		},
		{
			Key:         "event-mug",
			SKU:         "SKU-EVENT-MUG",
			Name:        "Event Mug",
			Description: "Ceramic mug, no size or color options",
			Category:    "merch",
			PriceCents:  1299,
			Currency:    "USD",
			Images:      []string{"https://cdn.example.com/event-mug.jpg"},
		},
	}

	for _, p := range products {
		if _, err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Key, err)
		}
	}

	return nil
}

// Package catalog holds the pure pricing and stock-resolution rules for
// products loaded from the catalog. Nothing here mutates or validates; the
// functions are total over their inputs.
package catalog

import "eventshop/internal/domain"

// EffectiveUnitPrice resolves the per-unit price for an aggregate quantity
// against a tier list. Tiers are scanned in ascending MinQty order; the first
// tier where qty >= MinQty and (MaxQty is nil or qty <= MaxQty) wins. With no
// matching tier (including an empty list) the base price applies.
func EffectiveUnitPrice(baseCents int64, tiers []domain.PricingTier, qty int) int64 {
	for _, tier := range tiers {
		if qty < tier.MinQty {
			continue
		}
		if tier.MaxQty != nil && qty > *tier.MaxQty {
			continue
		}
		return tier.PriceCents
	}
	return baseCents
}

// EffectivePrice is EffectiveUnitPrice applied to a product's own base price
// and tier list.
func EffectivePrice(p domain.Product, qty int) int64 {
	return EffectiveUnitPrice(p.PriceCents, p.Tiers, qty)
}

// Package order assembles immutable order records from cart snapshots at
// checkout time.
package order

import (
	"time"

	"github.com/google/uuid"

	"eventshop/internal/catalog"
	"eventshop/internal/domain"
)

// Assemble snapshots the given cart lines into a new Pending order. Unit
// prices are frozen at their effective (tiered) value for each line's own
// quantity. The input lines are read only; clearing the cart after a
// confirmed submission is the caller's responsibility.
func Assemble(lines []domain.CartLine, currency string, customer domain.CustomerIdentity) domain.Order {
	out := domain.Order{
		ID:        uuid.NewString(),
		Customer:  customer,
		Currency:  currency,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
		Lines:     make([]domain.OrderLine, 0, len(lines)),
	}
	for _, line := range lines {
		unit := catalog.EffectiveUnitPrice(line.Pricing.BasePriceCents, line.Pricing.Tiers, line.Quantity)
		lineTotal := unit * int64(line.Quantity)
		out.Lines = append(out.Lines, domain.OrderLine{
			ProductID:      line.Key.ProductID,
			Name:           line.Name,
			SKU:            line.SKU,
			Color:          line.Key.Color,
			Size:           line.Key.Size,
			Quantity:       line.Quantity,
			UnitPriceCents: unit,
			TotalCents:     lineTotal,
		})
		out.TotalCents += lineTotal
	}
	return out
}

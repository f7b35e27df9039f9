package cart

import (
	"eventshop/internal/catalog"
	"eventshop/internal/domain"
)

// Quote prices a bulk order request before it is merged into a cart. The
// quantities of all entries are summed first and one effective unit price is
// resolved for that sum, so mixed colors and sizes of one product earn the
// same tier as a single-variant bulk buy.
//
// The quote is a preview only: once the entries are merged, each resulting
// line is priced at its own post-merge quantity, which may diverge from this
// figure when the request spans multiple lines.
func Quote(p domain.Product, entries []domain.BulkEntry) domain.BulkQuote {
	totalQty := 0
	for _, e := range entries {
		if e.Quantity > 0 {
			totalQty += e.Quantity
		}
	}
	if totalQty == 0 {
		totalQty = 1
	}

	unit := catalog.EffectivePrice(p, totalQty)
	quote := domain.BulkQuote{
		UnitPriceCents: unit,
		TotalQuantity:  totalQty,
		TotalCents:     unit * int64(totalQty),
	}
	if p.PriceCents > 0 && unit < p.PriceCents {
		quote.DiscountPercent = float64(p.PriceCents-unit) / float64(p.PriceCents) * 100
	}
	return quote
}

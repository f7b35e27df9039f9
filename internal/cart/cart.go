// Package cart implements the in-memory cart aggregator: an insertion-ordered
// collection of lines keyed by (productID, color, size). The aggregator does
// arithmetic only; stock gating is the caller's job before items are added,
// and it will record whatever it is told.
package cart

import (
	"eventshop/internal/catalog"
	"eventshop/internal/domain"
)

// Cart owns the line collection for one session. It is not safe for
// concurrent use; each cart has exactly one logical owner.
type Cart struct {
	lines []*domain.CartLine
	index map[domain.LineKey]*domain.CartLine
}

func New() *Cart {
	return &Cart{index: make(map[domain.LineKey]*domain.CartLine)}
}

// AddItem merges qty into the line for (product, color, size), appending a
// new line on first sight. Quantities are always additive on repeated adds.
// A non-positive qty is normalized to 1 before merging.
func (c *Cart) AddItem(p domain.Product, color, size string, qty int) {
	if qty <= 0 {
		qty = 1
	}
	key := domain.LineKey{ProductID: p.ID, Color: color, Size: size}
	if line, ok := c.index[key]; ok {
		line.Quantity += qty
		return
	}
	line := &domain.CartLine{
		Key:      key,
		Name:     p.Name,
		SKU:      variantSKU(p, color, size),
		Quantity: qty,
		Pricing: domain.LinePricing{
			BasePriceCents: p.PriceCents,
			Currency:       p.Currency,
			Tiers:          p.Tiers,
		},
	}
	c.lines = append(c.lines, line)
	c.index[key] = line
}

// AddBulkItems applies the entries of a bulk order request in the order
// given, each against the current cart state. Entries sharing a key simply
// accumulate; addition is associative, so the result matches pre-merging.
func (c *Cart) AddBulkItems(p domain.Product, entries []domain.BulkEntry) {
	for _, e := range entries {
		c.AddItem(p, e.Color, e.Size, e.Quantity)
	}
}

// RemoveItem deletes the line with the given key. Absent keys are a no-op.
func (c *Cart) RemoveItem(key domain.LineKey) {
	if _, ok := c.index[key]; !ok {
		return
	}
	delete(c.index, key)
	for i, line := range c.lines {
		if line.Key == key {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
}

// UpdateQuantity sets a line's quantity to exactly qty, unlike AddItem's
// additive merge. qty <= 0 removes the line. Updating in place does not
// change line order.
func (c *Cart) UpdateQuantity(key domain.LineKey, qty int) {
	if qty <= 0 {
		c.RemoveItem(key)
		return
	}
	if line, ok := c.index[key]; ok {
		line.Quantity = qty
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[domain.LineKey]*domain.CartLine)
}

// Lines returns a copy of the lines in first-insertion order.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}

// Len reports the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// TotalCents sums effective-price x quantity over all lines. Each line is
// priced independently at its own quantity; tiering never aggregates across
// lines here, only in the bulk-quote path.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, line := range c.lines {
		unit := catalog.EffectiveUnitPrice(line.Pricing.BasePriceCents, line.Pricing.Tiers, line.Quantity)
		total += unit * int64(line.Quantity)
	}
	return total
}

// Currency returns the currency of the first line, or empty for a cart with
// no lines. Catalog data is single-currency per product set, so the first
// line is representative.
func (c *Cart) Currency() string {
	if len(c.lines) == 0 {
		return ""
	}
	return c.lines[0].Pricing.Currency
}

func variantSKU(p domain.Product, color, size string) string {
	for _, v := range p.Variants {
		if v.Color == color && v.Size == size && v.SKU != "" {
			return v.SKU
		}
	}
	return p.SKU
}

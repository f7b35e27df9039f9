package cart

import "eventshop/internal/domain"

// Snapshot serializes the cart for an external storage adapter. The engine
// stays storage-agnostic: adapters persist the snapshot wherever they like
// (postgres here, but nothing in this package cares).
func (c *Cart) Snapshot() domain.CartSnapshot {
	return domain.CartSnapshot{Lines: c.Lines()}
}

// Hydrate rebuilds a cart from a previously taken snapshot, preserving line
// order and identity keys. A nil snapshot yields an empty cart.
func Hydrate(snap *domain.CartSnapshot) *Cart {
	c := New()
	if snap == nil {
		return c
	}
	for i := range snap.Lines {
		line := snap.Lines[i]
		c.lines = append(c.lines, &line)
		c.index[line.Key] = &line
	}
	return c
}

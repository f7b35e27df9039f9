package domain

// LineKey is the composite identity of a cart line. Two lines with the same
// key are the same line and are merged, never duplicated. Using a struct
// (rather than a joined string) gives structural equality and avoids
// delimiter collisions when color or size names contain separators.
type LineKey struct {
	ProductID string `json:"productId"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

// LinePricing is the minimal product snapshot a cart line carries so totals
// can be computed without a catalog lookup and so persisted carts survive
// catalog edits within a session.
type LinePricing struct {
	BasePriceCents int64         `json:"basePriceCents"`
	Currency       string        `json:"currency"`
	Tiers          []PricingTier `json:"pricingTiers,omitempty"`
}

type CartLine struct {
	Key      LineKey     `json:"key"`
	Name     string      `json:"name"`
	SKU      string      `json:"sku,omitempty"`
	Quantity int         `json:"quantity"`
	Pricing  LinePricing `json:"pricing"`
}

// CartSnapshot is the serialized form of a cart, handed to a storage adapter
// by the persistence port. Line order is first-insertion order.
type CartSnapshot struct {
	Lines []CartLine `json:"lines"`
}

// BulkEntry is one row of a bulk order request: a variant selection and a
// quantity, submitted together with other rows for the same product.
type BulkEntry struct {
	Color    string `json:"color,omitempty"`
	Size     string `json:"size,omitempty"`
	Quantity int    `json:"quantity"`
}

// BulkQuote is the pre-merge preview of a bulk order request. The unit price
// is computed once for the summed quantity across all entries, so a buyer
// mixing colors and sizes gets the same tier as buying one variant in bulk.
type BulkQuote struct {
	UnitPriceCents  int64   `json:"unitPriceCents"`
	TotalQuantity   int     `json:"totalQuantity"`
	TotalCents      int64   `json:"totalCents"`
	DiscountPercent float64 `json:"discountPercent"`
}

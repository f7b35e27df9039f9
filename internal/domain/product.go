package domain

import "time"

// ColorOption is one entry on a product's color axis. DisplayColor carries
// the swatch value the storefront renders (hex or CSS color name).
type ColorOption struct {
	Name         string `json:"name"`
	DisplayColor string `json:"displayColor,omitempty"`
}

// Variant is a concrete (color, size) combination with its own stock count.
// A combination without a Variant entry does not exist; a Variant with
// Stock 0 is orderable-but-unavailable.
type Variant struct {
	Color string `json:"color"`
	Size  string `json:"size"`
	SKU   string `json:"sku,omitempty"`
	Stock int    `json:"stock"`
}

// PricingTier maps a quantity range to a per-unit price. MaxQty nil means
// the tier is unbounded above. Tiers are stored in ascending MinQty order
// and must not overlap.
type PricingTier struct {
	MinQty     int   `json:"minQty"`
	MaxQty     *int  `json:"maxQty,omitempty"`
	PriceCents int64 `json:"priceCents"`
}

type Product struct {
	ID          string        `json:"id"`
	Key         string        `json:"key"`
	SKU         string        `json:"sku"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	PriceCents  int64         `json:"priceCents"`
	Currency    string        `json:"currency"`
	Images      []string      `json:"images,omitempty"`
	Colors      []ColorOption `json:"colors,omitempty"`
	Sizes       []string      `json:"sizes,omitempty"`
	Variants    []Variant     `json:"variants,omitempty"`
	Tiers       []PricingTier `json:"pricingTiers,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// HasVariants reports whether the product is constrained by a color/size
// matrix. Unconstrained products skip variant resolution entirely.
func (p Product) HasVariants() bool {
	return len(p.Variants) > 0
}

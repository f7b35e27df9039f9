package catalog

import "eventshop/internal/domain"

// StockFor returns the stock count for a (color, size) combination. A
// combination without a variant entry reports 0, the same as a defined
// variant that is sold out.
func StockFor(p domain.Product, color, size string) int {
	for _, v := range p.Variants {
		if v.Color == color && v.Size == size {
			return v.Stock
		}
	}
	return 0
}

// IsSizeSelectable reports whether a size can currently be picked in the
// storefront. Products without a variant matrix are unconstrained. With
// a non-empty colorFilter only variants of that color count.
func IsSizeSelectable(p domain.Product, size, colorFilter string) bool {
	if !p.HasVariants() {
		return true
	}
	for _, v := range p.Variants {
		if v.Size != size {
			continue
		}
		if colorFilter != "" && v.Color != colorFilter {
			continue
		}
		if v.Stock > 0 {
			return true
		}
	}
	return false
}

// IsOrderable reports whether a concrete selection can be added to a cart.
// For variant products an unselected color or size means "not yet selected",
// never an error.
func IsOrderable(p domain.Product, color, size string) bool {
	if !p.HasVariants() {
		return true
	}
	if color == "" || size == "" {
		return false
	}
	return StockFor(p, color, size) > 0
}

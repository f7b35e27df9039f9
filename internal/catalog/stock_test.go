package catalog

import (
	"testing"

	"eventshop/internal/domain"
)

func variantProduct() domain.Product {
	return domain.Product{
		ID: "p1",
		Colors: []domain.ColorOption{
			{Name: "Red"}, {Name: "Blue"},
		},
		Sizes: []string{"M", "L"},
		Variants: []domain.Variant{
			{Color: "Red", Size: "M", Stock: 3},
			{Color: "Red", Size: "L", Stock: 0},
			{Color: "Blue", Size: "L", Stock: 7},
		},
	}
}

func TestStockFor(t *testing.T) {
	p := variantProduct()
	if got := StockFor(p, "Red", "M"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	// Sold-out entry and missing entry both report zero.
	if got := StockFor(p, "Red", "L"); got != 0 {
		t.Fatalf("expected 0 for sold-out variant, got %d", got)
	}
	if got := StockFor(p, "Blue", "M"); got != 0 {
		t.Fatalf("expected 0 for undefined variant, got %d", got)
	}
}

func TestIsOrderable(t *testing.T) {
	p := variantProduct()
	if !IsOrderable(p, "Red", "M") {
		t.Fatal("expected Red/M to be orderable")
	}
	if IsOrderable(p, "Red", "L") {
		t.Fatal("expected sold-out Red/L to not be orderable")
	}
	if IsOrderable(p, "Red", "") {
		t.Fatal("expected incomplete selection to not be orderable")
	}
	if IsOrderable(p, "Green", "M") {
		t.Fatal("expected unknown color to not be orderable")
	}

	plain := domain.Product{ID: "p2"}
	if !IsOrderable(plain, "", "") {
		t.Fatal("expected unconstrained product to be orderable")
	}
}

func TestIsSizeSelectable(t *testing.T) {
	p := variantProduct()
	if !IsSizeSelectable(p, "M", "") {
		t.Fatal("expected M selectable without color filter")
	}
	if !IsSizeSelectable(p, "L", "Blue") {
		t.Fatal("expected L selectable for Blue")
	}
	if IsSizeSelectable(p, "L", "Red") {
		t.Fatal("expected L not selectable for Red (sold out)")
	}
	if IsSizeSelectable(p, "XL", "") {
		t.Fatal("expected undefined size to not be selectable")
	}

	plain := domain.Product{ID: "p2"}
	if !IsSizeSelectable(plain, "anything", "") {
		t.Fatal("expected unconstrained product sizes to be selectable")
	}
}

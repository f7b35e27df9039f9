package cart

import (
	"context"
	"errors"
	"testing"

	"eventshop/internal/domain"
)

type stubCartRepo struct {
	snap      *domain.CartSnapshot
	loadErr   error
	saveErr   error
	lastSaved *domain.CartSnapshot
	deleted   string
}

func (s *stubCartRepo) Load(_ context.Context, _ string) (*domain.CartSnapshot, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.snap, nil
}

func (s *stubCartRepo) Save(_ context.Context, _ string, snap domain.CartSnapshot) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.lastSaved = &snap
	return nil
}

func (s *stubCartRepo) Delete(_ context.Context, sessionKey string) error {
	s.deleted = sessionKey
	return nil
}

type stubProductRepo struct {
	product *domain.Product
	err     error
}

func (s *stubProductRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

func intPtr(v int) *int { return &v }

func testProduct() *domain.Product {
	return &domain.Product{
		ID:         "tee",
		Key:        "event-tee",
		Name:       "Event Tee",
		PriceCents: 1000,
		Currency:   "USD",
		Colors:     []domain.ColorOption{{Name: "Red"}, {Name: "Blue"}},
		Sizes:      []string{"S", "M"},
		Variants: []domain.Variant{
			{Color: "Red", Size: "M", SKU: "TEE-RED-M", Stock: 5},
			{Color: "Blue", Size: "M", SKU: "TEE-BLUE-M", Stock: 0},
			{Color: "Red", Size: "S", SKU: "TEE-RED-S", Stock: 5},
			{Color: "Blue", Size: "S", SKU: "TEE-BLUE-S", Stock: 5},
		},
		Tiers: []domain.PricingTier{
			{MinQty: 10, MaxQty: intPtr(49), PriceCents: 900},
			{MinQty: 50, PriceCents: 800},
		},
	}
}

func TestAddItem_SavesMergedSnapshot(t *testing.T) {
	carts := &stubCartRepo{loadErr: domain.ErrNotFound}
	products := &stubProductRepo{product: testProduct()}
	svc := New(carts, products, nil)

	view, err := svc.AddItem(context.Background(), "sess-1", AddItemInput{
		ProductID: "tee", Color: "Red", Size: "M", Quantity: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected view lines: %+v", view.Lines)
	}
	if view.TotalCents != 2000 {
		t.Fatalf("expected total 2000, got %d", view.TotalCents)
	}
	if carts.lastSaved == nil || len(carts.lastSaved.Lines) != 1 {
		t.Fatalf("expected snapshot to be saved, got %+v", carts.lastSaved)
	}
}

func TestAddItem_MergesIntoExistingSnapshot(t *testing.T) {
	carts := &stubCartRepo{snap: &domain.CartSnapshot{Lines: []domain.CartLine{{
		Key:      domain.LineKey{ProductID: "tee", Color: "Red", Size: "M"},
		Name:     "Event Tee",
		SKU:      "TEE-RED-M",
		Quantity: 3,
		Pricing:  domain.LinePricing{BasePriceCents: 1000, Currency: "USD"},
	}}}}
	products := &stubProductRepo{product: testProduct()}
	svc := New(carts, products, nil)

	view, err := svc.AddItem(context.Background(), "sess-1", AddItemInput{
		ProductID: "tee", Color: "Red", Size: "M", Quantity: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %+v", view.Lines)
	}
}

func TestAddItem_RejectsOutOfStockSelection(t *testing.T) {
	carts := &stubCartRepo{loadErr: domain.ErrNotFound}
	products := &stubProductRepo{product: testProduct()}
	svc := New(carts, products, nil)

	_, err := svc.AddItem(context.Background(), "sess-1", AddItemInput{
		ProductID: "tee", Color: "Blue", Size: "M", Quantity: 1,
	})
	if !errors.Is(err, ErrNotOrderable) {
		t.Fatalf("expected ErrNotOrderable, got %v", err)
	}
	if carts.lastSaved != nil {
		t.Fatal("expected no save after rejected add")
	}
}

func TestAddItem_RejectsIncompleteSelection(t *testing.T) {
	svc := New(&stubCartRepo{loadErr: domain.ErrNotFound}, &stubProductRepo{product: testProduct()}, nil)

	_, err := svc.AddItem(context.Background(), "sess-1", AddItemInput{ProductID: "tee", Color: "Red", Quantity: 1})
	if !errors.Is(err, ErrNotOrderable) {
		t.Fatalf("expected ErrNotOrderable, got %v", err)
	}
}

func TestAddItem_UnknownProduct(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubProductRepo{err: domain.ErrNotFound}, nil)

	_, err := svc.AddItem(context.Background(), "sess-1", AddItemInput{ProductID: "ghost", Quantity: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddBulk_OneBadEntryRejectsAll(t *testing.T) {
	carts := &stubCartRepo{loadErr: domain.ErrNotFound}
	svc := New(carts, &stubProductRepo{product: testProduct()}, nil)

	_, err := svc.AddBulk(context.Background(), "sess-1", BulkInput{
		ProductID: "tee",
		Entries: []domain.BulkEntry{
			{Color: "Red", Size: "M", Quantity: 6},
			{Color: "Blue", Size: "M", Quantity: 6},
		},
	})
	if !errors.Is(err, ErrNotOrderable) {
		t.Fatalf("expected ErrNotOrderable, got %v", err)
	}
	if carts.lastSaved != nil {
		t.Fatal("expected no save after rejected bulk add")
	}
}

func TestAddBulk_MergesAllEntries(t *testing.T) {
	carts := &stubCartRepo{loadErr: domain.ErrNotFound}
	svc := New(carts, &stubProductRepo{product: testProduct()}, nil)

	view, err := svc.AddBulk(context.Background(), "sess-1", BulkInput{
		ProductID: "tee",
		Entries: []domain.BulkEntry{
			{Color: "Red", Size: "S", Quantity: 6},
			{Color: "Blue", Size: "S", Quantity: 6},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(view.Lines))
	}
	// Each post-merge line sits below the first tier, so both price at base.
	if view.TotalCents != 12000 {
		t.Fatalf("expected total 12000, got %d", view.TotalCents)
	}
}

func TestQuote_AggregatesEntriesForTier(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubProductRepo{product: testProduct()}, nil)

	q, err := svc.Quote(context.Background(), "tee", []domain.BulkEntry{
		{Color: "Red", Size: "S", Quantity: 6},
		{Color: "Blue", Size: "S", Quantity: 6},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.UnitPriceCents != 900 || q.TotalCents != 10800 {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestQuote_RequiresEntries(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubProductRepo{product: testProduct()}, nil)

	if _, err := svc.Quote(context.Background(), "tee", nil); err == nil {
		t.Fatal("expected error for empty entries")
	}
}

func TestUpdateQuantity_ReplacesAndPersists(t *testing.T) {
	carts := &stubCartRepo{snap: &domain.CartSnapshot{Lines: []domain.CartLine{{
		Key:      domain.LineKey{ProductID: "tee", Color: "Red", Size: "M"},
		Quantity: 5,
		Pricing:  domain.LinePricing{BasePriceCents: 1000, Currency: "USD"},
	}}}}
	svc := New(carts, &stubProductRepo{}, nil)

	view, err := svc.UpdateQuantity(context.Background(), "sess-1", UpdateInput{
		ProductID: "tee", Color: "Red", Size: "M", Quantity: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity replaced with 2, got %+v", view.Lines)
	}
	if carts.lastSaved == nil {
		t.Fatal("expected snapshot to be saved")
	}
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	carts := &stubCartRepo{snap: &domain.CartSnapshot{Lines: []domain.CartLine{{
		Key:      domain.LineKey{ProductID: "tee", Color: "Red", Size: "M"},
		Quantity: 5,
	}}}}
	svc := New(carts, &stubProductRepo{}, nil)

	view, err := svc.UpdateQuantity(context.Background(), "sess-1", UpdateInput{
		ProductID: "tee", Color: "Red", Size: "M", Quantity: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", view.Lines)
	}
}

func TestRemove_UnknownKeyStillSaves(t *testing.T) {
	carts := &stubCartRepo{loadErr: domain.ErrNotFound}
	svc := New(carts, &stubProductRepo{}, nil)

	view, err := svc.Remove(context.Background(), "sess-1", "tee", "Red", "M")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", view.Lines)
	}
}

func TestGet_UnknownSessionIsEmptyCart(t *testing.T) {
	svc := New(&stubCartRepo{loadErr: domain.ErrNotFound}, &stubProductRepo{}, nil)

	view, err := svc.Get(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Lines) != 0 || view.TotalCents != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
}

func TestClear_DeletesStoredCart(t *testing.T) {
	carts := &stubCartRepo{}
	svc := New(carts, &stubProductRepo{}, nil)

	if err := svc.Clear(context.Background(), "sess-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if carts.deleted != "sess-1" {
		t.Fatalf("expected delete for sess-1, got %q", carts.deleted)
	}
}

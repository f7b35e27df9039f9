package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventshop/internal/domain"
)

func intPtr(v int) *int { return &v }

func cartLines() []domain.CartLine {
	tiers := []domain.PricingTier{
		{MinQty: 10, MaxQty: intPtr(49), PriceCents: 900},
		{MinQty: 50, PriceCents: 800},
	}
	return []domain.CartLine{
		{
			Key:      domain.LineKey{ProductID: "tee", Color: "Red", Size: "M"},
			Name:     "Event Tee",
			SKU:      "TEE-RED-M",
			Quantity: 12,
			Pricing:  domain.LinePricing{BasePriceCents: 1000, Currency: "USD", Tiers: tiers},
		},
		{
			Key:      domain.LineKey{ProductID: "mug"},
			Name:     "Event Mug",
			SKU:      "MUG-1",
			Quantity: 2,
			Pricing:  domain.LinePricing{BasePriceCents: 750, Currency: "USD"},
		},
	}
}

func TestAssemble_FreezesTieredUnitPrices(t *testing.T) {
	customer := domain.CustomerIdentity{CustomerID: "cust-1"}
	ord := Assemble(cartLines(), "USD", customer)

	assert.NotEmpty(t, ord.ID)
	assert.Equal(t, domain.OrderStatusPending, ord.Status)
	assert.Equal(t, "USD", ord.Currency)
	assert.Equal(t, customer, ord.Customer)
	assert.False(t, ord.CreatedAt.IsZero())

	require.Len(t, ord.Lines, 2)
	assert.Equal(t, int64(900), ord.Lines[0].UnitPriceCents)
	assert.Equal(t, int64(10800), ord.Lines[0].TotalCents)
	assert.Equal(t, "Red", ord.Lines[0].Color)
	assert.Equal(t, "M", ord.Lines[0].Size)
	assert.Equal(t, int64(750), ord.Lines[1].UnitPriceCents)
	assert.Equal(t, int64(1500), ord.Lines[1].TotalCents)
	assert.Equal(t, int64(12300), ord.TotalCents)
}

func TestAssemble_DoesNotMutateInput(t *testing.T) {
	lines := cartLines()
	_ = Assemble(lines, "USD", domain.CustomerIdentity{CustomerID: "cust-1"})

	assert.Equal(t, cartLines(), lines)
}

func TestAssemble_EmptyCartYieldsZeroTotal(t *testing.T) {
	ord := Assemble(nil, "USD", domain.CustomerIdentity{Guest: &domain.GuestContact{Name: "Ada", Email: "ada@example.com"}})

	assert.Empty(t, ord.Lines)
	assert.Equal(t, int64(0), ord.TotalCents)
	assert.Equal(t, domain.OrderStatusPending, ord.Status)
}

func TestAssemble_EachCallGetsFreshID(t *testing.T) {
	a := Assemble(nil, "USD", domain.CustomerIdentity{CustomerID: "c"})
	b := Assemble(nil, "USD", domain.CustomerIdentity{CustomerID: "c"})
	assert.NotEqual(t, a.ID, b.ID)
}

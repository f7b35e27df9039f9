// Package cart is the session-facing cart service: it loads a persisted
// snapshot, hydrates the in-memory aggregator, applies one operation and
// saves the result. Stock gating happens here, before the aggregator is
// touched; the aggregator itself stays permissive arithmetic.
package cart

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	cartengine "eventshop/internal/cart"
	"eventshop/internal/catalog"
	"eventshop/internal/domain"
)

var (
	// ErrNotOrderable is returned when a selection is missing, unknown or
	// out of stock for a variant product.
	ErrNotOrderable = errors.New("selection not orderable")
)

type Service struct {
	carts    cartRepo
	products productRepo
	logger   *zap.Logger
}

type cartRepo interface {
	Load(ctx context.Context, sessionKey string) (*domain.CartSnapshot, error)
	Save(ctx context.Context, sessionKey string, snap domain.CartSnapshot) error
	Delete(ctx context.Context, sessionKey string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(carts cartRepo, products productRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{carts: carts, products: products, logger: logger}
}

// View is the read model handed to the HTTP layer and to checkout.
type View struct {
	SessionKey string            `json:"sessionKey"`
	Lines      []domain.CartLine `json:"lines"`
	TotalCents int64             `json:"totalCents"`
	Currency   string            `json:"currency,omitempty"`
}

type AddItemInput struct {
	ProductID string `json:"productId"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

type BulkInput struct {
	ProductID string             `json:"productId"`
	Entries   []domain.BulkEntry `json:"entries"`
}

type UpdateInput struct {
	ProductID string `json:"productId"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

func (s *Service) Get(ctx context.Context, sessionKey string) (*View, error) {
	eng, err := s.load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	return s.view(sessionKey, eng), nil
}

func (s *Service) AddItem(ctx context.Context, sessionKey string, in AddItemInput) (*View, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, errors.New("productId required")
	}
	p, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !catalog.IsOrderable(*p, in.Color, in.Size) {
		return nil, ErrNotOrderable
	}

	eng, err := s.load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	eng.AddItem(*p, in.Color, in.Size, in.Quantity)
	if err := s.carts.Save(ctx, sessionKey, eng.Snapshot()); err != nil {
		return nil, err
	}
	s.logger.Debug("cart: item added",
		zap.String("session", sessionKey),
		zap.String("product", in.ProductID),
		zap.Int("quantity", in.Quantity))
	return s.view(sessionKey, eng), nil
}

// AddBulk merges a bulk order request into the cart. Every entry is gated
// the same way a single add is; one bad entry rejects the whole request so
// the buyer sees the quote and the cart move together.
func (s *Service) AddBulk(ctx context.Context, sessionKey string, in BulkInput) (*View, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, errors.New("productId required")
	}
	if len(in.Entries) == 0 {
		return nil, errors.New("entries required")
	}
	p, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	for _, e := range in.Entries {
		if !catalog.IsOrderable(*p, e.Color, e.Size) {
			return nil, ErrNotOrderable
		}
	}

	eng, err := s.load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	eng.AddBulkItems(*p, in.Entries)
	if err := s.carts.Save(ctx, sessionKey, eng.Snapshot()); err != nil {
		return nil, err
	}
	return s.view(sessionKey, eng), nil
}

// Quote prices a bulk request without touching any cart.
func (s *Service) Quote(ctx context.Context, productID string, entries []domain.BulkEntry) (*domain.BulkQuote, error) {
	if len(entries) == 0 {
		return nil, errors.New("entries required")
	}
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	q := cartengine.Quote(*p, entries)
	return &q, nil
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionKey string, in UpdateInput) (*View, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, errors.New("productId required")
	}
	eng, err := s.load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	eng.UpdateQuantity(domain.LineKey{ProductID: in.ProductID, Color: in.Color, Size: in.Size}, in.Quantity)
	if err := s.carts.Save(ctx, sessionKey, eng.Snapshot()); err != nil {
		return nil, err
	}
	return s.view(sessionKey, eng), nil
}

func (s *Service) Remove(ctx context.Context, sessionKey, productID, color, size string) (*View, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, errors.New("productId required")
	}
	eng, err := s.load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	eng.RemoveItem(domain.LineKey{ProductID: productID, Color: color, Size: size})
	if err := s.carts.Save(ctx, sessionKey, eng.Snapshot()); err != nil {
		return nil, err
	}
	return s.view(sessionKey, eng), nil
}

func (s *Service) Clear(ctx context.Context, sessionKey string) error {
	return s.carts.Delete(ctx, sessionKey)
}

// load hydrates the aggregator from the stored snapshot. An unknown session
// key is an empty cart, not an error.
func (s *Service) load(ctx context.Context, sessionKey string) (*cartengine.Cart, error) {
	snap, err := s.carts.Load(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return cartengine.New(), nil
		}
		return nil, err
	}
	return cartengine.Hydrate(snap), nil
}

func (s *Service) view(sessionKey string, eng *cartengine.Cart) *View {
	return &View{
		SessionKey: sessionKey,
		Lines:      eng.Lines(),
		TotalCents: eng.TotalCents(),
		Currency:   eng.Currency(),
	}
}

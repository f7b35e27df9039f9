// Package checkout turns a cart snapshot into a persisted order and owns the
// order lifecycle operations used by the admin surface.
package checkout

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	cartengine "eventshop/internal/cart"
	"eventshop/internal/domain"
	"eventshop/internal/order"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Service struct {
	carts  cartRepo
	orders orderRepo
	logger *zap.Logger
}

type cartRepo interface {
	Load(ctx context.Context, sessionKey string) (*domain.CartSnapshot, error)
	Delete(ctx context.Context, sessionKey string) error
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

func New(carts cartRepo, orders orderRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{carts: carts, orders: orders, logger: logger}
}

// Submit assembles the session's cart into an immutable order, persists it
// and then clears the cart. The cart is cleared only after the order write
// is confirmed; a failed clear is logged but does not undo the order.
func (s *Service) Submit(ctx context.Context, sessionKey string, customer domain.CustomerIdentity) (*domain.Order, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	snap, err := s.carts.Load(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	eng := cartengine.Hydrate(snap)
	if eng.Len() == 0 {
		return nil, ErrEmptyCart
	}

	o := order.Assemble(eng.Lines(), eng.Currency(), customer)
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	if err := s.carts.Delete(ctx, sessionKey); err != nil {
		s.logger.Warn("checkout: cart clear failed after order creation",
			zap.String("session", sessionKey),
			zap.String("order", o.ID),
			zap.Error(err))
	}
	s.logger.Info("checkout: order submitted",
		zap.String("order", o.ID),
		zap.Int64("totalCents", o.TotalCents),
		zap.Int("lines", len(o.Lines)))
	return &o, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// UpdateStatus applies an admin-driven status transition after checking it
// is legal for the order's current state.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(o.Status, status) {
		return nil, ErrInvalidTransition
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}

func validateCustomer(c domain.CustomerIdentity) error {
	if strings.TrimSpace(c.CustomerID) != "" {
		return nil
	}
	if c.Guest == nil {
		return errors.New("customer identity required")
	}
	if strings.TrimSpace(c.Guest.Name) == "" || strings.TrimSpace(c.Guest.Email) == "" {
		return errors.New("guest name and email required")
	}
	return nil
}

package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPaid      OrderStatus = "Paid"
	OrderStatusCancelled OrderStatus = "Cancelled"
	OrderStatusFulfilled OrderStatus = "Fulfilled"
)

// CanTransition reports whether an order may move between two statuses.
// Transitions are driven by external payment/admin events; the order record
// itself is immutable apart from this field.
func CanTransition(from, to OrderStatus) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusPaid || to == OrderStatusCancelled
	case OrderStatusPaid:
		return to == OrderStatusFulfilled || to == OrderStatusCancelled
	default:
		return false
	}
}

// GuestContact identifies a buyer who checked out without an account.
type GuestContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// CustomerIdentity is either a registered customer id or a guest contact
// triple. Exactly one side is expected to be set.
type CustomerIdentity struct {
	CustomerID string        `json:"customerId,omitempty"`
	Guest      *GuestContact `json:"guest,omitempty"`
}

// OrderLine is an immutable snapshot of a cart line at checkout time.
// UnitPriceCents is the effective (tiered) price the line was charged.
type OrderLine struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	SKU            string `json:"sku,omitempty"`
	Color          string `json:"color,omitempty"`
	Size           string `json:"size,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	TotalCents     int64  `json:"totalCents"`
}

type Order struct {
	ID         string           `json:"id"`
	Customer   CustomerIdentity `json:"customer"`
	Lines      []OrderLine      `json:"lines"`
	TotalCents int64            `json:"totalCents"`
	Currency   string           `json:"currency"`
	Status     OrderStatus      `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses move forward only: pending -> shipped -> completed,
// or pending -> cancelled.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order matches the orders table. Items are loaded alongside the order
// by the repository; they are not lazily fetched.
type Order struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	PlacedBy   uuid.UUID       `json:"placed_by"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	PlacedAt   time.Time       `json:"placed_at"`
	Items      []OrderItem     `json:"items,omitempty"`
}

// OrderItem matches the order_items table. UnitPrice is the price at the
// time the order was placed, not the current product price.
type OrderItem struct {
	OrderID   uuid.UUID       `json:"order_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (o *Order) Prepare() {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if o.PlacedAt.IsZero() {
		o.PlacedAt = time.Now()
	}
}

// ValidStatusTransition reports whether an order may move from one
// status to another.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusShipped || to == OrderStatusCancelled
	case OrderStatusShipped:
		return to == OrderStatusCompleted
	default:
		return false
	}
}

// AngelaMos | 2026
// event.go

// Package events defines the domain events emitted after successful ledger
// mutations and the publishers that deliver them.
package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

const (
	RoutingOrderPlaced        = "order.placed"
	RoutingOrderStatusChanged = "order.status_changed"
	RoutingProductRestocked   = "product.restocked"
)

// Publisher delivers an event under a routing key. Implementations must be
// safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

type OrderPlaced struct {
	OrderID        int64           `json:"order_id"`
	UserID         int64           `json:"user_id"`
	ProductID      int64           `json:"product_id"`
	Quantity       int             `json:"quantity"`
	Total          decimal.Decimal `json:"total"`
	RemainingStock int             `json:"remaining_stock"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

type OrderStatusChanged struct {
	OrderID    int64     `json:"order_id"`
	UserID     int64     `json:"user_id"`
	ProductID  int64     `json:"product_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Restocked  int       `json:"restocked"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ProductRestocked struct {
	ProductID  int64     `json:"product_id"`
	Added      int       `json:"added"`
	Stock      int       `json:"stock"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewOrderPlaced(p ledger.PlacedOrder) OrderPlaced {
	return OrderPlaced{
		OrderID:        int64(p.Order.ID),
		UserID:         int64(p.Order.UserID),
		ProductID:      int64(p.Order.ProductID),
		Quantity:       p.Order.Quantity,
		Total:          p.Order.Total,
		RemainingStock: p.RemainingStock,
		OccurredAt:     time.Now().UTC(),
	}
}

func NewOrderStatusChanged(c ledger.StatusChange) OrderStatusChanged {
	return OrderStatusChanged{
		OrderID:    int64(c.Order.ID),
		UserID:     int64(c.Order.UserID),
		ProductID:  int64(c.Order.ProductID),
		From:       string(c.Previous),
		To:         string(c.Order.Status),
		Restocked:  c.Restocked,
		OccurredAt: time.Now().UTC(),
	}
}

// NewCascadeCancellations builds one status change per order cancelled by a user deletion.
func NewCascadeCancellations(d ledger.DeletedUser) []OrderStatusChanged {
	out := make([]OrderStatusChanged, 0, len(d.Cancelled))
	for _, c := range d.Cancelled {
		ev := NewOrderStatusChanged(c)
		ev.Reason = "user_deleted"
		out = append(out, ev)
	}
	return out
}

func NewProductRestocked(p ledger.Product, added int) ProductRestocked {
	return ProductRestocked{
		ProductID:  int64(p.ID),
		Added:      added,
		Stock:      p.Stock,
		OccurredAt: time.Now().UTC(),
	}
}

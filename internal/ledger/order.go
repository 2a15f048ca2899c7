// AngelaMos | 2026
// order.go

package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type OrderID int64

type Order struct {
	ID        OrderID
	UserID    UserID
	ProductID ProductID
	Quantity  int
	Total     decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
}

type OrderFilter struct {
	Status OrderStatus
	UserID UserID
}

// OrderDetail is an order with its user and product when they still exist.
type OrderDetail struct {
	Order
	User    *User
	Product *Product
}

type PlacedOrder struct {
	Order          Order
	RemainingStock int
}

// StatusChange is the outcome of a successful transition. Restocked is the
// quantity put back on the product, zero when nothing moved.
type StatusChange struct {
	Order     Order
	Previous  OrderStatus
	Restocked int
}

// PlaceOrder checks user, product and stock in that order and only then
// takes the stock and records the order; any failure leaves state unchanged.
func (l *Ledger) PlaceOrder(
	userID UserID,
	productID ProductID,
	quantity int,
) (PlacedOrder, error) {
	if quantity < 1 {
		return PlacedOrder{}, &ValidationError{
			Field:   "quantity",
			Message: "quantity must be at least 1",
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.users[userID]; !ok {
		return PlacedOrder{}, userNotFound(userID)
	}

	p, ok := l.products[productID]
	if !ok {
		return PlacedOrder{}, productNotFound(productID)
	}

	if p.Stock < quantity {
		return PlacedOrder{}, &InsufficientStockError{
			ProductID: productID,
			Available: p.Stock,
			Requested: quantity,
		}
	}

	p.Stock -= quantity

	o := &Order{
		ID:        l.nextOrderID(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Total:     p.Price.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
		Status:    StatusPending,
		CreatedAt: l.now(),
	}
	l.orders[o.ID] = o

	return PlacedOrder{Order: *o, RemainingStock: p.Stock}, nil
}

func (l *Ledger) GetOrder(id OrderID) (Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	o, ok := l.orders[id]
	if !ok {
		return Order{}, orderNotFound(id)
	}
	return *o, nil
}

func (l *Ledger) GetOrderDetail(id OrderID) (OrderDetail, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	o, ok := l.orders[id]
	if !ok {
		return OrderDetail{}, orderNotFound(id)
	}

	detail := OrderDetail{Order: *o}
	if u, ok := l.users[o.UserID]; ok {
		uc := *u
		detail.User = &uc
	}
	if p, ok := l.products[o.ProductID]; ok {
		pc := *p
		detail.Product = &pc
	}

	return detail, nil
}

func (l *Ledger) ListOrders(f OrderFilter) []Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	matches := inIDOrder(l.orders, func(o *Order) bool {
		if f.Status != "" && o.Status != f.Status {
			return false
		}
		if f.UserID != 0 && o.UserID != f.UserID {
			return false
		}
		return true
	})
	return copyOrders(matches)
}

// SetOrderStatus moves an order along the status state machine.
func (l *Ledger) SetOrderStatus(id OrderID, next OrderStatus) (StatusChange, error) {
	if !next.Valid() {
		return StatusChange{}, &ValidationError{
			Field:   "status",
			Message: "status must be one of pending, paid, shipped, cancelled",
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	o, ok := l.orders[id]
	if !ok {
		return StatusChange{}, orderNotFound(id)
	}

	current := o.Status
	if !current.CanTransitionTo(next) {
		return StatusChange{}, &TransitionError{
			OrderID:   id,
			Current:   current,
			Requested: next,
			Allowed:   current.Allowed(),
		}
	}

	if next == StatusCancelled {
		if err := l.checkRestore(o); err != nil {
			return StatusChange{}, err
		}
	}

	restocked := l.applyTransition(o, next)

	return StatusChange{Order: *o, Previous: current, Restocked: restocked}, nil
}

// checkRestore fails when cancelling the given orders would push a
// product's stock past math.MaxInt. Orders on the same product add up.
func (l *Ledger) checkRestore(orders ...*Order) error {
	adding := make(map[ProductID]int)

	for _, o := range orders {
		if !o.Status.HoldsStock() {
			continue
		}
		p, ok := l.products[o.ProductID]
		if !ok {
			continue
		}
		if o.Quantity > math.MaxInt-p.Stock-adding[p.ID] {
			return &ValidationError{
				Field: "quantity",
				Message: fmt.Sprintf(
					"cancelling order %d would overflow the stock of product %d",
					o.ID,
					p.ID,
				),
			}
		}
		adding[p.ID] += o.Quantity
	}

	return nil
}

// applyTransition assumes the transition was already checked and the write
// lock is held. Entering cancelled from a stock-holding status returns the
// quantity to the product, unless the product has since been deleted.
func (l *Ledger) applyTransition(o *Order, next OrderStatus) int {
	restocked := 0

	if next == StatusCancelled && o.Status.HoldsStock() {
		if p, ok := l.products[o.ProductID]; ok {
			p.Stock += o.Quantity
			restocked = o.Quantity
		}
	}

	o.Status = next
	return restocked
}

func copyOrders(in []*Order) []Order {
	out := make([]Order, 0, len(in))
	for _, o := range in {
		out = append(out, *o)
	}
	return out
}

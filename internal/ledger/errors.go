// AngelaMos | 2026
// errors.go

package ledger

import (
	"fmt"
	"strings"

	"github.com/carterperez-dev/templates/inventory-api/internal/core"
)

// NotFoundError reports a referenced id that is absent from its collection.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return core.ErrNotFound }

func (e *NotFoundError) ErrorDetails() map[string]any {
	return map[string]any{"entity": e.Entity, "id": e.ID}
}

type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email '%s' already exists", e.Email)
}

func (e *DuplicateEmailError) Unwrap() error { return core.ErrConflict }

func (e *DuplicateEmailError) ErrorDetails() map[string]any {
	return map[string]any{"email": e.Email}
}

// DeletionBlockedError is returned when a product still has pending orders.
type DeletionBlockedError struct {
	ProductID     ProductID
	PendingOrders int
}

func (e *DeletionBlockedError) Error() string {
	return fmt.Sprintf(
		"cannot delete product %d: %d pending order(s) exist for this product",
		e.ProductID,
		e.PendingOrders,
	)
}

func (e *DeletionBlockedError) Unwrap() error { return core.ErrConflict }

func (e *DeletionBlockedError) ErrorDetails() map[string]any {
	return map[string]any{
		"product_id":     e.ProductID,
		"pending_orders": e.PendingOrders,
	}
}

// ValidationError is a rejected input value: a non-positive price or
// quantity, a negative stock or an unknown enum value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return core.ErrInvalidInput }

func (e *ValidationError) ErrorDetails() map[string]any {
	return map[string]any{"field": e.Field}
}

type InsufficientStockError struct {
	ProductID ProductID
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf(
		"insufficient stock for product %d: available %d, requested %d",
		e.ProductID,
		e.Available,
		e.Requested,
	)
}

func (e *InsufficientStockError) Unwrap() error { return core.ErrInvalidInput }

func (e *InsufficientStockError) ErrorDetails() map[string]any {
	return map[string]any{
		"product_id": e.ProductID,
		"available":  e.Available,
		"requested":  e.Requested,
	}
}

// TransitionError is an order status change outside the allowed set.
type TransitionError struct {
	OrderID   OrderID
	Current   OrderStatus
	Requested OrderStatus
	Allowed   []OrderStatus
}

func (e *TransitionError) Error() string {
	allowed := make([]string, 0, len(e.Allowed))
	for _, s := range e.Allowed {
		allowed = append(allowed, string(s))
	}

	return fmt.Sprintf(
		"cannot move order %d from '%s' to '%s', allowed: [%s]",
		e.OrderID,
		e.Current,
		e.Requested,
		strings.Join(allowed, ", "),
	)
}

func (e *TransitionError) Unwrap() error { return core.ErrInvalidInput }

func (e *TransitionError) ErrorDetails() map[string]any {
	return map[string]any{
		"order_id":  e.OrderID,
		"current":   e.Current,
		"requested": e.Requested,
		"allowed":   e.Allowed,
	}
}

func userNotFound(id UserID) error {
	return &NotFoundError{Entity: "user", ID: int64(id)}
}

func productNotFound(id ProductID) error {
	return &NotFoundError{Entity: "product", ID: int64(id)}
}

func orderNotFound(id OrderID) error {
	return &NotFoundError{Entity: "order", ID: int64(id)}
}

func noteNotFound(id NoteID) error {
	return &NotFoundError{Entity: "note", ID: int64(id)}
}

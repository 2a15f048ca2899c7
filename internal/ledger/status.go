// AngelaMos | 2026
// status.go

package ledger

import (
	"fmt"
	"slices"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusCancelled OrderStatus = "cancelled"
)

// AllStatuses lists every order status in lifecycle order.
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusPaid,
	StatusShipped,
	StatusCancelled,
}

var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusShipped, StatusCancelled},
	StatusShipped:   {},
	StatusCancelled: {},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("unknown order status %q", s),
		}
	}
	return status, nil
}

func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Allowed returns the statuses reachable from s in one step.
func (s OrderStatus) Allowed() []OrderStatus {
	return slices.Clone(transitions[s])
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(transitions[s], next)
}

func (s OrderStatus) IsTerminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// HoldsStock reports whether an order in this status still has its
// quantity taken out of the product's stock and owes it back on cancel.
func (s OrderStatus) HoldsStock() bool {
	return s == StatusPending || s == StatusPaid
}

// Billable reports whether the order total counts toward revenue.
func (s OrderStatus) Billable() bool {
	return s == StatusPaid || s == StatusShipped
}

// AngelaMos | 2026
// status_test.go

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/inventory-api/internal/core"
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from ledger.OrderStatus
		to   ledger.OrderStatus
		ok   bool
	}{
		{ledger.StatusPending, ledger.StatusPaid, true},
		{ledger.StatusPending, ledger.StatusCancelled, true},
		{ledger.StatusPending, ledger.StatusShipped, false},
		{ledger.StatusPending, ledger.StatusPending, false},
		{ledger.StatusPaid, ledger.StatusShipped, true},
		{ledger.StatusPaid, ledger.StatusCancelled, true},
		{ledger.StatusPaid, ledger.StatusPending, false},
		{ledger.StatusShipped, ledger.StatusCancelled, false},
		{ledger.StatusShipped, ledger.StatusPaid, false},
		{ledger.StatusCancelled, ledger.StatusPending, false},
		{ledger.StatusCancelled, ledger.StatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.True(t, ledger.StatusShipped.IsTerminal())
	assert.True(t, ledger.StatusCancelled.IsTerminal())
	assert.False(t, ledger.StatusPaid.IsTerminal())
	assert.False(t, ledger.OrderStatus("refunded").IsTerminal())
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ledger.ParseOrderStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusPaid, s)

	_, err = ledger.ParseOrderStatus("refunded")
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestAllowedReturnsCopy(t *testing.T) {
	allowed := ledger.StatusPending.Allowed()
	allowed[0] = ledger.StatusShipped

	assert.Equal(
		t,
		[]ledger.OrderStatus{ledger.StatusPaid, ledger.StatusCancelled},
		ledger.StatusPending.Allowed(),
	)
}

func TestSetOrderStatusPendingToShippedRejected(t *testing.T) {
	l := newLedger(t)

	placed, err := l.PlaceOrder(1, 2, 2)
	require.NoError(t, err)

	_, err = l.SetOrderStatus(placed.Order.ID, ledger.StatusShipped)
	require.ErrorIs(t, err, core.ErrInvalidInput)

	var te *ledger.TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, ledger.StatusPending, te.Current)
	assert.Equal(t, ledger.StatusShipped, te.Requested)
	assert.Equal(t, []ledger.OrderStatus{ledger.StatusPaid, ledger.StatusCancelled}, te.Allowed)
	assert.Contains(t, te.Error(), "allowed: [paid, cancelled]")

	order, err := l.GetOrder(placed.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusPending, order.Status)
	assert.Equal(t, 40, stockOf(t, l, 2))
}

func TestCancelPendingRestoresStockThenTerminal(t *testing.T) {
	l := newLedger(t)

	placed, err := l.PlaceOrder(1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 40, stockOf(t, l, 2))

	change, err := l.SetOrderStatus(placed.Order.ID, ledger.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusPending, change.Previous)
	assert.Equal(t, ledger.StatusCancelled, change.Order.Status)
	assert.Equal(t, 2, change.Restocked)
	assert.Equal(t, 42, stockOf(t, l, 2))

	for _, next := range ledger.AllStatuses {
		_, err := l.SetOrderStatus(placed.Order.ID, next)
		require.ErrorIs(t, err, core.ErrInvalidInput, "cancelled -> %s", next)
	}
	assert.Equal(t, 42, stockOf(t, l, 2))
}

func TestCancelPaidRestoresStock(t *testing.T) {
	l := newLedger(t)

	_, err := l.SetOrderStatus(3, ledger.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, 9, stockOf(t, l, 3))
}

func TestCancelShippedRejected(t *testing.T) {
	l := newLedger(t)

	_, err := l.SetOrderStatus(1, ledger.StatusCancelled)
	require.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Equal(t, 15, stockOf(t, l, 1))
}

func TestFullLifecycleHasNoStockSideEffects(t *testing.T) {
	l := newLedger(t)

	placed, err := l.PlaceOrder(3, 4, 10)
	require.NoError(t, err)

	for _, next := range []ledger.OrderStatus{ledger.StatusPaid, ledger.StatusShipped} {
		change, err := l.SetOrderStatus(placed.Order.ID, next)
		require.NoError(t, err)
		assert.Zero(t, change.Restocked)
	}

	assert.Equal(t, 190, stockOf(t, l, 4))
}

func TestCancelAfterProductDeletedIsNoopOnStock(t *testing.T) {
	l := newLedger(t)

	_, err := l.SetOrderStatus(2, ledger.StatusPaid)
	require.NoError(t, err)
	require.NoError(t, l.DeleteProduct(2))

	change, err := l.SetOrderStatus(2, ledger.StatusCancelled)
	require.NoError(t, err)
	assert.Zero(t, change.Restocked)

	_, err = l.GetProduct(2)
	require.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, 3, l.Counts().Products)
}

func TestSetOrderStatusErrors(t *testing.T) {
	l := newLedger(t)

	_, err := l.SetOrderStatus(99, ledger.StatusPaid)
	require.ErrorIs(t, err, core.ErrNotFound)

	_, err = l.SetOrderStatus(2, ledger.OrderStatus("refunded"))
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

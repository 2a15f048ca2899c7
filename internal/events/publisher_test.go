// AngelaMos | 2026
// publisher_test.go

package events_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/inventory-api/internal/events"
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

type failingPublisher struct {
	calls int
}

func (f *failingPublisher) Publish(context.Context, string, any) error {
	f.calls++
	return errors.New("broker down")
}

func (f *failingPublisher) Close() error { return nil }

func TestLogPublisherWritesRoutingKey(t *testing.T) {
	var buf bytes.Buffer
	pub := events.NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := pub.Publish(context.Background(), events.RoutingProductRestocked, events.ProductRestocked{
		ProductID: 3,
		Added:     5,
		Stock:     13,
	})
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "domain event", line["msg"])
	assert.Equal(t, events.RoutingProductRestocked, line["routing_key"])
}

func TestEmitSwallowsErrors(t *testing.T) {
	pub := &failingPublisher{}

	assert.NotPanics(t, func() {
		events.Emit(context.Background(), pub, events.RoutingOrderPlaced, events.OrderPlaced{})
		events.Emit(context.Background(), nil, events.RoutingOrderPlaced, events.OrderPlaced{})
	})
	assert.Equal(t, 1, pub.calls)
}

func TestCascadeCancellations(t *testing.T) {
	l := ledger.New()

	placed, err := l.PlaceOrder(1, 4, 2)
	require.NoError(t, err)

	deleted, err := l.DeleteUser(1)
	require.NoError(t, err)

	evs := events.NewCascadeCancellations(deleted)
	require.Len(t, evs, 1)
	assert.Equal(t, int64(placed.Order.ID), evs[0].OrderID)
	assert.Equal(t, "pending", evs[0].From)
	assert.Equal(t, "cancelled", evs[0].To)
	assert.Equal(t, 2, evs[0].Restocked)
	assert.Equal(t, "user_deleted", evs[0].Reason)
}

func TestOrderPlacedCarriesTotal(t *testing.T) {
	l := ledger.New()

	placed, err := l.PlaceOrder(1, 2, 2)
	require.NoError(t, err)

	ev := events.NewOrderPlaced(placed)
	assert.True(t, ev.Total.Equal(decimal.RequireFromString("159.98")))
	assert.Equal(t, 40, ev.RemainingStock)
}

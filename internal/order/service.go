// AngelaMos | 2026
// service.go

package order

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/inventory-api/internal/core"
	"github.com/carterperez-dev/templates/inventory-api/internal/events"
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

type Store interface {
	PlaceOrder(userID ledger.UserID, productID ledger.ProductID, quantity int) (ledger.PlacedOrder, error)
	GetOrderDetail(id ledger.OrderID) (ledger.OrderDetail, error)
	ListOrders(f ledger.OrderFilter) []ledger.Order
	SetOrderStatus(id ledger.OrderID, next ledger.OrderStatus) (ledger.StatusChange, error)
}

type Service struct {
	store     Store
	publisher events.Publisher
}

func NewService(store Store, publisher events.Publisher) *Service {
	return &Service{store: store, publisher: publisher}
}

func (s *Service) Place(
	ctx context.Context,
	req PlaceOrderRequest,
) (ledger.PlacedOrder, error) {
	ctx, span := core.StartSpan(ctx, "order.place",
		attribute.Int64("user.id", req.UserID),
		attribute.Int64("product.id", req.ProductID),
		attribute.Int("quantity", req.Quantity),
	)
	defer span.End()

	placed, err := s.store.PlaceOrder(
		ledger.UserID(req.UserID),
		ledger.ProductID(req.ProductID),
		req.Quantity,
	)
	if err != nil {
		core.SetSpanError(ctx, err)
		return ledger.PlacedOrder{}, err
	}

	core.AddSpanEvent(ctx, "order.placed",
		attribute.Int64("order.id", int64(placed.Order.ID)),
		attribute.Int("remaining_stock", placed.RemainingStock),
	)

	events.Emit(
		ctx,
		s.publisher,
		events.RoutingOrderPlaced,
		events.NewOrderPlaced(placed),
	)

	return placed, nil
}

func (s *Service) Get(
	_ context.Context,
	id ledger.OrderID,
) (ledger.OrderDetail, error) {
	return s.store.GetOrderDetail(id)
}

func (s *Service) List(_ context.Context, f ledger.OrderFilter) []ledger.Order {
	return s.store.ListOrders(f)
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	id ledger.OrderID,
	status string,
) (ledger.StatusChange, error) {
	ctx, span := core.StartSpan(ctx, "order.update_status",
		attribute.Int64("order.id", int64(id)),
		attribute.String("status", status),
	)
	defer span.End()

	change, err := s.store.SetOrderStatus(id, ledger.OrderStatus(status))
	if err != nil {
		core.SetSpanError(ctx, err)
		return ledger.StatusChange{}, err
	}

	if change.Restocked > 0 {
		slog.InfoContext(ctx, "cancelled order returned stock",
			"order_id", id,
			"product_id", change.Order.ProductID,
			"quantity", change.Restocked,
		)
	}

	events.Emit(
		ctx,
		s.publisher,
		events.RoutingOrderStatusChanged,
		events.NewOrderStatusChanged(change),
	)

	return change, nil
}

// AngelaMos | 2026
// service.go

package product

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/inventory-api/internal/core"
	"github.com/carterperez-dev/templates/inventory-api/internal/events"
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

type Store interface {
	CreateProduct(in ledger.NewProduct) (ledger.Product, error)
	GetProduct(id ledger.ProductID) (ledger.Product, error)
	ListProducts(f ledger.ProductFilter) []ledger.Product
	UpdateProduct(id ledger.ProductID, upd ledger.ProductUpdate) (ledger.Product, error)
	DeleteProduct(id ledger.ProductID) error
	Restock(id ledger.ProductID, quantity int) (ledger.Product, error)
	LowStockThreshold() int
}

type Service struct {
	store     Store
	publisher events.Publisher
}

func NewService(store Store, publisher events.Publisher) *Service {
	return &Service{store: store, publisher: publisher}
}

func (s *Service) Create(
	_ context.Context,
	req CreateProductRequest,
) (ledger.Product, error) {
	return s.store.CreateProduct(req.toNew())
}

func (s *Service) Get(_ context.Context, id ledger.ProductID) (ledger.Product, error) {
	return s.store.GetProduct(id)
}

// List filters by category and stock. lowStock applies the configured
// threshold and wins over an explicit stockBelow.
func (s *Service) List(
	_ context.Context,
	category string,
	stockBelow int,
	lowStock bool,
) []ledger.Product {
	if lowStock {
		stockBelow = s.store.LowStockThreshold()
	}
	return s.store.ListProducts(ledger.ProductFilter{
		Category:   category,
		StockBelow: stockBelow,
	})
}

func (s *Service) Update(
	_ context.Context,
	id ledger.ProductID,
	req UpdateProductRequest,
) (ledger.Product, error) {
	return s.store.UpdateProduct(id, req.toUpdate())
}

func (s *Service) Delete(_ context.Context, id ledger.ProductID) error {
	return s.store.DeleteProduct(id)
}

func (s *Service) Restock(
	ctx context.Context,
	id ledger.ProductID,
	quantity int,
) (ledger.Product, error) {
	ctx, span := core.StartSpan(ctx, "product.restock",
		attribute.Int64("product.id", int64(id)),
		attribute.Int("quantity", quantity),
	)
	defer span.End()

	p, err := s.store.Restock(id, quantity)
	if err != nil {
		core.SetSpanError(ctx, err)
		return ledger.Product{}, err
	}

	events.Emit(
		ctx,
		s.publisher,
		events.RoutingProductRestocked,
		events.NewProductRestocked(p, quantity),
	)

	return p, nil
}

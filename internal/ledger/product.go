// AngelaMos | 2026
// product.go

package ledger

import (
	"math"

	"github.com/shopspring/decimal"
)

type ProductID int64

type Product struct {
	ID       ProductID
	Name     string
	Price    decimal.Decimal
	Stock    int
	Category string
}

type NewProduct struct {
	Name     string
	Price    decimal.Decimal
	Stock    int
	Category string
}

type ProductUpdate struct {
	Name     *string
	Price    *decimal.Decimal
	Stock    *int
	Category *string
}

// ProductFilter narrows a product listing. StockBelow of zero disables the stock filter.
type ProductFilter struct {
	Category   string
	StockBelow int
}

func (l *Ledger) CreateProduct(in NewProduct) (Product, error) {
	if err := validatePrice(in.Price); err != nil {
		return Product{}, err
	}
	if err := validateStock(in.Stock); err != nil {
		return Product{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	p := &Product{
		ID:       l.nextProductID(),
		Name:     in.Name,
		Price:    in.Price,
		Stock:    in.Stock,
		Category: in.Category,
	}
	l.products[p.ID] = p

	return *p, nil
}

func (l *Ledger) GetProduct(id ProductID) (Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, ok := l.products[id]
	if !ok {
		return Product{}, productNotFound(id)
	}
	return *p, nil
}

func (l *Ledger) ListProducts(f ProductFilter) []Product {
	l.mu.RLock()
	defer l.mu.RUnlock()

	matches := inIDOrder(l.products, func(p *Product) bool {
		if f.Category != "" && p.Category != f.Category {
			return false
		}
		if f.StockBelow > 0 && p.Stock >= f.StockBelow {
			return false
		}
		return true
	})
	return copyProducts(matches)
}

// UpdateProduct never touches existing orders: their totals were fixed at placement.
func (l *Ledger) UpdateProduct(id ProductID, upd ProductUpdate) (Product, error) {
	if upd.Price != nil {
		if err := validatePrice(*upd.Price); err != nil {
			return Product{}, err
		}
	}
	if upd.Stock != nil {
		if err := validateStock(*upd.Stock); err != nil {
			return Product{}, err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.products[id]
	if !ok {
		return Product{}, productNotFound(id)
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}

	return *p, nil
}

// DeleteProduct refuses while any pending order references the product.
// Orders in other statuses are left referencing the removed id.
func (l *Ledger) DeleteProduct(id ProductID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.products[id]; !ok {
		return productNotFound(id)
	}

	pending := 0
	for _, o := range l.orders {
		if o.ProductID == id && o.Status == StatusPending {
			pending++
		}
	}
	if pending > 0 {
		return &DeletionBlockedError{ProductID: id, PendingOrders: pending}
	}

	delete(l.products, id)
	return nil
}

func (l *Ledger) Restock(id ProductID, quantity int) (Product, error) {
	if quantity <= 0 {
		return Product{}, &ValidationError{
			Field:   "quantity",
			Message: "quantity must be positive",
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.products[id]
	if !ok {
		return Product{}, productNotFound(id)
	}
	if quantity > math.MaxInt-p.Stock {
		return Product{}, &ValidationError{
			Field:   "quantity",
			Message: "quantity would overflow the product stock",
		}
	}
	p.Stock += quantity

	return *p, nil
}

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return &ValidationError{Field: "price", Message: "price must be positive"}
	}
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return &ValidationError{Field: "stock", Message: "stock must not be negative"}
	}
	return nil
}

func copyProducts(in []*Product) []Product {
	out := make([]Product, 0, len(in))
	for _, p := range in {
		out = append(out, *p)
	}
	return out
}

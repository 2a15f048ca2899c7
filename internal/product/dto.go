// AngelaMos | 2026
// dto.go

package product

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

type CreateProductRequest struct {
	Name     string          `json:"name"     validate:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"    validate:"gte=0"`
	Category string          `json:"category" validate:"required,min=1,max=100"`
}

func (r CreateProductRequest) toNew() ledger.NewProduct {
	return ledger.NewProduct{
		Name:     strings.TrimSpace(r.Name),
		Price:    r.Price,
		Stock:    r.Stock,
		Category: strings.TrimSpace(r.Category),
	}
}

type UpdateProductRequest struct {
	Name     *string          `json:"name,omitempty"     validate:"omitempty,min=1,max=200"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Stock    *int             `json:"stock,omitempty"`
	Category *string          `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
}

func (r UpdateProductRequest) toUpdate() ledger.ProductUpdate {
	return ledger.ProductUpdate{
		Name:     r.Name,
		Price:    r.Price,
		Stock:    r.Stock,
		Category: r.Category,
	}
}

// RestockRequest leaves range checks to the ledger so a non-positive
// quantity is reported as an invalid operation.
type RestockRequest struct {
	Quantity int `json:"quantity"`
}

type ProductResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

type ProductListResponse struct {
	Count    int               `json:"count"`
	Products []ProductResponse `json:"products"`
}

type RestockResponse struct {
	Product ProductResponse `json:"product"`
	Added   int             `json:"added"`
}

type DeleteProductResponse struct {
	DeletedProductID int64 `json:"deleted_product_id"`
}

func ToProductResponse(p ledger.Product) ProductResponse {
	return ProductResponse{
		ID:       int64(p.ID),
		Name:     p.Name,
		Price:    p.Price.InexactFloat64(),
		Stock:    p.Stock,
		Category: p.Category,
	}
}

func ToProductResponseList(products []ledger.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}
	return responses
}

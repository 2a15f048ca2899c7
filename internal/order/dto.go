// AngelaMos | 2026
// dto.go

package order

import (
	"time"

	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
	"github.com/carterperez-dev/templates/inventory-api/internal/product"
	"github.com/carterperez-dev/templates/inventory-api/internal/user"
)

type PlaceOrderRequest struct {
	UserID    int64 `json:"user_id"    validate:"required,gt=0"`
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type OrderResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderDetailResponse struct {
	OrderResponse
	User    *user.UserResponse       `json:"user"`
	Product *product.ProductResponse `json:"product"`
}

type OrderListResponse struct {
	Count  int             `json:"count"`
	Orders []OrderResponse `json:"orders"`
}

type PlaceOrderResponse struct {
	Order          OrderResponse `json:"order"`
	RemainingStock int           `json:"remaining_stock"`
}

type StatusChangeResponse struct {
	Order          OrderResponse `json:"order"`
	PreviousStatus string        `json:"previous_status"`
	Restocked      int           `json:"restocked"`
}

func ToOrderResponse(o ledger.Order) OrderResponse {
	return OrderResponse{
		ID:        int64(o.ID),
		UserID:    int64(o.UserID),
		ProductID: int64(o.ProductID),
		Quantity:  o.Quantity,
		Total:     o.Total.InexactFloat64(),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

func ToOrderResponseList(orders []ledger.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, ToOrderResponse(o))
	}
	return responses
}

// ToOrderDetailResponse leaves user or product null when the referenced
// record has been deleted since the order was placed.
func ToOrderDetailResponse(d ledger.OrderDetail) OrderDetailResponse {
	resp := OrderDetailResponse{OrderResponse: ToOrderResponse(d.Order)}
	if d.User != nil {
		u := user.ToUserResponse(*d.User)
		resp.User = &u
	}
	if d.Product != nil {
		p := product.ToProductResponse(*d.Product)
		resp.Product = &p
	}
	return resp
}

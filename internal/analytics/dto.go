// AngelaMos | 2026
// dto.go

package analytics

import (
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
	"github.com/carterperez-dev/templates/inventory-api/internal/note"
	"github.com/carterperez-dev/templates/inventory-api/internal/order"
	"github.com/carterperez-dev/templates/inventory-api/internal/product"
	"github.com/carterperez-dev/templates/inventory-api/internal/user"
)

type CountsResponse struct {
	Users    int `json:"users"`
	Products int `json:"products"`
	Orders   int `json:"orders"`
	Notes    int `json:"notes"`
}

type InfoResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Environment string         `json:"environment"`
	Records     CountsResponse `json:"records"`
}

type SummaryResponse struct {
	Users    UserSummary    `json:"users"`
	Products ProductSummary `json:"products"`
	Orders   OrderSummary   `json:"orders"`
	Notes    NoteSummary    `json:"notes"`
}

type UserSummary struct {
	Total int `json:"total"`
}

type ProductSummary struct {
	Total             int                       `json:"total"`
	LowStockThreshold int                       `json:"low_stock_threshold"`
	LowStock          []product.ProductResponse `json:"low_stock"`
}

type OrderSummary struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	Revenue  float64        `json:"revenue"`
}

type NoteSummary struct {
	Total int `json:"total"`
}

type HistoryEntryResponse struct {
	order.OrderResponse
	ProductName string `json:"product_name"`
}

type OrderHistoryResponse struct {
	User       user.UserResponse      `json:"user"`
	OrderCount int                    `json:"order_count"`
	TotalSpent float64                `json:"total_spent"`
	Orders     []HistoryEntryResponse `json:"orders"`
}

type SearchResponse struct {
	Query    string                    `json:"query"`
	Users    []user.UserResponse       `json:"users"`
	Products []product.ProductResponse `json:"products"`
	Notes    []note.NoteResponse       `json:"notes"`
	Total    int                       `json:"total"`
}

type ResetResponse struct {
	Message string         `json:"message"`
	Records CountsResponse `json:"records"`
}

func toCountsResponse(c ledger.Counts) CountsResponse {
	return CountsResponse{
		Users:    c.Users,
		Products: c.Products,
		Orders:   c.Orders,
		Notes:    c.Notes,
	}
}

func ToSummaryResponse(s ledger.Summary, threshold int) SummaryResponse {
	byStatus := make(map[string]int, len(s.ByStatus))
	for status, n := range s.ByStatus {
		byStatus[string(status)] = n
	}

	return SummaryResponse{
		Users: UserSummary{Total: s.Counts.Users},
		Products: ProductSummary{
			Total:             s.Counts.Products,
			LowStockThreshold: threshold,
			LowStock:          product.ToProductResponseList(s.LowStock),
		},
		Orders: OrderSummary{
			Total:    s.Counts.Orders,
			ByStatus: byStatus,
			Revenue:  s.Revenue.InexactFloat64(),
		},
		Notes: NoteSummary{Total: s.Counts.Notes},
	}
}

func ToOrderHistoryResponse(h ledger.OrderHistory) OrderHistoryResponse {
	entries := make([]HistoryEntryResponse, 0, len(h.Orders))
	for _, e := range h.Orders {
		entries = append(entries, HistoryEntryResponse{
			OrderResponse: order.ToOrderResponse(e.Order),
			ProductName:   e.ProductName,
		})
	}

	return OrderHistoryResponse{
		User:       user.ToUserResponse(h.User),
		OrderCount: len(entries),
		TotalSpent: h.TotalSpent.InexactFloat64(),
		Orders:     entries,
	}
}

func ToSearchResponse(r ledger.SearchResult) SearchResponse {
	return SearchResponse{
		Query:    r.Term,
		Users:    user.ToUserResponseList(r.Users),
		Products: product.ToProductResponseList(r.Products),
		Notes:    note.ToNoteResponseList(r.Notes),
		Total:    len(r.Users) + len(r.Products) + len(r.Notes),
	}
}

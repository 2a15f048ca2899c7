// AngelaMos | 2026
// handler.go

package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/templates/inventory-api/internal/core"
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.PlaceOrder)
		r.Get("/{orderID}", h.GetOrder)
		r.Patch("/{orderID}/status", h.UpdateStatus)
	})
}

// ListOrders supports ?status= and ?user_id= filters.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var f ledger.OrderFilter

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := ledger.ParseOrderStatus(raw)
		if err != nil {
			core.JSONError(w, err)
			return
		}
		f.Status = status
	}

	userID, err := core.QueryInt(r, "user_id", 0)
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}
	f.UserID = ledger.UserID(userID)

	orders := h.service.List(r.Context(), f)

	core.OK(w, OrderListResponse{
		Count:  len(orders),
		Orders: ToOrderResponseList(orders),
	})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "orderID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	detail, err := h.service.Get(r.Context(), ledger.OrderID(id))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToOrderDetailResponse(detail))
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if !core.DecodeAndValidate(w, r, h.validator, &req) {
		return
	}

	placed, err := h.service.Place(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, PlaceOrderResponse{
		Order:          ToOrderResponse(placed.Order),
		RemainingStock: placed.RemainingStock,
	})
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "orderID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	var req UpdateStatusRequest
	if !core.DecodeAndValidate(w, r, h.validator, &req) {
		return
	}

	change, err := h.service.UpdateStatus(r.Context(), ledger.OrderID(id), req.Status)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, StatusChangeResponse{
		Order:          ToOrderResponse(change.Order),
		PreviousStatus: string(change.Previous),
		Restocked:      change.Restocked,
	})
}

// AngelaMos | 2026
// handler.go

package product

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
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/{productID}", h.GetProduct)
		r.Patch("/{productID}", h.UpdateProduct)
		r.Delete("/{productID}", h.DeleteProduct)
		r.Post("/{productID}/restock", h.RestockProduct)
	})
}

// ListProducts supports ?category=, ?stock_below=N and ?low_stock=true.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	stockBelow, err := core.QueryInt(r, "stock_below", 0)
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}
	if stockBelow < 0 {
		core.BadRequest(w, "stock_below must not be negative")
		return
	}

	lowStock, err := core.QueryBool(r, "low_stock")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	products := h.service.List(
		r.Context(),
		r.URL.Query().Get("category"),
		stockBelow,
		lowStock,
	)

	core.OK(w, ProductListResponse{
		Count:    len(products),
		Products: ToProductResponseList(products),
	})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "productID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	p, err := h.service.Get(r.Context(), ledger.ProductID(id))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToProductResponse(p))
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !core.DecodeAndValidate(w, r, h.validator, &req) {
		return
	}

	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToProductResponse(p))
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "productID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	var req UpdateProductRequest
	if !core.DecodeAndValidate(w, r, h.validator, &req) {
		return
	}

	p, err := h.service.Update(r.Context(), ledger.ProductID(id), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToProductResponse(p))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "productID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), ledger.ProductID(id)); err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, DeleteProductResponse{DeletedProductID: id})
}

func (h *Handler) RestockProduct(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "productID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	var req RestockRequest
	if !core.DecodeAndValidate(w, r, h.validator, &req) {
		return
	}

	p, err := h.service.Restock(r.Context(), ledger.ProductID(id), req.Quantity)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, RestockResponse{
		Product: ToProductResponse(p),
		Added:   req.Quantity,
	})
}

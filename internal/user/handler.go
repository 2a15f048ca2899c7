// AngelaMos | 2026
// handler.go

package user

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
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/{userID}", h.GetUser)
		r.Patch("/{userID}", h.UpdateUser)
		r.Delete("/{userID}", h.DeleteUser)
	})
}

// ListUsers returns every user, optionally filtered by ?role=admin|user.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if role != "" && !ledger.Role(role).Valid() {
		core.BadRequest(w, "role must be one of [admin, user]")
		return
	}

	users := h.service.List(r.Context(), role)

	core.OK(w, UserListResponse{
		Count: len(users),
		Users: ToUserResponseList(users),
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "userID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	u, err := h.service.Get(r.Context(), ledger.UserID(id))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToUserResponse(u))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !core.DecodeAndValidate(w, r, h.validator, &req) {
		return
	}

	u, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToUserResponse(u))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "userID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	var req UpdateUserRequest
	if !core.DecodeAndValidate(w, r, h.validator, &req) {
		return
	}

	u, err := h.service.Update(r.Context(), ledger.UserID(id), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToUserResponse(u))
}

// DeleteUser removes a user and cancels its pending orders.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "userID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	deleted, err := h.service.Delete(r.Context(), ledger.UserID(id))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToDeleteUserResponse(deleted))
}

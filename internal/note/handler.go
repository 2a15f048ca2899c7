// AngelaMos | 2026
// handler.go

package note

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
	r.Route("/notes", func(r chi.Router) {
		r.Get("/", h.ListNotes)
		r.Post("/", h.CreateNote)
		r.Get("/{noteID}", h.GetNote)
		r.Patch("/{noteID}", h.UpdateNote)
		r.Delete("/{noteID}", h.DeleteNote)
	})
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes := h.service.List(r.Context(), r.URL.Query().Get("tag"))

	core.OK(w, NoteListResponse{
		Count: len(notes),
		Notes: ToNoteResponseList(notes),
	})
}

func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "noteID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	n, err := h.service.Get(r.Context(), ledger.NoteID(id))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToNoteResponse(n))
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if !core.DecodeAndValidate(w, r, h.validator, &req) {
		return
	}

	n, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToNoteResponse(n))
}

// UpdateNote always refreshes updated_at, even for an empty body.
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "noteID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	var req UpdateNoteRequest
	if !core.DecodeAndValidate(w, r, h.validator, &req) {
		return
	}

	n, err := h.service.Update(r.Context(), ledger.NoteID(id), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToNoteResponse(n))
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "noteID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), ledger.NoteID(id)); err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, DeleteNoteResponse{DeletedNoteID: id})
}

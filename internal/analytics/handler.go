// AngelaMos | 2026
// handler.go

package analytics

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/templates/inventory-api/internal/config"
	"github.com/carterperez-dev/templates/inventory-api/internal/core"
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

// Store is the read-mostly view of the ledger behind the reporting routes.
type Store interface {
	Counts() ledger.Counts
	Summary() ledger.Summary
	UserOrderHistory(id ledger.UserID) (ledger.OrderHistory, error)
	Search(term string) ledger.SearchResult
	ResetToSeed()
	LowStockThreshold() int
}

type Handler struct {
	store Store
	app   config.AppConfig
}

func NewHandler(store Store, app config.AppConfig) *Handler {
	return &Handler{store: store, app: app}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Info)
	r.Get("/search", h.Search)
	r.Post("/reset", h.Reset)

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/summary", h.Summary)
		r.Get("/users/{userID}/orders", h.UserOrders)
	})
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	core.OK(w, InfoResponse{
		Name:        h.app.Name,
		Version:     h.app.Version,
		Environment: h.app.Environment,
		Records:     toCountsResponse(h.store.Counts()),
	})
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	core.OK(w, ToSummaryResponse(h.store.Summary(), h.store.LowStockThreshold()))
}

func (h *Handler) UserOrders(w http.ResponseWriter, r *http.Request) {
	id, err := core.PathID(r, "userID")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	history, err := h.store.UserOrderHistory(ledger.UserID(id))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToOrderHistoryResponse(history))
}

// Search requires a non-blank ?q= term.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		core.BadRequest(w, "query parameter q is required")
		return
	}

	core.OK(w, ToSearchResponse(h.store.Search(term)))
}

// Reset discards every change and reloads the seed data.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.store.ResetToSeed()

	slog.WarnContext(r.Context(), "ledger reset to seed data")

	core.OK(w, ResetResponse{
		Message: "store reset to seed data",
		Records: toCountsResponse(h.store.Counts()),
	})
}

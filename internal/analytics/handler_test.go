// AngelaMos | 2026
// handler_test.go

package analytics_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/inventory-api/internal/analytics"
	"github.com/carterperez-dev/templates/inventory-api/internal/config"
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

func newHandler(t *testing.T) (*ledger.Ledger, http.Handler) {
	t.Helper()

	store := ledger.New()
	r := chi.NewRouter()
	analytics.NewHandler(store, config.AppConfig{
		Name:        "In-Memory Store API",
		Version:     "1.0.0",
		Environment: "test",
	}).RegisterRoutes(r)

	return store, r
}

func get[T any](t *testing.T, h http.Handler, method, path string) (int, T) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body.Data
}

func TestInfo(t *testing.T) {
	_, h := newHandler(t)

	code, info := get[analytics.InfoResponse](t, h, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "In-Memory Store API", info.Name)
	assert.Equal(t, analytics.CountsResponse{Users: 3, Products: 4, Orders: 3}, info.Records)
}

func TestSummary(t *testing.T) {
	_, h := newHandler(t)

	code, s := get[analytics.SummaryResponse](t, h, http.MethodGet, "/analytics/summary")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, s.Users.Total)
	assert.Equal(t, 4, s.Products.Total)
	assert.Equal(t, 10, s.Products.LowStockThreshold)
	require.Len(t, s.Products.LowStock, 1)
	assert.Equal(t, "Desk Chair", s.Products.LowStock[0].Name)
	assert.InDelta(t, 1249.98, s.Orders.Revenue, 0.0001)
	assert.Equal(t, map[string]int{
		"pending":   1,
		"paid":      1,
		"shipped":   1,
		"cancelled": 0,
	}, s.Orders.ByStatus)
	assert.Equal(t, 0, s.Notes.Total)
}

func TestUserOrders(t *testing.T) {
	_, h := newHandler(t)

	code, hist := get[analytics.OrderHistoryResponse](t, h, http.MethodGet, "/analytics/users/1/orders")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Alice", hist.User.Name)
	assert.Equal(t, 2, hist.OrderCount)
	assert.InDelta(t, 1249.98, hist.TotalSpent, 0.0001)
	assert.Equal(t, "Laptop", hist.Orders[0].ProductName)
	assert.Equal(t, "Desk Chair", hist.Orders[1].ProductName)

	code, _ = get[analytics.OrderHistoryResponse](t, h, http.MethodGet, "/analytics/users/77/orders")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSearch(t *testing.T) {
	_, h := newHandler(t)

	code, res := get[analytics.SearchResponse](t, h, http.MethodGet, "/search?q=ELEC")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, res.Products, 2)
	assert.Empty(t, res.Users)
	assert.Equal(t, 2, res.Total)

	_, res = get[analytics.SearchResponse](t, h, http.MethodGet, "/search?q=bob")
	require.Len(t, res.Users, 1)
	assert.Equal(t, "bob@example.com", res.Users[0].Email)

	code, _ = get[analytics.SearchResponse](t, h, http.MethodGet, "/search")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSearchKeepsSurroundingWhitespace(t *testing.T) {
	_, h := newHandler(t)

	code, res := get[analytics.SearchResponse](t, h, http.MethodGet, "/search?q=desk%20")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "desk ", res.Query)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Desk Chair", res.Products[0].Name)

	code, res = get[analytics.SearchResponse](t, h, http.MethodGet, "/search?q=%20")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, " ", res.Query)
	require.Len(t, res.Products, 1)
	assert.Equal(t, 1, res.Total)

	code, _ = get[analytics.SearchResponse](t, h, http.MethodGet, "/search?q=")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestReset(t *testing.T) {
	store, h := newHandler(t)

	_, err := store.PlaceOrder(3, 4, 10)
	require.NoError(t, err)
	_, err = store.CreateNote(ledger.NewNote{Title: "scratch"})
	require.NoError(t, err)

	code, res := get[analytics.ResetResponse](t, h, http.MethodPost, "/reset")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, analytics.CountsResponse{Users: 3, Products: 4, Orders: 3}, res.Records)
	assert.Equal(t, ledger.Counters{Users: 3, Products: 4, Orders: 3}, store.Counters())

	p, err := store.GetProduct(4)
	require.NoError(t, err)
	assert.Equal(t, 200, p.Stock)
}

// AngelaMos | 2026
// handler_test.go

package product_test

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/inventory-api/internal/events"
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
	"github.com/carterperez-dev/templates/inventory-api/internal/product"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) (*ledger.Ledger, http.Handler) {
	t.Helper()

	store := ledger.New()
	pub := events.NewLogPublisher(nil)

	r := chi.NewRouter()
	product.NewHandler(product.NewService(store, pub)).RegisterRoutes(r)
	return store, r
}

func call(t *testing.T, h http.Handler, method, path, body string) (int, apiResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestCreateProduct(t *testing.T) {
	_, h := newTestRouter(t)

	code, resp := call(t, h, http.MethodPost, "/products",
		`{"name":"Monitor","price":189.5,"stock":12,"category":"electronics"}`)
	require.Equal(t, http.StatusCreated, code)

	var p product.ProductResponse
	require.NoError(t, json.Unmarshal(resp.Data, &p))
	assert.Equal(t, int64(5), p.ID)
	assert.InDelta(t, 189.5, p.Price, 0.0001)
}

func TestCreateProductRejectsBadValues(t *testing.T) {
	store, h := newTestRouter(t)

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"zero price", `{"name":"A","price":0,"stock":1,"category":"c"}`, "INVALID_OPERATION"},
		{"negative stock", `{"name":"A","price":1,"stock":-1,"category":"c"}`, "VALIDATION_ERROR"},
		{"missing category", `{"name":"A","price":1,"stock":1}`, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := call(t, h, http.MethodPost, "/products", tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}

	assert.Equal(t, 4, store.Counts().Products)
}

func TestListProductsFilters(t *testing.T) {
	_, h := newTestRouter(t)

	tests := []struct {
		query string
		want  []int64
	}{
		{"", []int64{1, 2, 3, 4}},
		{"?category=electronics", []int64{1, 2}},
		{"?low_stock=true", []int64{3}},
		{"?stock_below=20", []int64{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			code, resp := call(t, h, http.MethodGet, "/products"+tt.query, "")
			require.Equal(t, http.StatusOK, code)

			var list product.ProductListResponse
			require.NoError(t, json.Unmarshal(resp.Data, &list))

			ids := make([]int64, 0, len(list.Products))
			for _, p := range list.Products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	code, _ := call(t, h, http.MethodGet, "/products?stock_below=many", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDeleteProductBlockedByPendingOrder(t *testing.T) {
	store, h := newTestRouter(t)

	code, resp := call(t, h, http.MethodDelete, "/products/2", "")
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
	assert.InDelta(t, 1, resp.Error.Details["pending_orders"], 0)

	_, err := store.GetProduct(2)
	require.NoError(t, err)
}

func TestDeleteProduct(t *testing.T) {
	store, h := newTestRouter(t)

	code, resp := call(t, h, http.MethodDelete, "/products/4", "")
	require.Equal(t, http.StatusOK, code)

	var deleted product.DeleteProductResponse
	require.NoError(t, json.Unmarshal(resp.Data, &deleted))
	assert.Equal(t, int64(4), deleted.DeletedProductID)
	assert.Equal(t, 3, store.Counts().Products)
}

func TestRestock(t *testing.T) {
	_, h := newTestRouter(t)

	code, resp := call(t, h, http.MethodPost, "/products/3/restock", `{"quantity":5}`)
	require.Equal(t, http.StatusOK, code)

	var restocked product.RestockResponse
	require.NoError(t, json.Unmarshal(resp.Data, &restocked))
	assert.Equal(t, 13, restocked.Product.Stock)
	assert.Equal(t, 5, restocked.Added)

	code, resp = call(t, h, http.MethodPost, "/products/3/restock", `{"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_OPERATION", resp.Error.Code)

	code, _ = call(t, h, http.MethodPost, "/products/99/restock", `{"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRestockRejectsStockOverflow(t *testing.T) {
	store, h := newTestRouter(t)

	body := fmt.Sprintf(`{"quantity":%d}`, math.MaxInt)
	code, resp := call(t, h, http.MethodPost, "/products/1/restock", body)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_OPERATION", resp.Error.Code)

	p, err := store.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, 15, p.Stock)
}

func TestUpdateProductPrice(t *testing.T) {
	store, h := newTestRouter(t)

	code, _ := call(t, h, http.MethodPatch, "/products/2", `{"price":"89.99"}`)
	require.Equal(t, http.StatusOK, code)

	o, err := store.GetOrder(2)
	require.NoError(t, err)
	assert.Equal(t, "159.98", o.Total.StringFixed(2))

	code, _ = call(t, h, http.MethodPatch, "/products/2", `{"stock":-3}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

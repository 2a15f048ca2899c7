// AngelaMos | 2026
// handler_test.go

package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/inventory-api/internal/core"
	"github.com/carterperez-dev/templates/inventory-api/internal/health"
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serve(t *testing.T, h *health.Handler, path string) (int, health.ReadinessResponse) {
	t.Helper()

	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body health.ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestReadinessWithRedisDisabled(t *testing.T) {
	h := health.NewHandler(
		health.Dependency{Name: "ledger", Checker: ledger.New()},
		health.Dependency{Name: "redis", Checker: &core.Redis{}},
	)

	code, body := serve(t, h, "/readyz")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
	require.Len(t, body.Checks, 2)
	assert.Equal(t, "disabled", body.Checks[1].Message)
	assert.True(t, body.Checks[1].Healthy)
}

func TestReadinessDegraded(t *testing.T) {
	h := health.NewHandler(
		health.Dependency{Name: "redis", Checker: pingFunc(func(context.Context) error {
			return errors.New("connection refused")
		})},
	)

	code, body := serve(t, h, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "ping failed", body.Checks[0].Message)
}

func TestShutdownFailsHealthChecks(t *testing.T) {
	h := health.NewHandler()

	code, body := serve(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)

	h.SetShutdown(true)

	code, body = serve(t, h, "/livez")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "shutting_down", body.Status)

	code, _ = serve(t, h, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

// AngelaMos | 2026
// errors_test.go

package core_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/inventory-api/internal/core"
)

type detailedErr struct{}

func (detailedErr) Error() string                 { return "blocked" }
func (detailedErr) Unwrap() error                 { return core.ErrConflict }
func (detailedErr) ErrorDetails() map[string]any { return map[string]any{"pending_orders": 2} }

func TestFromErrorClassifiesSentinels(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{fmt.Errorf("user 9 not found: %w", core.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("dup: %w", core.ErrConflict), http.StatusConflict, "CONFLICT"},
		{fmt.Errorf("bad: %w", core.ErrInvalidInput), http.StatusBadRequest, "INVALID_OPERATION"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{core.ValidationError("name is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			appErr := core.FromError(tt.err)
			assert.Equal(t, tt.wantStatus, appErr.StatusCode)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestFromErrorHidesInternalMessage(t *testing.T) {
	appErr := core.FromError(errors.New("secret connection string"))
	assert.Equal(t, "internal server error", appErr.Message)
}

func TestJSONErrorCarriesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	core.JSONError(rec, detailedErr{})

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp core.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "blocked", resp.Error.Message)
	assert.InDelta(t, 2, resp.Error.Details["pending_orders"], 0)
}

func TestRateLimitErrorRendersRetryDelay(t *testing.T) {
	rec := httptest.NewRecorder()
	core.JSONError(rec, core.RateLimitError(7))

	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp core.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "RATE_LIMITED", resp.Error.Code)
	assert.InDelta(t, 7, resp.Error.Details["retry_after"], 0)
	assert.ErrorIs(t, core.RateLimitError(7), core.ErrRateLimited)
}

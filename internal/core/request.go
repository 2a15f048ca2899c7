// AngelaMos | 2026
// request.go

package core

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// PathID parses a positive integer route parameter.
func PathID(r *http.Request, key string) (int64, error) {
	raw := chi.URLParam(r, key)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%s must be a positive integer: %w", key, ErrInvalidInput)
	}

	return id, nil
}

// QueryInt parses an optional integer query parameter. A missing value
// yields def; a malformed one is an error.
func QueryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, ErrInvalidInput)
	}

	return v, nil
}

func QueryBool(r *http.Request, key string) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, ErrInvalidInput)
	}

	return v, nil
}

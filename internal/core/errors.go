// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrRateLimited  = errors.New("rate limited")
)

// AppError is an error that already knows how it should be rendered.
type AppError struct {
	Err        error
	Message    string
	StatusCode int
	Code       string
	Details    map[string]any
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, statusCode int, code string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: statusCode,
		Code:       code,
	}
}

// Detailer is implemented by errors that expose the identifiers involved
// in the failure, e.g. the blocking order count of a refused deletion.
type Detailer interface {
	ErrorDetails() map[string]any
}

func NotFoundError(resource string) *AppError {
	return NewAppError(
		ErrNotFound,
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
		"NOT_FOUND",
	)
}

// RateLimitError carries the retry delay so clients can back off.
func RateLimitError(retryAfter int) *AppError {
	appErr := NewAppError(
		ErrRateLimited,
		fmt.Sprintf("Rate limit exceeded. Retry after %d seconds.", retryAfter),
		http.StatusTooManyRequests,
		"RATE_LIMITED",
	)
	appErr.Details = map[string]any{"retry_after": retryAfter}
	return appErr
}

func ValidationError(message string) *AppError {
	return NewAppError(
		ErrInvalidInput,
		message,
		http.StatusBadRequest,
		"VALIDATION_ERROR",
	)
}

func InternalError(err error) *AppError {
	return NewAppError(
		err,
		"internal server error",
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
	)
}

// FromError classifies an arbitrary error by its sentinel kind. The message
// of the original error is kept for client errors and hidden for server errors.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var out *AppError
	switch {
	case errors.Is(err, ErrNotFound):
		out = NewAppError(err, err.Error(), http.StatusNotFound, "NOT_FOUND")
	case errors.Is(err, ErrConflict):
		out = NewAppError(err, err.Error(), http.StatusConflict, "CONFLICT")
	case errors.Is(err, ErrInvalidInput):
		out = NewAppError(
			err,
			err.Error(),
			http.StatusBadRequest,
			"INVALID_OPERATION",
		)
	default:
		return InternalError(err)
	}

	var d Detailer
	if errors.As(err, &d) {
		out.Details = d.ErrorDetails()
	}

	return out
}

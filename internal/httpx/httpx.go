// Package httpx holds the JSON response helpers shared by every handler.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	// ErrUnauthorized is returned when no valid session accompanies a request.
	ErrUnauthorized = errors.New("Unauthorized")

	// ErrNotFound is returned when an identifier does not resolve to a resource.
	ErrNotFound = errors.New("Not found")
)

// ValidationError marks malformed or out-of-range input. The message is safe
// to surface to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid wraps a message as a ValidationError.
func Invalid(msg string) error { return &ValidationError{Message: msg} }

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Error writes the uniform failure body {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// ErrorFrom maps an error to the response taxonomy: validation errors become
// 400, ErrUnauthorized 401, ErrNotFound 404, anything else a generic 500.
func ErrorFrom(w http.ResponseWriter, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		Error(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, ErrUnauthorized):
		Error(w, http.StatusUnauthorized, ErrUnauthorized.Error())
	case errors.Is(err, ErrNotFound):
		Error(w, http.StatusNotFound, ErrNotFound.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal error")
	}
}

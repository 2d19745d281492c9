// Package httpx provides HTTP response utilities and the API error kinds.
package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a request-terminal error carrying the HTTP status it maps to
// and one or more human-readable messages.
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// BadRequest builds a 400 error from one or more messages.
func BadRequest(messages ...string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Messages: messages}
}

// BadRequestf builds a 400 error from a format string.
func BadRequestf(format string, args ...any) *APIError {
	return BadRequest(fmt.Sprintf(format, args...))
}

// Unauthorized builds a 401 error.
func Unauthorized(message string) *APIError {
	if message == "" {
		message = "Unauthorized"
	}
	return &APIError{Status: http.StatusUnauthorized, Messages: []string{message}}
}

// NotFoundf builds a 404 error from a format string.
func NotFoundf(format string, args ...any) *APIError {
	return &APIError{Status: http.StatusNotFound, Messages: []string{fmt.Sprintf(format, args...)}}
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

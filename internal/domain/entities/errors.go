package entities

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound marks hosting API failures caused by a missing resource.
// The translation-cache probe treats these as a normal "absent" result.
var ErrNotFound = errors.New("resource not found")

// APIError is a non-success status returned by the hosting API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hosting API returned status %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses without callers
// inspecting status codes.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// ParseError is a hosting API response body that could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse hosting API response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Package uploads provides the file upload gateway shared by every
// media-bearing resource: it validates a single file, transfers it to
// object storage, and returns a stable public reference.
package uploads

import (
	"errors"
	"net/http"
)

// Domain errors for upload operations.
var (
	ErrSizeExceeded    = errors.New("uploads: file exceeds maximum size")
	ErrUnauthenticated = errors.New("uploads: authentication required")
	ErrInvalidFile     = errors.New("uploads: invalid file")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrSizeExceeded) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrUnauthenticated) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrInvalidFile) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

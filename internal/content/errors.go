package content

import (
	"errors"
	"net/http"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/resource"
)

// ErrUnknownResource indicates a request for a resource outside the catalog.
var ErrUnknownResource = errors.New("content: unknown resource")

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if _, ok := resource.IsValidation(err); ok {
		return http.StatusBadRequest
	}
	if errors.Is(err, resource.ErrNotFound) || errors.Is(err, ErrUnknownResource) {
		return http.StatusNotFound
	}
	if errors.Is(err, resource.ErrDuplicate) || errors.Is(err, resource.ErrDraftOpen) {
		return http.StatusConflict
	}
	if errors.Is(err, resource.ErrNotConfirmed) {
		return http.StatusPreconditionRequired
	}
	return http.StatusInternalServerError
}

package resource

import (
	"errors"
	"fmt"
)

// Domain errors for resource operations.
var (
	ErrNotFound     = errors.New("resource: record not found")
	ErrDuplicate    = errors.New("resource: record already exists")
	ErrDraftOpen    = errors.New("resource: a draft is already open")
	ErrNoDraft      = errors.New("resource: no draft is open")
	ErrNotConfirmed = errors.New("resource: deletion not confirmed")
)

// ValidationError reports a required field that was left empty on submit.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

// IsValidation reports whether err is a ValidationError and returns the
// offending field name when it is.
func IsValidation(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field, true
	}
	return "", false
}

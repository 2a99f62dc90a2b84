package resource

import (
	"time"

	"github.com/google/uuid"
)

// Record is one stored row of a resource: a system-assigned identifier,
// the field values keyed by field name, and persistence timestamps. The
// authoritative copy lives in the store; records held by a Manager are a
// read-through cache refreshed after every successful write.
type Record struct {
	ID        uuid.UUID      `json:"id"`
	Values    map[string]any `json:"values"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Value returns the named field value, or nil when absent.
func (r Record) Value(field string) any {
	return r.Values[field]
}

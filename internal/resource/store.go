package resource

import (
	"context"

	"github.com/google/uuid"
)

// Store is the persistence collaborator contract the engine depends on:
// a table-oriented backend exposing ordered select, insert,
// update-by-identifier, and delete-by-identifier. Implementations are
// injected at construction so tests can substitute fakes.
type Store interface {
	// Select returns all records of the resource ordered by the schema's
	// configured sort field, identifier ascending when none is set.
	Select(ctx context.Context, schema Schema) ([]Record, error)

	// Insert persists a new record and returns it with its assigned
	// identifier and timestamps.
	Insert(ctx context.Context, schema Schema, values map[string]any) (*Record, error)

	// Update replaces the field values of the record with the given
	// identifier. Returns ErrNotFound when no such record exists.
	Update(ctx context.Context, schema Schema, id uuid.UUID, values map[string]any) (*Record, error)

	// Delete removes the record with the given identifier.
	// Returns ErrNotFound when no such record exists.
	Delete(ctx context.Context, schema Schema, id uuid.UUID) error
}

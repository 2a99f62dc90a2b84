package storage

import "context"

// System defines the object storage operations the upload gateway and
// resource media depend on. Implementations handle the underlying
// mechanism (filesystem, S3) behind a consistent API.
type System interface {
	// Store saves data at the specified key. If the key already exists,
	// its contents are overwritten. Parent namespaces are created as needed.
	// Returns ErrInvalidKey if the key is empty or contains path traversal.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at the specified key.
	// Returns ErrNotFound if the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete removes the data at the specified key.
	// Returns nil if the key does not exist (idempotent).
	Delete(ctx context.Context, key string) error

	// Validate checks if a key exists and is accessible.
	Validate(ctx context.Context, key string) (bool, error)

	// PublicURL returns the stable public URL serving the key.
	// It performs no I/O; the key is not checked for existence.
	PublicURL(key string) string
}

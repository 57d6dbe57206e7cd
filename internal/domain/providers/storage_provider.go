package providers

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key has never been written or has
// been deleted.
var ErrKeyNotFound = errors.New("key not found")

// StorageProvider is the client-local key-value store the feedback and scan
// history blobs live in. Values are opaque byte blobs read and written
// wholesale; there is no partial update and no cross-process locking, so a
// single writer is assumed.
type StorageProvider interface {
	// Get retrieves the blob stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a blob under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists checks whether a key holds a value.
	Exists(ctx context.Context, key string) (bool, error)
}

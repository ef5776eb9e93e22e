// Package blob provides the object-storage port for original resume
// documents. Analysis correctness never depends on it; it only keeps the
// uploaded bytes around for download and cleanup.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no object exists under the given key.
var ErrNotFound = errors.New("object not found")

// Store persists and retrieves raw document bytes by key.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

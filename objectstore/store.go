// Package objectstore abstracts the object storage snapshots live in.
//
// Snapshot files are small (one JSON document per table), so the interface
// works on whole objects rather than streamed blobs: Get returns the full
// payload, Put replaces it atomically. Implementations exist for local disk,
// memory (tests), Amazon S3, and MinIO/S3-compatible endpoints.
package objectstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when an object does not exist.
//
// Implementations must return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is a whole-object key/value store.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the full payload of the named object.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put atomically creates or replaces the named object.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes the named object. Deleting a missing object is not an
	// error.
	Delete(ctx context.Context, name string) error
	// List returns the names of all objects under prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

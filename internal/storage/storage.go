// Package storage abstracts the object store that holds uploaded post assets.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when a key does not exist in the bucket.
var ErrObjectNotFound = errors.New("object not found")

// Storage is the asset bucket boundary. Keys are slash separated paths; the
// store itself has no hierarchy.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

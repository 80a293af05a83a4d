// Package blob abstracts where recipe images are kept. The service layer
// hands it a key and bytes and gets back a reference it can store on the
// recipe row; it never touches the filesystem or S3 directly.
package blob

import (
	"context"
	"io"
)

// Store defines the interface for image blob storage.
type Store interface {
	// Put stores the blob under key and returns the reference to persist
	// alongside the recipe (a URL path for the local backend, an object
	// URL for S3).
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Delete removes the blob for a previously returned reference.
	// Deleting a reference that no longer exists is a no-op.
	Delete(ctx context.Context, ref string) error
}

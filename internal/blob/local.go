package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Ensure LocalStore implements Store
var _ Store = (*LocalStore)(nil)

// LocalStore keeps blobs as files under a single uploads directory and
// returns references of the form "/uploads/<key>", which the server
// serves as static files.
type LocalStore struct {
	dir       string
	urlPrefix string
}

// NewLocalStore creates a LocalStore rooted at dir, creating it if
// needed. urlPrefix is the public path prefix for returned references,
// e.g. "/uploads".
func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStore{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// Dir returns the directory blobs are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Put writes the blob to dir/key. Keys are expected to be sanitized
// already; anything resolving outside the uploads directory is rejected.
func (s *LocalStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	target, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(target)
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to close blob file: %w", err)
	}

	return s.urlPrefix + "/" + key, nil
}

// Delete removes the file behind a reference returned by Put.
func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	key := path.Base(ref)
	target, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// resolve joins key onto the uploads dir and verifies the result stays
// inside it.
func (s *LocalStore) resolve(key string) (string, error) {
	target := filepath.Join(s.dir, filepath.Clean("/"+key))
	if filepath.Dir(target) != filepath.Clean(s.dir) {
		return "", fmt.Errorf("invalid blob key: %q", key)
	}
	return target, nil
}

// Package images validates recipe image uploads before they reach blob
// storage: extension allowlist, size cap, and filename sanitization.
package images

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxSize is the largest accepted upload, 5 MiB.
const MaxSize = 5 << 20

var (
	// ErrTooLarge indicates the upload exceeds MaxSize.
	ErrTooLarge = errors.New("image exceeds the maximum allowed size (5 MiB)")

	// ErrUnsupportedType indicates the filename extension is not an
	// accepted image type.
	ErrUnsupportedType = errors.New("file type not allowed; upload png, jpg or jpeg")
)

// allowed maps accepted lowercase extensions to their content type.
var allowed = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// Validate checks an upload's filename extension and declared size.
// The extension check is case-insensitive; a file without an extension is
// rejected.
func Validate(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowed[ext]; !ok {
		return ErrUnsupportedType
	}
	if size > MaxSize {
		return ErrTooLarge
	}
	return nil
}

// ContentType returns the MIME type for a validated filename.
func ContentType(filename string) string {
	return allowed[strings.ToLower(filepath.Ext(filename))]
}

// StorageKey builds a safe, unique blob key from a user-supplied
// filename. The name is sanitized against path traversal and prefixed
// with a UUID so concurrent uploads of the same filename cannot clobber
// each other.
func StorageKey(filename string) string {
	return fmt.Sprintf("%s_%s", uuid.New().String(), Sanitize(filename))
}

// Sanitize strips path components and unsafe characters from a filename,
// leaving only letters, digits, '.', '-' and '_'. An empty result
// becomes "image" with the original extension preserved when valid.
func Sanitize(filename string) string {
	// Drop any directory components, whichever separator was used.
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}

	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" || cleaned == strings.Trim(filepath.Ext(base), ".") {
		ext := strings.ToLower(filepath.Ext(base))
		if _, ok := allowed[ext]; ok {
			return "image" + ext
		}
		return "image"
	}
	return cleaned
}

package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewLocalStore(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	t.Run("Put writes the file and returns a /uploads ref", func(t *testing.T) {
		ref, err := store.Put(ctx, "abc_cake.png", "image/png", strings.NewReader("fake-png-bytes"))
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if ref != "/uploads/abc_cake.png" {
			t.Errorf("Unexpected ref: %q", ref)
		}

		data, err := os.ReadFile(filepath.Join(dir, "abc_cake.png"))
		if err != nil {
			t.Fatalf("Blob file not written: %v", err)
		}
		if string(data) != "fake-png-bytes" {
			t.Errorf("Blob content mismatch: %q", data)
		}
	})

	t.Run("Put rejects keys escaping the uploads dir", func(t *testing.T) {
		if _, err := store.Put(ctx, "../escape.png", "image/png", strings.NewReader("x")); err == nil {
			if _, statErr := os.Stat(filepath.Join(filepath.Dir(dir), "escape.png")); statErr == nil {
				t.Fatal("Traversal key escaped the uploads directory")
			}
		}
	})

	t.Run("Delete removes the file", func(t *testing.T) {
		if err := store.Delete(ctx, "/uploads/abc_cake.png"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "abc_cake.png")); !os.IsNotExist(err) {
			t.Error("Blob file still exists after Delete")
		}
	})

	t.Run("Delete of a missing ref is a no-op", func(t *testing.T) {
		if err := store.Delete(ctx, "/uploads/never-existed.png"); err != nil {
			t.Errorf("Delete of missing ref failed: %v", err)
		}
	})
}

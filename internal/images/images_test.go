package images

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  error
	}{
		{"small png accepted", "cake.png", 1024, nil},
		{"uppercase JPG accepted", "cake.JPG", 1024, nil},
		{"jpeg accepted", "cake.jpeg", 1024, nil},
		{"exactly at the limit accepted", "cake.png", MaxSize, nil},
		{"oversized png rejected", "cake.png", 6 << 20, ErrTooLarge},
		{"exe rejected", "cake.exe", 1024, ErrUnsupportedType},
		{"no extension rejected", "cake", 1024, ErrUnsupportedType},
		{"gif rejected", "cake.gif", 1024, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.filename, tt.size)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q, %d) = %v, want %v", tt.filename, tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cake.png", "cake.png"},
		{"../../etc/passwd.png", "passwd.png"},
		{`..\..\windows\evil.jpg`, "evil.jpg"},
		{"my cake (1).png", "mycake1.png"},
		{"....png", "image.png"},
		{"???", "image"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStorageKey(t *testing.T) {
	t.Run("keys are unique per call", func(t *testing.T) {
		a := StorageKey("cake.png")
		b := StorageKey("cake.png")
		if a == b {
			t.Error("Expected distinct keys for repeated uploads of the same filename")
		}
	})

	t.Run("key contains no path separators", func(t *testing.T) {
		key := StorageKey("../../../etc/passwd.png")
		if strings.ContainsAny(key, `/\`) {
			t.Errorf("Key contains path separators: %q", key)
		}
	})
}

func TestContentType(t *testing.T) {
	if got := ContentType("cake.PNG"); got != "image/png" {
		t.Errorf("ContentType(cake.PNG) = %q", got)
	}
	if got := ContentType("cake.jpg"); got != "image/jpeg" {
		t.Errorf("ContentType(cake.jpg) = %q", got)
	}
}

package storage

import (
	"strings"
	"testing"
)

func TestObjectKeyKeepsFieldAndExtension(t *testing.T) {
	key := ObjectKey("coverImage", "Photo.JPG")
	if !strings.HasPrefix(key, "coverImage-") {
		t.Fatalf("expected coverImage- prefix, got %q", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Fatalf("expected lowercased .jpg suffix, got %q", key)
	}
}

func TestObjectKeyDistinctForSameFilename(t *testing.T) {
	a := ObjectKey("coverImage", "photo.png")
	b := ObjectKey("coverImage", "photo.png")
	if a == b {
		t.Fatalf("expected distinct keys for identical uploads, got %q twice", a)
	}
}

func TestObjectKeyDefaultsFieldAndHandlesNoExtension(t *testing.T) {
	key := ObjectKey("", "README")
	if !strings.HasPrefix(key, "file-") {
		t.Fatalf("expected file- prefix, got %q", key)
	}
	if strings.Contains(key, ".") {
		t.Fatalf("expected no extension, got %q", key)
	}
}

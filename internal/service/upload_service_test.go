package service

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUploadService_SaveImage_Success(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir)

	content := []byte("fake-png-bytes")
	path, err := svc.SaveImage("dish.png", int64(len(content)), bytes.NewReader(content))
	if err != nil {
		t.Fatalf("SaveImage returned error: %v", err)
	}
	if !strings.HasPrefix(path, "/uploads/") || !strings.HasSuffix(path, ".png") {
		t.Fatalf("unexpected public path %q", path)
	}

	// The stored file name is uuid-based, not the client's name.
	if strings.Contains(path, "dish") {
		t.Fatalf("stored name must not reuse the client filename: %q", path)
	}

	onDisk := filepath.Join(dir, strings.TrimPrefix(path, "/uploads/"))
	got, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("stored content differs from upload")
	}
}

func TestUploadService_SaveImage_UniqueNames(t *testing.T) {
	svc := NewUploadService(t.TempDir())

	p1, err := svc.SaveImage("a.jpg", 1, strings.NewReader("x"))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	p2, err := svc.SaveImage("a.jpg", 1, strings.NewReader("x"))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	if p1 == p2 {
		t.Fatalf("two uploads of the same file must not collide: %q", p1)
	}
}

func TestUploadService_SaveImage_RejectsExtension(t *testing.T) {
	svc := NewUploadService(t.TempDir())

	for _, name := range []string{"shell.sh", "movie.gif", "noext", "double.png.exe"} {
		if _, err := svc.SaveImage(name, 4, strings.NewReader("data")); !errors.Is(err, ErrImageType) {
			t.Errorf("%s: expected ErrImageType, got %v", name, err)
		}
	}
}

func TestUploadService_SaveImage_RejectsDeclaredOversize(t *testing.T) {
	svc := NewUploadService(t.TempDir())

	_, err := svc.SaveImage("big.jpg", MaxImageSize+1, strings.NewReader("tiny"))
	if !errors.Is(err, ErrImageTooBig) {
		t.Fatalf("expected ErrImageTooBig, got %v", err)
	}
}

func TestUploadService_SaveImage_MissingFile(t *testing.T) {
	svc := NewUploadService(t.TempDir())

	if _, err := svc.SaveImage("", 0, nil); !errors.Is(err, ErrImageMissing) {
		t.Fatalf("expected ErrImageMissing, got %v", err)
	}
}

package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Upload errors surfaced to the handler as 400s.
var (
	ErrImageType    = errors.New("only jpg, jpeg, png and webp images are allowed")
	ErrImageTooBig  = errors.New("image exceeds the maximum allowed size")
	ErrImageMissing = errors.New("image file is required")
)

// MaxImageSize caps uploaded images at 5 MB.
const MaxImageSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadService persists uploaded images under a local directory and hands
// back the public /uploads path stored on menu records.
type UploadService struct {
	dir string
}

func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir}
}

// SaveImage validates extension and size, then writes the file under a fresh
// uuid-based name so uploads can never collide or overwrite each other.
func (s *UploadService) SaveImage(filename string, size int64, src io.Reader) (string, error) {
	if filename == "" || src == nil {
		return "", ErrImageMissing
	}
	if size > MaxImageSize {
		return "", ErrImageTooBig
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return "", ErrImageType
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir %q: %w", s.dir, err)
	}

	name := uuid.NewString() + ext
	dstPath := filepath.Join(s.dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create upload file %q: %w", dstPath, err)
	}
	defer func() { _ = dst.Close() }()

	// size from the multipart header is advisory; enforce the cap on the
	// actual bytes as well.
	n, err := io.Copy(dst, io.LimitReader(src, MaxImageSize+1))
	if err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("write upload file %q: %w", dstPath, err)
	}
	if n > MaxImageSize {
		_ = os.Remove(dstPath)
		return "", ErrImageTooBig
	}

	return "/uploads/" + name, nil
}

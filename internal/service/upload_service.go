package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const defaultUploadMaxBytes = 5 << 20 // 5 MB

// Image types accepted for avatars, skill icons and project screenshots.
// The content is sniffed; the client-supplied extension is not trusted.
var allowedImageTypes = map[string]struct{}{
	"image/png":     {},
	"image/jpeg":    {},
	"image/gif":     {},
	"image/webp":    {},
	"image/svg+xml": {},
}

// UploadService stores uploaded images on local disk and returns the URL
// path they are served under.
type UploadService struct {
	dir      string
	baseURL  string
	maxBytes int64
}

func NewUploadService(dir, baseURL string, maxBytes int64) *UploadService {
	if maxBytes <= 0 {
		maxBytes = defaultUploadMaxBytes
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	return &UploadService{dir: dir, baseURL: baseURL, maxBytes: maxBytes}
}

// Store writes the file under a collision-free name and returns its URL path.
func (s *UploadService) Store(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	if size > s.maxBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrValidation, s.maxBytes)
	}

	// Read through a hard cap regardless of the declared size.
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrValidation, s.maxBytes)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: file is empty", ErrValidation)
	}

	mtype := mimetype.Detect(data)
	if _, ok := allowedImageTypes[mtype.String()]; !ok {
		return "", fmt.Errorf("%w: unsupported file type %s", ErrValidation, mtype.String())
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	stored := uuid.NewString() + "-" + sanitizeFilename(filename, mtype.Extension())
	if err := os.WriteFile(filepath.Join(s.dir, stored), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return path.Join(s.baseURL, stored), nil
}

// sanitizeFilename strips path components and odd characters, falling back to
// the sniffed extension when the name is unusable.
func sanitizeFilename(name, sniffedExt string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "file" + sniffedExt
	}
	return out
}

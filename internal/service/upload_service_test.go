package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Smallest valid PNG: signature, IHDR for a 1x1 image, empty IDAT, IEND.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0a, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

func TestUploadService_StoresImage(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "/uploads", 0)

	url, err := svc.Store(context.Background(), "avatar.png", int64(len(tinyPNG)), bytes.NewReader(tinyPNG))
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") {
		t.Fatalf("expected URL under /uploads/, got %q", url)
	}
	if !strings.HasSuffix(url, "avatar.png") {
		t.Fatalf("expected stored name to keep the original filename, got %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if !bytes.Equal(data, tinyPNG) {
		t.Fatal("stored bytes differ from upload")
	}
}

func TestUploadService_CollisionFreeNames(t *testing.T) {
	svc := NewUploadService(t.TempDir(), "/uploads", 0)

	a, err := svc.Store(context.Background(), "icon.png", int64(len(tinyPNG)), bytes.NewReader(tinyPNG))
	if err != nil {
		t.Fatalf("first Store: %v", err)
	}
	b, err := svc.Store(context.Background(), "icon.png", int64(len(tinyPNG)), bytes.NewReader(tinyPNG))
	if err != nil {
		t.Fatalf("second Store: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct URLs for same filename, got %q twice", a)
	}
}

func TestUploadService_RejectsNonImage(t *testing.T) {
	svc := NewUploadService(t.TempDir(), "/uploads", 0)

	payload := []byte("#!/bin/sh\necho hi\n")
	_, err := svc.Store(context.Background(), "script.png", int64(len(payload)), bytes.NewReader(payload))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for non-image content, got %v", err)
	}
}

func TestUploadService_RejectsOversize(t *testing.T) {
	svc := NewUploadService(t.TempDir(), "/uploads", 16)

	// Declared size over the cap fails before reading.
	_, err := svc.Store(context.Background(), "big.png", 1<<20, bytes.NewReader(tinyPNG))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for declared oversize, got %v", err)
	}

	// A lying declared size is caught by the read cap.
	_, err = svc.Store(context.Background(), "big.png", 10, bytes.NewReader(tinyPNG))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for actual oversize, got %v", err)
	}
}

func TestUploadService_SanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "/uploads", 0)

	url, err := svc.Store(context.Background(), "../../etc/pass wd?.png", int64(len(tinyPNG)), bytes.NewReader(tinyPNG))
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	name := filepath.Base(url)
	if strings.Contains(name, "..") || strings.ContainsAny(name, "/ ?") {
		t.Fatalf("unsafe characters survived sanitization: %q", name)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Fatalf("expected file inside upload dir: %v", err)
	}
}

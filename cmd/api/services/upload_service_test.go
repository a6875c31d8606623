package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"

	"poros-portal/images"
)

type fakeObjectStore struct {
	mu      sync.Mutex
	puts    map[string]string // key -> content type
	failKey string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{puts: map[string]string{}}
}

func (f *fakeObjectStore) Put(_ context.Context, key string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKey != "" && strings.HasPrefix(key, f.failKey) {
		return errors.New("storage unavailable")
	}
	if len(data) == 0 {
		return errors.New("empty object")
	}
	f.puts[key] = contentType
	return nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x), A: 255})
	}
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		t.Fatalf("encode fixture png: %v", err)
	}
	return b.Bytes()
}

func TestUploadImageWritesBothDerivatives(t *testing.T) {
	store := newFakeObjectStore()
	svc := NewUploadService(store, "https://media.example.com/bucket/")

	out, err := svc.UploadImage(context.Background(), pngBytes(t, 64, 48), "My Cover Photo.png", "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success {
		t.Fatalf("expected success")
	}
	if len(store.puts) != 2 {
		t.Fatalf("expected 2 stored objects, got %d", len(store.puts))
	}
	for key, ct := range store.puts {
		if ct != images.ContentType {
			t.Fatalf("expected %s content type for %s, got %s", images.ContentType, key, ct)
		}
	}
	// trailing slash on the base URL must not double up
	if out.CoverURL != "https://media.example.com/bucket/"+out.CoverKey {
		t.Fatalf("unexpected cover URL %q for key %q", out.CoverURL, out.CoverKey)
	}
	if out.ThumbnailURL != "https://media.example.com/bucket/"+out.ThumbKey {
		t.Fatalf("unexpected thumbnail URL %q for key %q", out.ThumbnailURL, out.ThumbKey)
	}
	if !strings.HasPrefix(out.CoverKey, "covers/my-cover-photo-") {
		t.Fatalf("unexpected cover key %q", out.CoverKey)
	}
	if !strings.HasPrefix(out.ThumbKey, "thumbs/my-cover-photo-") {
		t.Fatalf("unexpected thumb key %q", out.ThumbKey)
	}
}

func TestUploadImageRejectsUnsupportedType(t *testing.T) {
	svc := NewUploadService(newFakeObjectStore(), "https://media.example.com")

	_, err := svc.UploadImage(context.Background(), []byte("%PDF-1.4"), "doc.pdf", "application/pdf")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUploadImageRejectsOversized(t *testing.T) {
	svc := NewUploadService(newFakeObjectStore(), "https://media.example.com")

	big := make([]byte, images.MaxUploadBytes+1)
	_, err := svc.UploadImage(context.Background(), big, "big.jpg", "image/jpeg")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUploadImageRejectsUndecodableBytes(t *testing.T) {
	store := newFakeObjectStore()
	svc := NewUploadService(store, "https://media.example.com")

	// declared type passes validation but the bytes are not an image
	_, err := svc.UploadImage(context.Background(), []byte("not an image"), "fake.png", "image/png")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(store.puts) != 0 {
		t.Fatalf("nothing should be stored for a bad upload")
	}
}

func TestUploadImageFailsWhenEitherWriteFails(t *testing.T) {
	store := newFakeObjectStore()
	store.failKey = "thumbs/"
	svc := NewUploadService(store, "https://media.example.com")

	_, err := svc.UploadImage(context.Background(), pngBytes(t, 32, 32), "pic.png", "image/png")
	if err == nil {
		t.Fatalf("expected error when one derivative write fails")
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Fatalf("storage failure must not map to invalid input: %v", err)
	}
}

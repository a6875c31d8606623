package images

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"regexp"
	"strings"
	"testing"
)

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w && x < h; x++ {
		img.Set(x, x, color.RGBA{G: 200, A: 255})
	}
	var b bytes.Buffer
	if err := jpeg.Encode(&b, img, nil); err != nil {
		t.Fatalf("encode fixture jpeg: %v", err)
	}
	return b.Bytes()
}

func decodeSize(t *testing.T, buf []byte) (int, int) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("decode derivative: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("expected jpeg derivative, got %s", format)
	}
	return cfg.Width, cfg.Height
}

func TestValidate(t *testing.T) {
	if err := Validate("image/png", 1024); err != nil {
		t.Fatalf("png should be allowed: %v", err)
	}
	if err := Validate("application/pdf", 1024); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if err := Validate("image/jpeg", MaxUploadBytes+1); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if err := Validate("image/jpeg", MaxUploadBytes); err != nil {
		t.Fatalf("exactly max size should pass: %v", err)
	}
}

func TestDeriveProducesFixedDimensions(t *testing.T) {
	src := jpegBytes(t, 500, 300)

	d, err := Derive(src, "landscape.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w, h := decodeSize(t, d.Cover); w != CoverWidth || h != CoverHeight {
		t.Fatalf("cover is %dx%d, want %dx%d", w, h, CoverWidth, CoverHeight)
	}
	if w, h := decodeSize(t, d.Thumbnail); w != ThumbWidth || h != ThumbHeight {
		t.Fatalf("thumbnail is %dx%d, want %dx%d", w, h, ThumbWidth, ThumbHeight)
	}
}

func TestDerivePortraitSourceStillFills(t *testing.T) {
	src := jpegBytes(t, 300, 900)

	d, err := Derive(src, "portrait.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w, h := decodeSize(t, d.Cover); w != CoverWidth || h != CoverHeight {
		t.Fatalf("cover is %dx%d, want %dx%d", w, h, CoverWidth, CoverHeight)
	}
}

func TestDeriveRejectsGarbage(t *testing.T) {
	if _, err := Derive([]byte("definitely not an image"), "x.jpg"); err == nil {
		t.Fatalf("expected decode error")
	}
}

var keyPattern = regexp.MustCompile(`^(covers|thumbs)/[a-z0-9-]+-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.jpg$`)

func TestDeriveKeys(t *testing.T) {
	coverKey, thumbKey := DeriveKeys("My Cover Photo.png")

	if !strings.HasPrefix(coverKey, "covers/my-cover-photo-") {
		t.Fatalf("unexpected cover key %q", coverKey)
	}
	if !strings.HasPrefix(thumbKey, "thumbs/my-cover-photo-") {
		t.Fatalf("unexpected thumb key %q", thumbKey)
	}
	if !keyPattern.MatchString(coverKey) || !keyPattern.MatchString(thumbKey) {
		t.Fatalf("keys do not match the expected shape: %q / %q", coverKey, thumbKey)
	}

	// same filename twice never collides
	coverKey2, _ := DeriveKeys("My Cover Photo.png")
	if coverKey == coverKey2 {
		t.Fatalf("expected unique keys for repeated filenames")
	}
}

func TestSanitizeBaseName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Cover Photo.png", "my-cover-photo"},
		{"UPPER_case file.JPG", "upper-case-file"},
		{"---weird---.webp", "weird"},
		{"фото.jpg", "image"},
		{"...", "image"},
		{strings.Repeat("a", 80) + ".png", strings.Repeat("a", 50)},
	}
	for _, c := range cases {
		if got := SanitizeBaseName(c.in); got != c.want {
			t.Fatalf("SanitizeBaseName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

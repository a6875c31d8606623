// Package images turns one uploaded image into the two derivatives the
// portal stores for every article cover: a large cover crop and a small
// thumbnail crop, both re-encoded as JPEG.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	// imaging registers jpeg/png/gif decoders; webp decode needs x/image.
	_ "golang.org/x/image/webp"
)

const (
	CoverWidth   = 1200
	CoverHeight  = 630
	CoverQuality = 80

	ThumbWidth   = 400
	ThumbHeight  = 210
	ThumbQuality = 75

	// MaxUploadBytes is the hard ceiling on raw upload size.
	MaxUploadBytes = 10 << 20

	// ContentType of every encoded derivative.
	ContentType = "image/jpeg"

	keyExt         = ".jpg"
	maxBaseNameLen = 50
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var (
	ErrUnsupportedType = errors.New("invalid file type, allowed: JPG, PNG, WebP, GIF")
	ErrTooLarge        = errors.New("file too large, max 10MB")
)

// Validate checks the declared content type and size. It runs before any
// decoding so oversized or mistyped uploads are rejected cheaply.
func Validate(contentType string, size int64) error {
	if !allowedTypes[contentType] {
		return ErrUnsupportedType
	}
	if size > MaxUploadBytes {
		return ErrTooLarge
	}
	return nil
}

// Derivatives is one source image rendered into both display contexts.
type Derivatives struct {
	Cover     []byte
	Thumbnail []byte
	CoverKey  string
	ThumbKey  string
}

// Derive decodes the source buffer and produces both derivatives. Each
// variant is cropped to fill its fixed aspect (centered) and re-encoded as
// JPEG at its own quality. Both are rendered from the same decoded source,
// never from each other.
func Derive(buf []byte, filename string) (*Derivatives, error) {
	src, err := imaging.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	cover, err := encode(imaging.Fill(src, CoverWidth, CoverHeight, imaging.Center, imaging.Lanczos), CoverQuality)
	if err != nil {
		return nil, fmt.Errorf("encode cover: %w", err)
	}
	thumb, err := encode(imaging.Fill(src, ThumbWidth, ThumbHeight, imaging.Center, imaging.Lanczos), ThumbQuality)
	if err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	coverKey, thumbKey := DeriveKeys(filename)
	return &Derivatives{
		Cover:     cover,
		Thumbnail: thumb,
		CoverKey:  coverKey,
		ThumbKey:  thumbKey,
	}, nil
}

func encode(img image.Image, quality int) ([]byte, error) {
	var b bytes.Buffer
	if err := imaging.Encode(&b, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// DeriveKeys builds the storage keys for a cover/thumbnail pair. The
// sanitized filename keeps keys readable; a random UUID disambiguates, so
// concurrent uploads of identically named files never collide.
func DeriveKeys(filename string) (coverKey, thumbKey string) {
	base := SanitizeBaseName(filename)
	id := uuid.NewString()
	coverKey = "covers/" + base + "-" + id + keyExt
	thumbKey = "thumbs/" + base + "-" + id + keyExt
	return coverKey, thumbKey
}

// SanitizeBaseName reduces an original filename (extension stripped) to a
// lowercase alphanumeric slug, runs of other characters collapsed to single
// hyphens, capped at 50 chars.
func SanitizeBaseName(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.ToLower(name)

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	out := strings.Trim(b.String(), "-")
	if len(out) > maxBaseNameLen {
		out = strings.Trim(out[:maxBaseNameLen], "-")
	}
	if out == "" {
		out = "image"
	}
	return out
}

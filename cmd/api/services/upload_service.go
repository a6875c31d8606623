package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"poros-portal/cmd/api/dto"
	"poros-portal/images"
	"poros-portal/storage"
)

// UploadService runs the image derivative pipeline: validate, derive the
// cover/thumbnail pair, write both objects, return their public URLs.
type UploadService struct {
	store         storage.ObjectStore
	publicBaseURL string
}

func NewUploadService(store storage.ObjectStore, publicBaseURL string) *UploadService {
	return &UploadService{
		store:         store,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// UploadImage validates and processes one uploaded image. Both derivative
// writes run concurrently and the call fails if either fails; a succeeded
// sibling write is not rolled back, which can leave an orphaned object
// behind (keys are never reused, so nothing else is affected).
func (s *UploadService) UploadImage(ctx context.Context, data []byte, filename, contentType string) (*dto.UploadResultDTO, error) {
	if err := images.Validate(contentType, int64(len(data))); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}

	d, err := images.Derive(data, filename)
	if err != nil {
		// the declared content type passed validation but the bytes
		// don't decode, so the upload itself is bad
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.store.Put(gctx, d.CoverKey, d.Cover, images.ContentType)
	})
	g.Go(func() error {
		return s.store.Put(gctx, d.ThumbKey, d.Thumbnail, images.ContentType)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("store derivatives: %w", err)
	}

	return &dto.UploadResultDTO{
		Success:      true,
		CoverURL:     s.publicBaseURL + "/" + d.CoverKey,
		ThumbnailURL: s.publicBaseURL + "/" + d.ThumbKey,
		CoverKey:     d.CoverKey,
		ThumbKey:     d.ThumbKey,
	}, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"poros-portal/cmd/api/dto"
	"poros-portal/repositories"
)

// ArticleService is the admin-facing article surface: unrestricted listing
// (any status), stats, and the mutations that affect what subsequent
// listings see.
type ArticleService struct {
	articles   ArticleStore
	categories CategoryStore
}

func NewArticleService(articles ArticleStore, categories CategoryStore) *ArticleService {
	return &ArticleService{articles: articles, categories: categories}
}

// notFoundOr converts the store's no-document signal into the service
// taxonomy; anything else propagates as a dependency failure.
func notFoundOr(err error, what string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return err
}

// parseID maps malformed ids onto not-found: an id that cannot exist in the
// store identifies nothing.
func parseID(hex, what string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return id, nil
}

type ListArticlesInput struct {
	Page   int
	Limit  int
	Search string
	// Filter is the cover-presence filter: all / with-cover / without-cover.
	Filter string
}

// List returns one admin page of article summaries. Admin search matches
// title and excerpt only (no content), and no status restriction applies.
func (s *ArticleService) List(ctx context.Context, in ListArticlesInput) (dto.Pagination[dto.ArticleSummaryDTO], error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 20
	}

	items, total, err := s.articles.List(ctx, repositories.ListArticlesOptions{
		Page:          in.Page,
		Limit:         in.Limit,
		Search:        in.Search,
		CoverPresence: in.Filter,
	})
	if err != nil {
		return dto.Pagination[dto.ArticleSummaryDTO]{}, err
	}

	refs, err := categoryRefs(ctx, s.categories)
	if err != nil {
		return dto.Pagination[dto.ArticleSummaryDTO]{}, err
	}
	return dto.NewPagination(mapArticleSummaries(items, refs), in.Page, in.Limit, total), nil
}

// GetByID loads a full article for the admin detail view.
func (s *ArticleService) GetByID(ctx context.Context, idHex string) (*dto.ArticleDTO, error) {
	id, err := parseID(idHex, "article")
	if err != nil {
		return nil, err
	}
	a, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "article")
	}
	refs, err := categoryRefs(ctx, s.categories)
	if err != nil {
		return nil, err
	}
	out := mapArticle(*a, refs)
	return &out, nil
}

// Stats summarizes cover coverage across all articles.
func (s *ArticleService) Stats(ctx context.Context) (*dto.ArticleStatsDTO, error) {
	total, err := s.articles.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	withCover, err := s.articles.CountWithCover(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.ArticleStatsDTO{
		Total:        total,
		WithCover:    withCover,
		WithoutCover: total - withCover,
	}
	if total > 0 {
		stats.CoverPercentage = int(float64(withCover)/float64(total)*100 + 0.5)
	}
	return stats, nil
}

// UpdateCategory reassigns an article to another category. The target
// category must exist.
func (s *ArticleService) UpdateCategory(ctx context.Context, idHex, categoryIDHex string) (*dto.ArticleDTO, error) {
	if categoryIDHex == "" {
		return nil, fmt.Errorf("category_id is required: %w", ErrInvalidInput)
	}
	id, err := parseID(idHex, "article")
	if err != nil {
		return nil, err
	}
	catID, err := parseID(categoryIDHex, "category")
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.FindByID(ctx, catID); err != nil {
		return nil, notFoundOr(err, "category")
	}

	a, err := s.articles.UpdateFields(ctx, id, map[string]interface{}{"category_id": catID})
	if err != nil {
		return nil, notFoundOr(err, "article")
	}
	refs, err := categoryRefs(ctx, s.categories)
	if err != nil {
		return nil, err
	}
	out := mapArticle(*a, refs)
	return &out, nil
}

// UpdateCover sets the cover/thumbnail URL pair on an article. The caller
// owns the handoff from the upload pipeline; older derivative objects are
// not deleted here.
func (s *ArticleService) UpdateCover(ctx context.Context, idHex, coverURL, thumbnailURL string) (*dto.ArticleDTO, error) {
	id, err := parseID(idHex, "article")
	if err != nil {
		return nil, err
	}
	a, err := s.articles.UpdateFields(ctx, id, map[string]interface{}{
		"cover_image_url": coverURL,
		"thumbnail_url":   thumbnailURL,
	})
	if err != nil {
		return nil, notFoundOr(err, "article")
	}
	refs, err := categoryRefs(ctx, s.categories)
	if err != nil {
		return nil, err
	}
	out := mapArticle(*a, refs)
	return &out, nil
}

// ClearCover removes the cover/thumbnail URL pair.
func (s *ArticleService) ClearCover(ctx context.Context, idHex string) (*dto.ArticleDTO, error) {
	return s.UpdateCover(ctx, idHex, "", "")
}

// SetFeatured toggles the single featured slot. Setting it true clears the
// flag everywhere else first, so at most one article is featured.
func (s *ArticleService) SetFeatured(ctx context.Context, idHex string, isFeatured bool) (*dto.ArticleDTO, error) {
	id, err := parseID(idHex, "article")
	if err != nil {
		return nil, err
	}
	a, err := s.articles.SetFeatured(ctx, id, isFeatured)
	if err != nil {
		return nil, notFoundOr(err, "article")
	}
	refs, err := categoryRefs(ctx, s.categories)
	if err != nil {
		return nil, err
	}
	out := mapArticle(*a, refs)
	return &out, nil
}

// Delete removes an article permanently.
func (s *ArticleService) Delete(ctx context.Context, idHex string) error {
	id, err := parseID(idHex, "article")
	if err != nil {
		return err
	}
	if err := s.articles.Delete(ctx, id); err != nil {
		return notFoundOr(err, "article")
	}
	return nil
}

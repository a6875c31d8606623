package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"poros-portal/cmd/api/dto"
	"poros-portal/models"
	"poros-portal/repositories"
)

// PublicService is the reader-facing surface. Every listing it produces is
// implicitly restricted to PUBLISHED articles.
type PublicService struct {
	articles   ArticleStore
	categories CategoryStore
}

func NewPublicService(articles ArticleStore, categories CategoryStore) *PublicService {
	return &PublicService{articles: articles, categories: categories}
}

const (
	publicDefaultLimit = 12
	relatedTake        = 4
	featuredGridTake   = 6
	heroSideTake       = 2
)

type PublicListInput struct {
	Page         int
	Limit        int
	CategorySlug string
	Search       string
}

// List returns one public page of published article summaries, optionally
// restricted to a category slug and/or a search term. An unknown category
// slug yields an empty page, not an error.
func (s *PublicService) List(ctx context.Context, in PublicListInput) (dto.Pagination[dto.ArticleSummaryDTO], error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = publicDefaultLimit
	}

	opts := repositories.ListArticlesOptions{
		Page:          in.Page,
		Limit:         in.Limit,
		Status:        models.StatusPublished,
		Search:        in.Search,
		SearchContent: true,
	}
	if in.CategorySlug != "" {
		cat, err := s.categories.FindBySlug(ctx, in.CategorySlug)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// unknown slug matches nothing
				return dto.NewPagination([]dto.ArticleSummaryDTO{}, in.Page, in.Limit, 0), nil
			}
			return dto.Pagination[dto.ArticleSummaryDTO]{}, err
		}
		opts.CategoryID = &cat.ID
	}

	return s.page(ctx, opts)
}

// page runs the listing engine and wraps the result in the pagination
// envelope with category snippets attached.
func (s *PublicService) page(ctx context.Context, opts repositories.ListArticlesOptions) (dto.Pagination[dto.ArticleSummaryDTO], error) {
	items, total, err := s.articles.List(ctx, opts)
	if err != nil {
		return dto.Pagination[dto.ArticleSummaryDTO]{}, err
	}
	refs, err := categoryRefs(ctx, s.categories)
	if err != nil {
		return dto.Pagination[dto.ArticleSummaryDTO]{}, err
	}
	return dto.NewPagination(mapArticleSummaries(items, refs), opts.Page, opts.Limit, total), nil
}

// GetBySlug loads a full article for public display. When the article is
// PUBLISHED and its slug is not in the client's already-viewed list, the
// view counter is incremented atomically and the returned article carries
// the incremented value; counted reports whether that happened so the
// handler can extend the client's view-dedup cookie.
func (s *PublicService) GetBySlug(ctx context.Context, slug string, viewedSlugs []string) (article *dto.ArticleDTO, counted bool, err error) {
	a, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, false, notFoundOr(err, "article")
	}

	if a.Status == models.StatusPublished && !containsSlug(viewedSlugs, slug) {
		a, err = s.articles.IncrementViewCount(ctx, a.ID)
		if err != nil {
			return nil, false, notFoundOr(err, "article")
		}
		counted = true
	}

	refs, err := categoryRefs(ctx, s.categories)
	if err != nil {
		return nil, false, err
	}
	out := mapArticle(*a, refs)
	return &out, counted, nil
}

func containsSlug(slugs []string, slug string) bool {
	for _, s := range slugs {
		if s == slug {
			return true
		}
	}
	return false
}

// Related returns up to 4 published articles from the same category,
// excluding the article itself, in the standard listing order.
func (s *PublicService) Related(ctx context.Context, slug string) ([]dto.ArticleSummaryDTO, error) {
	a, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "article")
	}

	items, _, err := s.articles.List(ctx, repositories.ListArticlesOptions{
		Page:       1,
		Limit:      relatedTake,
		Status:     models.StatusPublished,
		CategoryID: &a.CategoryID,
		ExcludeIDs: []primitive.ObjectID{a.ID},
	})
	if err != nil {
		return nil, err
	}
	refs, err := categoryRefs(ctx, s.categories)
	if err != nil {
		return nil, err
	}
	return mapArticleSummaries(items, refs), nil
}

// Search runs a public full-text-ish search across title, excerpt and
// content. A blank query degrades to an empty result set rather than an
// error.
func (s *PublicService) Search(ctx context.Context, query string, page, limit int) (dto.SearchResultDTO, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = publicDefaultLimit
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return dto.SearchResultDTO{
			Pagination: dto.NewPagination([]dto.ArticleSummaryDTO{}, page, limit, 0),
			Query:      "",
		}, nil
	}

	pageResult, err := s.page(ctx, repositories.ListArticlesOptions{
		Page:          page,
		Limit:         limit,
		Status:        models.StatusPublished,
		Search:        q,
		SearchContent: true,
	})
	if err != nil {
		return dto.SearchResultDTO{}, err
	}
	return dto.SearchResultDTO{Pagination: pageResult, Query: q}, nil
}

// heroArticle picks the single featured published article, falling back to
// the most recent published one when nothing is flagged.
func (s *PublicService) heroArticle(ctx context.Context) (*models.Article, error) {
	items, _, err := s.articles.List(ctx, repositories.ListArticlesOptions{
		Page:         1,
		Limit:        1,
		Status:       models.StatusPublished,
		FeaturedOnly: true,
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		items, _, err = s.articles.List(ctx, repositories.ListArticlesOptions{
			Page:   1,
			Limit:  1,
			Status: models.StatusPublished,
		})
		if err != nil {
			return nil, err
		}
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// latestExcluding returns the take most recent published articles,
// excluding the given ids. The exclusion is part of the query filter, so
// it never shifts page boundaries after the fact.
func (s *PublicService) latestExcluding(ctx context.Context, take int, exclude []primitive.ObjectID) ([]models.Article, error) {
	items, _, err := s.articles.List(ctx, repositories.ListArticlesOptions{
		Page:       1,
		Limit:      take,
		Status:     models.StatusPublished,
		ExcludeIDs: exclude,
	})
	return items, err
}

// Featured builds the homepage hero plus grid set.
func (s *PublicService) Featured(ctx context.Context) (*dto.FeaturedDTO, error) {
	hero, err := s.heroArticle(ctx)
	if err != nil {
		return nil, err
	}

	var exclude []primitive.ObjectID
	if hero != nil {
		exclude = append(exclude, hero.ID)
	}
	grid, err := s.latestExcluding(ctx, featuredGridTake, exclude)
	if err != nil {
		return nil, err
	}

	refs, err := categoryRefs(ctx, s.categories)
	if err != nil {
		return nil, err
	}
	out := &dto.FeaturedDTO{Grid: mapArticleSummaries(grid, refs)}
	if hero != nil {
		h := mapArticleSummary(*hero, refs)
		out.Hero = &h
	}
	return out, nil
}

// Hero builds the hero section: the featured article plus 2 side articles.
func (s *PublicService) Hero(ctx context.Context) (*dto.HeroDTO, error) {
	hero, err := s.heroArticle(ctx)
	if err != nil {
		return nil, err
	}

	var exclude []primitive.ObjectID
	if hero != nil {
		exclude = append(exclude, hero.ID)
	}
	side, err := s.latestExcluding(ctx, heroSideTake, exclude)
	if err != nil {
		return nil, err
	}

	refs, err := categoryRefs(ctx, s.categories)
	if err != nil {
		return nil, err
	}
	out := &dto.HeroDTO{SideArticles: mapArticleSummaries(side, refs)}
	if hero != nil {
		h := mapArticleSummary(*hero, refs)
		out.Featured = &h
	}
	return out, nil
}

// Categories lists every category with its published article count.
func (s *PublicService) Categories(ctx context.Context) ([]dto.CategoryDTO, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(cats))
	for _, c := range cats {
		count, err := s.articles.CountByCategory(ctx, c.ID, models.StatusPublished)
		if err != nil {
			return nil, err
		}
		out = append(out, mapCategory(c, count))
	}
	return out, nil
}

// CategoryArticles returns one page of published articles for a category,
// omitting excludeIDs (articles already rendered elsewhere on the same
// page). Exclusions apply before pagination and counting.
func (s *PublicService) CategoryArticles(ctx context.Context, slug string, page, limit int, excludeIDs []string) (dto.Pagination[dto.ArticleSummaryDTO], error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = publicDefaultLimit
	}

	cat, err := s.categories.FindBySlug(ctx, slug)
	if err != nil {
		return dto.Pagination[dto.ArticleSummaryDTO]{}, notFoundOr(err, "category")
	}

	// malformed ids in the exclusion list are ignored
	var exclude []primitive.ObjectID
	for _, raw := range excludeIDs {
		if id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw)); err == nil {
			exclude = append(exclude, id)
		}
	}

	return s.page(ctx, repositories.ListArticlesOptions{
		Page:       page,
		Limit:      limit,
		Status:     models.StatusPublished,
		CategoryID: &cat.ID,
		ExcludeIDs: exclude,
	})
}

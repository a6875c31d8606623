package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"poros-portal/cmd/api/dto"
	"poros-portal/models"
)

// CategoryService is the admin category CRUD surface. Name and derived
// slug are both unique; duplicates are rejected before any write.
type CategoryService struct {
	categories CategoryStore
	articles   ArticleStore
}

func NewCategoryService(categories CategoryStore, articles ArticleStore) *CategoryService {
	return &CategoryService{categories: categories, articles: articles}
}

var (
	nonSlugChars = regexp.MustCompile(`[^\w\s-]`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL-safe slug from a category name: lowercase, trim,
// strip everything outside word chars / whitespace / hyphens, collapse
// whitespace runs into single hyphens.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = spaceRuns.ReplaceAllString(s, "-")
	return s
}

// List returns all categories with their article counts (all statuses).
func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryDTO, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(cats))
	for _, c := range cats {
		count, err := s.articles.CountByCategory(ctx, c.ID, "")
		if err != nil {
			return nil, err
		}
		out = append(out, mapCategory(c, count))
	}
	return out, nil
}

// Get returns a single category with its article count.
func (s *CategoryService) Get(ctx context.Context, idHex string) (*dto.CategoryDTO, error) {
	id, err := parseID(idHex, "category")
	if err != nil {
		return nil, err
	}
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "category")
	}
	count, err := s.articles.CountByCategory(ctx, c.ID, "")
	if err != nil {
		return nil, err
	}
	out := mapCategory(*c, count)
	return &out, nil
}

// validateName trims and checks the required name, returning it with its
// derived slug.
func validateName(name string) (trimmed, slug string, err error) {
	trimmed = strings.TrimSpace(name)
	if trimmed == "" {
		return "", "", fmt.Errorf("category name is required: %w", ErrInvalidInput)
	}
	return trimmed, Slugify(trimmed), nil
}

// Create adds a category after checking that neither the name nor the
// derived slug collides with an existing one. Case or spacing variants of
// an existing name collide on the normalized slug and are rejected too.
func (s *CategoryService) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryDTO, error) {
	name, slug, err := validateName(in.Name)
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.FindByNameOrSlug(ctx, name, slug, nil); err == nil {
		return nil, fmt.Errorf("category with this name %w", ErrConflict)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	c, err := s.categories.Insert(ctx, &models.Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		return nil, err
	}
	out := mapCategory(*c, 0)
	return &out, nil
}

// Update renames a category, re-deriving the slug and re-checking
// uniqueness against every other category.
func (s *CategoryService) Update(ctx context.Context, idHex string, in dto.CategoryRequest) (*dto.CategoryDTO, error) {
	id, err := parseID(idHex, "category")
	if err != nil {
		return nil, err
	}
	name, slug, err := validateName(in.Name)
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.FindByNameOrSlug(ctx, name, slug, &id); err == nil {
		return nil, fmt.Errorf("category with this name %w", ErrConflict)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	c, err := s.categories.Update(ctx, id, name, slug, strings.TrimSpace(in.Description))
	if err != nil {
		return nil, notFoundOr(err, "category")
	}
	count, err := s.articles.CountByCategory(ctx, c.ID, "")
	if err != nil {
		return nil, err
	}
	out := mapCategory(*c, count)
	return &out, nil
}

// Delete removes a category. When articles still reference it the delete
// is rejected unless force is set, in which case every referencing article
// is first reassigned to the lazily created Uncategorized sentinel; the
// result reports how many were moved.
func (s *CategoryService) Delete(ctx context.Context, idHex string, force bool) (*dto.DeleteCategoryResultDTO, error) {
	id, err := parseID(idHex, "category")
	if err != nil {
		return nil, err
	}
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return nil, notFoundOr(err, "category")
	}

	articleCount, err := s.articles.CountByCategory(ctx, id, "")
	if err != nil {
		return nil, err
	}

	if articleCount > 0 && !force {
		return nil, fmt.Errorf("cannot delete category: %d article(s) still use it: %w", articleCount, ErrInvalidInput)
	}

	var moved int64
	if force && articleCount > 0 {
		sentinel, err := s.uncategorized(ctx)
		if err != nil {
			return nil, err
		}
		if sentinel.ID == id {
			return nil, fmt.Errorf("the %s category cannot be force-deleted: %w", models.UncategorizedName, ErrInvalidInput)
		}
		moved, err = s.articles.ReassignCategory(ctx, id, sentinel.ID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return nil, notFoundOr(err, "category")
	}
	return &dto.DeleteCategoryResultDTO{Success: true, ArticlesMoved: moved}, nil
}

// uncategorized returns the sentinel category, creating it on first use.
func (s *CategoryService) uncategorized(ctx context.Context) (*models.Category, error) {
	return s.categories.UpsertBySlug(ctx, &models.Category{
		Name:        models.UncategorizedName,
		Slug:        models.UncategorizedSlug,
		Description: "Articles without a category",
	})
}

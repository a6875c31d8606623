package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"poros-portal/models"
	"poros-portal/repositories"
)

// In-memory stores backing the service tests. fakeArticleStore reimplements
// the listing contract (filter, sort, count before slicing) over a slice so
// the ordering and exclusion behavior can be asserted without a database.

type fakeArticleStore struct {
	articles []models.Article
}

func (f *fakeArticleStore) find(id primitive.ObjectID) int {
	for i := range f.articles {
		if f.articles[i].ID == id {
			return i
		}
	}
	return -1
}

func matchesSearch(a models.Article, term string, content bool) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Excerpt), term) {
		return true
	}
	return content && strings.Contains(strings.ToLower(a.Content), term)
}

func (f *fakeArticleStore) List(_ context.Context, opt repositories.ListArticlesOptions) ([]models.Article, int64, error) {
	excluded := map[primitive.ObjectID]bool{}
	for _, id := range opt.ExcludeIDs {
		excluded[id] = true
	}

	var matched []models.Article
	for _, a := range f.articles {
		if opt.Status != "" && a.Status != opt.Status {
			continue
		}
		if opt.CategoryID != nil && a.CategoryID != *opt.CategoryID {
			continue
		}
		if opt.FeaturedOnly && !a.IsFeatured {
			continue
		}
		if excluded[a.ID] {
			continue
		}
		if !matchesSearch(a, opt.Search, opt.SearchContent) {
			continue
		}
		switch opt.CoverPresence {
		case repositories.CoverWith:
			if a.CoverImageURL == "" {
				continue
			}
		case repositories.CoverWithout:
			if a.CoverImageURL != "" {
				continue
			}
		}
		matched = append(matched, a)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].PublishedAt.Equal(matched[j].PublishedAt) {
			return matched[i].PublishedAt.After(matched[j].PublishedAt)
		}
		return matched[i].ID.Hex() > matched[j].ID.Hex()
	})

	total := int64(len(matched))
	page, limit := opt.Page, opt.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 12
	}
	start := (page - 1) * limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeArticleStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Article, error) {
	i := f.find(id)
	if i < 0 {
		return nil, mongo.ErrNoDocuments
	}
	a := f.articles[i]
	return &a, nil
}

func (f *fakeArticleStore) FindBySlug(_ context.Context, slug string) (*models.Article, error) {
	for i := range f.articles {
		if f.articles[i].Slug == slug {
			a := f.articles[i]
			return &a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeArticleStore) IncrementViewCount(_ context.Context, id primitive.ObjectID) (*models.Article, error) {
	i := f.find(id)
	if i < 0 {
		return nil, mongo.ErrNoDocuments
	}
	f.articles[i].ViewCount++
	a := f.articles[i]
	return &a, nil
}

func (f *fakeArticleStore) UpdateFields(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Article, error) {
	i := f.find(id)
	if i < 0 {
		return nil, mongo.ErrNoDocuments
	}
	for k, v := range updates {
		switch k {
		case "category_id":
			f.articles[i].CategoryID = v.(primitive.ObjectID)
		case "cover_image_url":
			f.articles[i].CoverImageURL = v.(string)
		case "thumbnail_url":
			f.articles[i].ThumbnailURL = v.(string)
		case "is_featured":
			f.articles[i].IsFeatured = v.(bool)
		}
	}
	f.articles[i].UpdatedAt = time.Now()
	a := f.articles[i]
	return &a, nil
}

func (f *fakeArticleStore) SetFeatured(ctx context.Context, id primitive.ObjectID, featured bool) (*models.Article, error) {
	if featured {
		for i := range f.articles {
			f.articles[i].IsFeatured = false
		}
	}
	return f.UpdateFields(ctx, id, map[string]interface{}{"is_featured": featured})
}

func (f *fakeArticleStore) Delete(_ context.Context, id primitive.ObjectID) error {
	i := f.find(id)
	if i < 0 {
		return mongo.ErrNoDocuments
	}
	f.articles = append(f.articles[:i], f.articles[i+1:]...)
	return nil
}

func (f *fakeArticleStore) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.articles)), nil
}

func (f *fakeArticleStore) CountWithCover(_ context.Context) (int64, error) {
	var n int64
	for _, a := range f.articles {
		if a.CoverImageURL != "" {
			n++
		}
	}
	return n, nil
}

func (f *fakeArticleStore) CountByCategory(_ context.Context, categoryID primitive.ObjectID, status models.ArticleStatus) (int64, error) {
	var n int64
	for _, a := range f.articles {
		if a.CategoryID != categoryID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeArticleStore) ReassignCategory(_ context.Context, fromID, toID primitive.ObjectID) (int64, error) {
	var n int64
	for i := range f.articles {
		if f.articles[i].CategoryID == fromID {
			f.articles[i].CategoryID = toID
			n++
		}
	}
	return n, nil
}

type fakeCategoryStore struct {
	categories []models.Category
}

func (f *fakeCategoryStore) find(id primitive.ObjectID) int {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeCategoryStore) List(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, len(f.categories))
	copy(out, f.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	i := f.find(id)
	if i < 0 {
		return nil, mongo.ErrNoDocuments
	}
	c := f.categories[i]
	return &c, nil
}

func (f *fakeCategoryStore) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].Slug == slug {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCategoryStore) FindByNameOrSlug(_ context.Context, name, slug string, excludeID *primitive.ObjectID) (*models.Category, error) {
	for i := range f.categories {
		c := f.categories[i]
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.Name == name || c.Slug == slug {
			return &c, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCategoryStore) Insert(_ context.Context, c *models.Category) (*models.Category, error) {
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.categories = append(f.categories, *c)
	return c, nil
}

func (f *fakeCategoryStore) Update(_ context.Context, id primitive.ObjectID, name, slug, description string) (*models.Category, error) {
	i := f.find(id)
	if i < 0 {
		return nil, mongo.ErrNoDocuments
	}
	f.categories[i].Name = name
	f.categories[i].Slug = slug
	f.categories[i].Description = description
	f.categories[i].UpdatedAt = time.Now()
	c := f.categories[i]
	return &c, nil
}

func (f *fakeCategoryStore) UpsertBySlug(ctx context.Context, c *models.Category) (*models.Category, error) {
	if existing, err := f.FindBySlug(ctx, c.Slug); err == nil {
		return existing, nil
	}
	return f.Insert(ctx, c)
}

func (f *fakeCategoryStore) Delete(_ context.Context, id primitive.ObjectID) error {
	i := f.find(id)
	if i < 0 {
		return mongo.ErrNoDocuments
	}
	f.categories = append(f.categories[:i], f.categories[i+1:]...)
	return nil
}

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

// newCategory and newArticle build fixture documents with fresh ids.

func newCategory(name, slug string) models.Category {
	return models.Category{
		ID:   primitive.NewObjectID(),
		Name: name,
		Slug: slug,
	}
}

func newArticle(title, slug string, status models.ArticleStatus, categoryID primitive.ObjectID, publishedAt time.Time) models.Article {
	return models.Article{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Slug:        slug,
		Status:      status,
		CategoryID:  categoryID,
		PublishedAt: publishedAt,
	}
}

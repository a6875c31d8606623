package repositories

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"poros-portal/models"
)

type ArticleRepository struct {
	col *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: db.Collection("articles")}
}

// CoverPresence filters articles on whether a cover image is set.
const (
	CoverAll     = "all"
	CoverWith    = "with-cover"
	CoverWithout = "without-cover"
)

type ListArticlesOptions struct {
	Page  int
	Limit int

	// Search matches case-insensitively against title and excerpt;
	// SearchContent additionally matches the content field.
	Search        string
	SearchContent bool

	Status        models.ArticleStatus // empty = any status
	CategoryID    *primitive.ObjectID
	ExcludeIDs    []primitive.ObjectID
	CoverPresence string // CoverAll / CoverWith / CoverWithout; empty = all
	FeaturedOnly  bool
}

// buildFilter translates ListArticlesOptions into a single filter document.
// Exclusions and search terms are part of the filter itself, so both the
// count and the page fetch see the same restricted set.
func buildFilter(opt ListArticlesOptions) bson.M {
	filter := bson.M{}

	if opt.Status != "" {
		filter["status"] = opt.Status
	}
	if opt.CategoryID != nil {
		filter["category_id"] = *opt.CategoryID
	}
	if opt.FeaturedOnly {
		filter["is_featured"] = true
	}

	if s := strings.TrimSpace(opt.Search); s != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
		or := []bson.M{
			{"title": re},
			{"excerpt": re},
		}
		if opt.SearchContent {
			or = append(or, bson.M{"content": re})
		}
		filter["$or"] = or
	}

	if len(opt.ExcludeIDs) > 0 {
		filter["_id"] = bson.M{"$nin": opt.ExcludeIDs}
	}

	switch opt.CoverPresence {
	case CoverWith:
		filter["cover_image_url"] = bson.M{"$ne": ""}
	case CoverWithout:
		filter["cover_image_url"] = ""
	}

	return filter
}

// List returns articles with filters and pagination, sorted by published_at
// desc with _id desc as a stable tie-break, plus the total count of the
// filtered set before slicing.
//
// The count and the page fetch are two independent reads with no snapshot
// between them; under concurrent writes they can disagree.
func (r *ArticleRepository) List(ctx context.Context, opt ListArticlesOptions) ([]models.Article, int64, error) {
	filter := buildFilter(opt)

	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.Limit <= 0 {
		opt.Limit = 12
	}
	skip := int64((opt.Page - 1) * opt.Limit)
	limit := int64(opt.Limit)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{
		{Key: "published_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Article
	for cur.Next(ctx) {
		var a models.Article
		if err := cur.Decode(&a); err != nil {
			return nil, 0, err
		}
		results = append(results, a)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// FindByID returns an article by its ObjectID
func (r *ArticleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	var a models.Article
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// FindBySlug returns an article by its unique slug
func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var a models.Article
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Insert inserts a new article document.
func (r *ArticleRepository) Insert(ctx context.Context, a *models.Article) (*mongo.InsertOneResult, error) {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	return r.col.InsertOne(ctx, a)
}

// UpsertBySlug upserts an article identified by its slug. Used by the seed
// importer so reruns stay idempotent.
func (r *ArticleRepository) UpsertBySlug(ctx context.Context, a *models.Article) (*mongo.UpdateResult, error) {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	filter := bson.M{"slug": a.Slug}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": a.CreatedAt,
			"view_count": a.ViewCount,
		},
		"$set": bson.M{
			"updated_at":      a.UpdatedAt,
			"title":           a.Title,
			"slug":            a.Slug,
			"content":         a.Content,
			"excerpt":         a.Excerpt,
			"cover_image_url": a.CoverImageURL,
			"thumbnail_url":   a.ThumbnailURL,
			"author":          a.Author,
			"author_email":    a.AuthorEmail,
			"status":          a.Status,
			"is_featured":     a.IsFeatured,
			"published_at":    a.PublishedAt,
			"category_id":     a.CategoryID,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

// IncrementViewCount increments view_count by 1 and returns the updated
// document, so the persisted and returned counts always agree.
func (r *ArticleRepository) IncrementViewCount(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a models.Article
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"view_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}, opts).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateFields updates specific fields of an article and returns the
// updated document.
func (r *ArticleRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Article, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a models.Article
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// SetFeatured toggles the featured flag. When setting it true, every other
// article is cleared first so at most one article is featured.
//
// The clear and the set are two sequential writes, not a transaction: a
// concurrent reader can briefly observe zero featured articles. Clearing
// first keeps the invariant one-sided (never two featured at once from this
// path alone).
func (r *ArticleRepository) SetFeatured(ctx context.Context, id primitive.ObjectID, featured bool) (*models.Article, error) {
	if featured {
		if _, err := r.col.UpdateMany(ctx,
			bson.M{"_id": bson.M{"$ne": id}, "is_featured": true},
			bson.M{"$set": bson.M{"is_featured": false, "updated_at": time.Now()}},
		); err != nil {
			return nil, err
		}
	}
	return r.UpdateFields(ctx, id, map[string]interface{}{"is_featured": featured})
}

// Delete removes an article by id. Returns mongo.ErrNoDocuments when the
// id does not exist, so callers can distinguish not-found from store errors.
func (r *ArticleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CountAll returns the total number of articles.
func (r *ArticleRepository) CountAll(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// CountWithCover returns the number of articles that have a cover image.
func (r *ArticleRepository) CountWithCover(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"cover_image_url": bson.M{"$ne": ""}})
}

// CountByCategory counts articles in a category, optionally restricted to
// a status.
func (r *ArticleRepository) CountByCategory(ctx context.Context, categoryID primitive.ObjectID, status models.ArticleStatus) (int64, error) {
	filter := bson.M{"category_id": categoryID}
	if status != "" {
		filter["status"] = status
	}
	return r.col.CountDocuments(ctx, filter)
}

// ReassignCategory moves every article in fromID to toID and returns the
// number of articles moved.
func (r *ArticleRepository) ReassignCategory(ctx context.Context, fromID, toID primitive.ObjectID) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"category_id": fromID},
		bson.M{"$set": bson.M{"category_id": toID, "updated_at": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"poros-portal/models"
)

type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection("categories")}
}

// List returns all categories sorted by name ascending.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Category
	for cur.Next(ctx) {
		var c models.Category
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// FindByID returns a category by its ObjectID
func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var c models.Category
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindBySlug returns a category by its unique slug
func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByNameOrSlug returns a category whose name or slug matches, excluding
// the given id when non-nil. Used for duplicate checks before create/update.
func (r *CategoryRepository) FindByNameOrSlug(ctx context.Context, name, slug string, excludeID *primitive.ObjectID) (*models.Category, error) {
	filter := bson.M{"$or": []bson.M{{"name": name}, {"slug": slug}}}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}
	var c models.Category
	if err := r.col.FindOne(ctx, filter).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Insert inserts a new category document and returns it with its id set.
func (r *CategoryRepository) Insert(ctx context.Context, c *models.Category) (*models.Category, error) {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update sets name, slug and description on an existing category and
// returns the updated document.
func (r *CategoryRepository) Update(ctx context.Context, id primitive.ObjectID, name, slug, description string) (*models.Category, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Category
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"name":        name,
			"slug":        slug,
			"description": description,
			"updated_at":  time.Now(),
		},
	}, opts).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertBySlug upserts a category identified by its slug.
func (r *CategoryRepository) UpsertBySlug(ctx context.Context, c *models.Category) (*models.Category, error) {
	now := time.Now()
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var out models.Category
	err := r.col.FindOneAndUpdate(ctx, bson.M{"slug": c.Slug}, bson.M{
		"$setOnInsert": bson.M{"created_at": now},
		"$set": bson.M{
			"name":        c.Name,
			"slug":        c.Slug,
			"description": c.Description,
			"updated_at":  now,
		},
	}, opts).Decode(&out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a category by id. Returns mongo.ErrNoDocuments when the
// id does not exist.
func (r *CategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

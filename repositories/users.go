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

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// FindByEmail returns a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID returns a user by its ObjectID
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertByEmail upserts a user identified by email. Used by the seed
// importer for the initial admin account.
func (r *UserRepository) UpsertByEmail(ctx context.Context, u *models.User) (*mongo.UpdateResult, error) {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	filter := bson.M{"email": u.Email}
	update := bson.M{
		"$setOnInsert": bson.M{"created_at": u.CreatedAt},
		"$set": bson.M{
			"updated_at":    u.UpdatedAt,
			"email":         u.Email,
			"password_hash": u.PasswordHash,
			"name":          u.Name,
			"role":          u.Role,
			"is_active":     u.IsActive,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

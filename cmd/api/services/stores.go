package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"poros-portal/models"
	"poros-portal/repositories"
)

// Store interfaces narrow the repositories to what the services actually
// call, so tests can swap in fakes without a running database. The mongo
// repositories satisfy them as-is.

type ArticleStore interface {
	List(ctx context.Context, opt repositories.ListArticlesOptions) ([]models.Article, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error)
	FindBySlug(ctx context.Context, slug string) (*models.Article, error)
	IncrementViewCount(ctx context.Context, id primitive.ObjectID) (*models.Article, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Article, error)
	SetFeatured(ctx context.Context, id primitive.ObjectID, featured bool) (*models.Article, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountAll(ctx context.Context) (int64, error)
	CountWithCover(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context, categoryID primitive.ObjectID, status models.ArticleStatus) (int64, error)
	ReassignCategory(ctx context.Context, fromID, toID primitive.ObjectID) (int64, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindByNameOrSlug(ctx context.Context, name, slug string, excludeID *primitive.ObjectID) (*models.Category, error)
	Insert(ctx context.Context, c *models.Category) (*models.Category, error)
	Update(ctx context.Context, id primitive.ObjectID, name, slug, description string) (*models.Category, error)
	UpsertBySlug(ctx context.Context, c *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

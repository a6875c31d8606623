package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category represents an article category
// Collection: categories
// Both name and slug carry unique indexes; slug is derived from name.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
}

// Sentinel category used as the reassignment target when a category
// holding articles is force-deleted.
const (
	UncategorizedName = "Uncategorized"
	UncategorizedSlug = "uncategorized"
)

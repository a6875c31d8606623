package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "DRAFT"
	StatusPublished ArticleStatus = "PUBLISHED"
	StatusArchived  ArticleStatus = "ARCHIVED"
)

// Article represents a portal article document
// Collection: articles
//
// The cover/thumbnail URL pair always changes together: both are set by the
// upload flow and both are cleared when a cover is removed. An empty string
// means "no cover".
//
// PublishedAt uses the zero time as "not published yet", the same convention
// as the cover URLs. Responses omit the field while it is zero, and the zero
// time sorts below every real date, so unpublished drafts sink to the end of
// the published_at desc listing order.
type Article struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Content       string             `bson:"content" json:"content"`
	Excerpt       string             `bson:"excerpt" json:"excerpt"`
	CoverImageURL string             `bson:"cover_image_url" json:"cover_image_url"`
	ThumbnailURL  string             `bson:"thumbnail_url" json:"thumbnail_url"`
	Author        string             `bson:"author" json:"author"`
	AuthorEmail   string             `bson:"author_email" json:"author_email"`
	Status        ArticleStatus      `bson:"status" json:"status"`
	IsFeatured    bool               `bson:"is_featured" json:"is_featured"`
	ViewCount     int64              `bson:"view_count" json:"view_count"`
	PublishedAt   time.Time          `bson:"published_at" json:"published_at"`
	CategoryID    primitive.ObjectID `bson:"category_id" json:"category_id"`
}

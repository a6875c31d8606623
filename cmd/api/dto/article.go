package dto

import "time"

// CategoryRefDTO is the denormalized category snippet embedded in article
// responses.
type CategoryRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ArticleSummaryDTO is the listing shape: everything except the long-form
// content field, to keep list payloads small.
type ArticleSummaryDTO struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Excerpt       string          `json:"excerpt,omitempty"`
	CoverImageURL string          `json:"cover_image_url,omitempty"`
	ThumbnailURL  string          `json:"thumbnail_url,omitempty"`
	Author        string          `json:"author"`
	Status        string          `json:"status"`
	IsFeatured    bool            `json:"is_featured"`
	ViewCount     int64           `json:"view_count"`
	PublishedAt   time.Time       `json:"published_at,omitzero"`
	Category      *CategoryRefDTO `json:"category,omitempty"`
}

// ArticleDTO is the full article shape including content.
type ArticleDTO struct {
	ArticleSummaryDTO
	Content     string    `json:"content"`
	AuthorEmail string    `json:"author_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArticleStatsDTO summarizes cover coverage for the admin dashboard.
type ArticleStatsDTO struct {
	Total           int64 `json:"total"`
	WithCover       int64 `json:"with_cover"`
	WithoutCover    int64 `json:"without_cover"`
	CoverPercentage int   `json:"cover_percentage"`
}

// FeaturedDTO is the homepage hero/grid set.
type FeaturedDTO struct {
	Hero *ArticleSummaryDTO  `json:"hero"`
	Grid []ArticleSummaryDTO `json:"grid"`
}

// HeroDTO is the hero section: the featured article plus side articles.
type HeroDTO struct {
	Featured     *ArticleSummaryDTO  `json:"featured"`
	SideArticles []ArticleSummaryDTO `json:"side_articles"`
}

// SearchResultDTO wraps a search page with the normalized query echoed back.
type SearchResultDTO struct {
	Pagination[ArticleSummaryDTO]
	Query string `json:"query"`
}

// UpdateArticleCategoryRequest reassigns an article to another category.
type UpdateArticleCategoryRequest struct {
	CategoryID string `json:"category_id"`
}

// UpdateArticleCoverRequest sets the cover/thumbnail URL pair. Empty values
// clear the cover.
type UpdateArticleCoverRequest struct {
	CoverImageURL string `json:"cover_image_url"`
	ThumbnailURL  string `json:"thumbnail_url"`
}

// UpdateArticleFeaturedRequest toggles the single featured slot.
type UpdateArticleFeaturedRequest struct {
	IsFeatured *bool `json:"is_featured"`
}

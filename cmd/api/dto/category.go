package dto

import "time"

// CategoryDTO is a category with its article count (published-only on
// public surfaces, all statuses on admin surfaces).
type CategoryDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	ArticleCount int64     `json:"article_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryRequest carries the writable category fields; the slug is always
// derived from the name server-side.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DeleteCategoryResultDTO reports a category deletion. ArticlesMoved is
// non-zero only for force deletes that reassigned articles to the
// Uncategorized sentinel.
type DeleteCategoryResultDTO struct {
	Success       bool  `json:"success"`
	ArticlesMoved int64 `json:"articles_moved"`
}

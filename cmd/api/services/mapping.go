package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"poros-portal/cmd/api/dto"
	"poros-portal/models"
)

// categoryRefs loads all categories once and returns them keyed by id, for
// embedding category snippets into article responses. Categories are few,
// so one fetch per request beats a lookup per article.
func categoryRefs(ctx context.Context, store CategoryStore) (map[primitive.ObjectID]dto.CategoryRefDTO, error) {
	cats, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	refs := make(map[primitive.ObjectID]dto.CategoryRefDTO, len(cats))
	for _, c := range cats {
		refs[c.ID] = dto.CategoryRefDTO{ID: c.ID.Hex(), Name: c.Name, Slug: c.Slug}
	}
	return refs, nil
}

func mapArticleSummary(a models.Article, refs map[primitive.ObjectID]dto.CategoryRefDTO) dto.ArticleSummaryDTO {
	out := dto.ArticleSummaryDTO{
		ID:            a.ID.Hex(),
		Title:         a.Title,
		Slug:          a.Slug,
		Excerpt:       a.Excerpt,
		CoverImageURL: a.CoverImageURL,
		ThumbnailURL:  a.ThumbnailURL,
		Author:        a.Author,
		Status:        string(a.Status),
		IsFeatured:    a.IsFeatured,
		ViewCount:     a.ViewCount,
		PublishedAt:   a.PublishedAt,
	}
	if ref, ok := refs[a.CategoryID]; ok {
		out.Category = &ref
	}
	return out
}

func mapArticle(a models.Article, refs map[primitive.ObjectID]dto.CategoryRefDTO) dto.ArticleDTO {
	return dto.ArticleDTO{
		ArticleSummaryDTO: mapArticleSummary(a, refs),
		Content:           a.Content,
		AuthorEmail:       a.AuthorEmail,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func mapArticleSummaries(articles []models.Article, refs map[primitive.ObjectID]dto.CategoryRefDTO) []dto.ArticleSummaryDTO {
	out := make([]dto.ArticleSummaryDTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, mapArticleSummary(a, refs))
	}
	return out
}

func mapCategory(c models.Category, articleCount int64) dto.CategoryDTO {
	return dto.CategoryDTO{
		ID:           c.ID.Hex(),
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		ArticleCount: articleCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

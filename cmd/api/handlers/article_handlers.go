package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"poros-portal/cmd/api/dto"
	"poros-portal/cmd/api/services"
)

// ListArticlesHandler godoc
// @Summary      List articles (admin)
// @Description  Paginated articles across every status, with search and cover-presence filters
// @Tags         articles
// @Security     SessionAuth
// @Param        page    query  int     false  "Page number (1-based)"
// @Param        limit   query  int     false  "Page size (default 20)"
// @Param        search  query  string  false  "Search term (title, excerpt)"
// @Param        filter  query  string  false  "Cover filter: all / with-cover / without-cover"
// @Produce      json
// @Success      200  {object}  dto.Pagination[dto.ArticleSummaryDTO]
// @Router       /articles [get]
func ListArticlesHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := services.ListArticlesInput{
			Page:   queryInt(c, "page", 1),
			Limit:  queryInt(c, "limit", 20),
			Search: c.Query("search"),
			Filter: c.DefaultQuery("filter", "all"),
		}

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetArticleHandler godoc
// @Summary      Get article by id (admin)
// @Tags         articles
// @Security     SessionAuth
// @Param        id  path  string  true  "Article id"
// @Produce      json
// @Success      200  {object}  dto.ArticleDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /articles/{id} [get]
func GetArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		article, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

// GetArticleStatsHandler godoc
// @Summary      Article cover stats (admin)
// @Tags         articles
// @Security     SessionAuth
// @Produce      json
// @Success      200  {object}  dto.ArticleStatsDTO
// @Router       /articles/stats/summary [get]
func GetArticleStatsHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// UpdateArticleCategoryHandler godoc
// @Summary      Reassign article category (admin)
// @Tags         articles
// @Security     SessionAuth
// @Param        id       path  string                            true  "Article id"
// @Param        request  body  dto.UpdateArticleCategoryRequest  true  "Target category"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ArticleDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /articles/{id}/category [patch]
func UpdateArticleCategoryHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateArticleCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("malformed request body: %w", services.ErrInvalidInput))
			return
		}

		article, err := svc.UpdateCategory(c.Request.Context(), c.Param("id"), req.CategoryID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

// UpdateArticleCoverHandler godoc
// @Summary      Set article cover URLs (admin)
// @Description  Persists the cover/thumbnail URL pair returned by the upload endpoint
// @Tags         articles
// @Security     SessionAuth
// @Param        id       path  string                         true  "Article id"
// @Param        request  body  dto.UpdateArticleCoverRequest  true  "Cover URLs"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ArticleDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /articles/{id}/cover [post]
func UpdateArticleCoverHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateArticleCoverRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("malformed request body: %w", services.ErrInvalidInput))
			return
		}

		article, err := svc.UpdateCover(c.Request.Context(), c.Param("id"), req.CoverImageURL, req.ThumbnailURL)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

// DeleteArticleCoverHandler godoc
// @Summary      Clear article cover (admin)
// @Tags         articles
// @Security     SessionAuth
// @Param        id  path  string  true  "Article id"
// @Produce      json
// @Success      200  {object}  dto.ArticleDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /articles/{id}/cover [delete]
func DeleteArticleCoverHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		article, err := svc.ClearCover(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

// UpdateArticleFeaturedHandler godoc
// @Summary      Toggle featured flag (admin)
// @Description  Setting is_featured true clears the flag on every other article first
// @Tags         articles
// @Security     SessionAuth
// @Param        id       path  string                            true  "Article id"
// @Param        request  body  dto.UpdateArticleFeaturedRequest  true  "Featured flag"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ArticleDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /articles/{id}/featured [patch]
func UpdateArticleFeaturedHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateArticleFeaturedRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.IsFeatured == nil {
			respondError(c, fmt.Errorf("is_featured must be a boolean: %w", services.ErrInvalidInput))
			return
		}

		article, err := svc.SetFeatured(c.Request.Context(), c.Param("id"), *req.IsFeatured)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

// DeleteArticleHandler godoc
// @Summary      Delete article (admin)
// @Tags         articles
// @Security     SessionAuth
// @Param        id  path  string  true  "Article id"
// @Produce      json
// @Success      200  {object}  dto.SuccessResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /articles/{id} [delete]
func DeleteArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.SuccessResponseDTO{Success: true})
	}
}

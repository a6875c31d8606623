package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"poros-portal/cmd/api/auth"
	"poros-portal/cmd/api/services"
	"poros-portal/cmd/internal/logger"
)

// ListPublicArticlesHandler godoc
// @Summary      List published articles
// @Description  Paginated published articles with optional category and search filters
// @Tags         public
// @Param        page      query  int     false  "Page number (1-based)"
// @Param        limit     query  int     false  "Page size (default 12)"
// @Param        category  query  string  false  "Category slug"
// @Param        search    query  string  false  "Search term (title, excerpt, content)"
// @Produce      json
// @Success      200  {object}  dto.Pagination[dto.ArticleSummaryDTO]
// @Router       /public/articles [get]
func ListPublicArticlesHandler(svc *services.PublicService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := services.PublicListInput{
			Page:         queryInt(c, "page", 1),
			Limit:        queryInt(c, "limit", 12),
			CategorySlug: c.Query("category"),
			Search:       c.Query("search"),
		}

		page, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetPublicArticleHandler godoc
// @Summary      Get article by slug
// @Description  Full article for public display; the first view per client within 24h increments the view counter
// @Tags         public
// @Param        slug  path  string  true  "Article slug"
// @Produce      json
// @Success      200  {object}  dto.ArticleDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /public/articles/{slug} [get]
func GetPublicArticleHandler(publicSvc *services.PublicService, authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		viewed := authSvc.ViewedSlugs(auth.ViewCookieValue(c))

		article, counted, err := publicSvc.GetBySlug(c.Request.Context(), slug, viewed)
		if err != nil {
			respondError(c, err)
			return
		}

		if counted {
			token, err := authSvc.SignViewedSlugs(append(viewed, slug))
			if err != nil {
				// the view is already counted; a missing cookie only
				// risks one extra count on the next visit
				logger.Log.Warnf("sign view cookie: %v", err)
			} else {
				auth.SetViewCookie(c, token)
			}
		}

		c.JSON(http.StatusOK, article)
	}
}

// GetRelatedArticlesHandler godoc
// @Summary      Related articles
// @Description  Up to 4 published articles from the same category, excluding the article itself
// @Tags         public
// @Param        slug  path  string  true  "Article slug"
// @Produce      json
// @Success      200  {array}   dto.ArticleSummaryDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /public/articles/{slug}/related [get]
func GetRelatedArticlesHandler(svc *services.PublicService) gin.HandlerFunc {
	return func(c *gin.Context) {
		articles, err := svc.Related(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, articles)
	}
}

// SearchArticlesHandler godoc
// @Summary      Search published articles
// @Description  Case-insensitive search across title, excerpt and content; a blank query returns an empty result set
// @Tags         public
// @Param        q      query  string  false  "Search query"
// @Param        page   query  int     false  "Page number (1-based)"
// @Param        limit  query  int     false  "Page size (default 12)"
// @Produce      json
// @Success      200  {object}  dto.SearchResultDTO
// @Router       /public/search [get]
func SearchArticlesHandler(svc *services.PublicService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.Search(c.Request.Context(), c.Query("q"), queryInt(c, "page", 1), queryInt(c, "limit", 12))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetFeaturedHandler godoc
// @Summary      Homepage featured set
// @Description  The featured (or most recent) published article plus a 6-article grid excluding it
// @Tags         public
// @Produce      json
// @Success      200  {object}  dto.FeaturedDTO
// @Router       /public/featured [get]
func GetFeaturedHandler(svc *services.PublicService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Featured(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetHeroHandler godoc
// @Summary      Hero section
// @Description  The featured (or most recent) published article plus 2 side articles excluding it
// @Tags         public
// @Produce      json
// @Success      200  {object}  dto.HeroDTO
// @Router       /public/hero [get]
func GetHeroHandler(svc *services.PublicService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Hero(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ListPublicCategoriesHandler godoc
// @Summary      List categories
// @Description  All categories sorted by name with published article counts
// @Tags         public
// @Produce      json
// @Success      200  {array}  dto.CategoryDTO
// @Router       /public/categories [get]
func ListPublicCategoriesHandler(svc *services.PublicService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := svc.Categories(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}

// ListCategoryArticlesHandler godoc
// @Summary      List articles in a category
// @Description  Published articles for a category slug; exclude omits ids already shown elsewhere on the page
// @Tags         public
// @Param        slug     path   string  true   "Category slug"
// @Param        page     query  int     false  "Page number (1-based)"
// @Param        limit    query  int     false  "Page size (default 12)"
// @Param        exclude  query  string  false  "Comma-separated article ids to omit"
// @Produce      json
// @Success      200  {object}  dto.Pagination[dto.ArticleSummaryDTO]
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /public/categories/{slug}/articles [get]
func ListCategoryArticlesHandler(svc *services.PublicService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var excludeIDs []string
		if raw := c.Query("exclude"); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				if part = strings.TrimSpace(part); part != "" {
					excludeIDs = append(excludeIDs, part)
				}
			}
		}

		page, err := svc.CategoryArticles(c.Request.Context(), c.Param("slug"),
			queryInt(c, "page", 1), queryInt(c, "limit", 12), excludeIDs)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

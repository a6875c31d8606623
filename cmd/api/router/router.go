package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"poros-portal/cmd/api/auth"
	"poros-portal/cmd/api/handlers"
	"poros-portal/cmd/api/middleware"
	"poros-portal/cmd/api/services"
	"poros-portal/config"
	_ "poros-portal/docs"
	"poros-portal/repositories"
	"poros-portal/storage"
)

// New wires repositories, services and routes into a gin engine.
func New(database *mongo.Database, store storage.ObjectStore, cfg config.AppConfig) (*gin.Engine, error) {
	sessionTTL := time.Duration(cfg.Auth.SessionTTLDays) * 24 * time.Hour
	jwtManager, err := auth.NewJWTManager(cfg.Auth.Issuer, sessionTTL)
	if err != nil {
		return nil, err
	}

	articleRepo := repositories.NewArticleRepository(database)
	categoryRepo := repositories.NewCategoryRepository(database)
	userRepo := repositories.NewUserRepository(database)

	authSvc := services.NewAuthService(userRepo, jwtManager)
	publicSvc := services.NewPublicService(articleRepo, categoryRepo)
	articleSvc := services.NewArticleService(articleRepo, categoryRepo)
	categorySvc := services.NewCategoryService(categoryRepo, articleRepo)
	uploadSvc := services.NewUploadService(store, cfg.Storage.PublicBaseURL)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLoggingMiddleware())
	r.Use(corsMiddleware(cfg.Server.AllowedOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Format(time.RFC3339)})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", handlers.LoginHandler(authSvc, sessionTTL))
			authGroup.POST("/logout", handlers.LogoutHandler())
			authGroup.GET("/me", handlers.MeHandler(authSvc))
		}

		public := api.Group("/public")
		{
			public.GET("/articles", handlers.ListPublicArticlesHandler(publicSvc))
			public.GET("/articles/:slug", handlers.GetPublicArticleHandler(publicSvc, authSvc))
			public.GET("/articles/:slug/related", handlers.GetRelatedArticlesHandler(publicSvc))
			public.GET("/search", handlers.SearchArticlesHandler(publicSvc))
			public.GET("/featured", handlers.GetFeaturedHandler(publicSvc))
			public.GET("/hero", handlers.GetHeroHandler(publicSvc))
			public.GET("/categories", handlers.ListPublicCategoriesHandler(publicSvc))
			public.GET("/categories/:slug/articles", handlers.ListCategoryArticlesHandler(publicSvc))
		}

		requireAuth := middleware.AdminAuthMiddleware(authSvc)

		articles := api.Group("/articles", requireAuth)
		{
			articles.GET("", handlers.ListArticlesHandler(articleSvc))
			articles.GET("/stats/summary", handlers.GetArticleStatsHandler(articleSvc))
			articles.GET("/:id", handlers.GetArticleHandler(articleSvc))
			articles.PATCH("/:id/category", handlers.UpdateArticleCategoryHandler(articleSvc))
			articles.POST("/:id/cover", handlers.UpdateArticleCoverHandler(articleSvc))
			articles.DELETE("/:id/cover", handlers.DeleteArticleCoverHandler(articleSvc))
			articles.PATCH("/:id/featured", handlers.UpdateArticleFeaturedHandler(articleSvc))
			articles.DELETE("/:id", handlers.DeleteArticleHandler(articleSvc))
		}

		categories := api.Group("/categories", requireAuth)
		{
			categories.GET("", handlers.ListCategoriesHandler(categorySvc))
			categories.GET("/:id", handlers.GetCategoryHandler(categorySvc))
			categories.POST("", handlers.CreateCategoryHandler(categorySvc))
			categories.PUT("/:id", handlers.UpdateCategoryHandler(categorySvc))
			categories.DELETE("/:id", handlers.DeleteCategoryHandler(categorySvc))
		}

		upload := api.Group("/upload", requireAuth)
		{
			upload.POST("/image", handlers.UploadImageHandler(uploadSvc))
		}
	}

	return r, nil
}

// corsMiddleware adapts rs/cors to gin.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}

package handlers

import (
	"net/http"

	"newsportal/helper"
	"newsportal/metrics"
	"newsportal/middleware"
	"newsportal/models"
	"newsportal/services"

	"github.com/gin-gonic/gin"
)

// RouterConfig carries everything NewRouter needs to mount the API.
type RouterConfig struct {
	ArticleService  services.ArticleService
	CategoryService services.CategoryService
	StatsService    services.StatsService
	AuthService     services.AuthService
	MediaService    services.MediaService
	Helper          *helper.HTTPHelper
	JWTSecret       []byte
	LoginLimiter    middleware.Limiter
	CORSOrigins     []string
	MaxUploadBytes  int64
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	middleware.HTTPHelper = cfg.Helper

	articleHandler := NewArticleHandler(cfg.ArticleService, cfg.Helper)
	categoryHandler := NewCategoryHandler(cfg.CategoryService, cfg.Helper)
	statsHandler := NewStatsHandler(cfg.StatsService, cfg.Helper)
	authHandler := NewAuthHandler(cfg.AuthService, cfg.Helper)
	mediaHandler := NewMediaHandler(cfg.MediaService, cfg.Helper)

	router := gin.New()
	if cfg.MaxUploadBytes > 0 {
		router.MaxMultipartMemory = cfg.MaxUploadBytes
	}
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		metrics.Handler(),
		middleware.CORS(cfg.CORSOrigins),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", metrics.Exposer())

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			login := []gin.HandlerFunc{authHandler.Login}
			if cfg.LoginLimiter != nil {
				login = append([]gin.HandlerFunc{middleware.RateLimit(cfg.LoginLimiter, "login", middleware.ClientIP)}, login...)
			}
			auth.POST("/login", login...)
		}

		v1.GET("/profile", middleware.AuthMiddleware(cfg.JWTSecret), authHandler.GetProfile)

		public := v1.Group("/public")
		{
			public.GET("/categories", categoryHandler.ListPublic)
			public.GET("/categories/:slug", categoryHandler.GetBySlug)
			public.GET("/categories/:slug/articles", articleHandler.GetByCategory)

			// Search and related live outside /articles so every slug stays reachable.
			public.GET("/search", articleHandler.Search)
			public.GET("/related", articleHandler.GetRelated)
			public.GET("/articles", articleHandler.GetLatest)
			public.GET("/articles/:slug", articleHandler.GetBySlug)
		}

		admin := v1.Group("/admin")
		admin.Use(
			middleware.AuthMiddleware(cfg.JWTSecret),
			middleware.RequireRole(models.RoleAdmin, models.RoleEditor),
		)
		{
			admin.GET("/categories", categoryHandler.ListAdmin)
			admin.POST("/categories", categoryHandler.Create)
			admin.PATCH("/categories/:id", categoryHandler.Update)
			admin.DELETE("/categories/:id", categoryHandler.Delete)

			admin.GET("/articles", articleHandler.GetAll)
			admin.POST("/articles", articleHandler.Create)
			admin.GET("/articles/:id", articleHandler.GetByID)
			admin.PATCH("/articles/:id", articleHandler.Update)
			admin.DELETE("/articles/:id", articleHandler.Delete)

			admin.GET("/stats", statsHandler.GetDashboardStats)
			admin.POST("/media", mediaHandler.Upload)
		}
	}

	return router
}

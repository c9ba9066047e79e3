package router

import (
	"github.com/TanzilIslam/dev-home-sub000/internal/config"
	"github.com/TanzilIslam/dev-home-sub000/internal/handlers"
	"github.com/TanzilIslam/dev-home-sub000/internal/middleware"
	"github.com/TanzilIslam/dev-home-sub000/internal/observability/metrics"
	"github.com/TanzilIslam/dev-home-sub000/internal/response"
	"github.com/TanzilIslam/dev-home-sub000/internal/services"
	"github.com/TanzilIslam/dev-home-sub000/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, store storage.Store, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Logger())

	reg := metrics.InitRegistry()
	metrics.RegisterDBMetrics(reg)
	r.Use(metrics.HTTPMetricsMiddleware(reg))

	response.RegisterValidatorTagNames()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	fileService := services.NewFileService(db, store)
	clientService := services.NewClientService(db, fileService)
	projectService := services.NewProjectService(db, fileService)
	codebaseService := services.NewCodebaseService(db, fileService)
	linkService := services.NewLinkService(db)

	authHandler := handlers.NewAuthHandler(db, cfg.JWT)
	clientHandler := handlers.NewClientHandler(clientService)
	projectHandler := handlers.NewProjectHandler(projectService)
	codebaseHandler := handlers.NewCodebaseHandler(codebaseService)
	linkHandler := handlers.NewLinkHandler(linkService)
	fileHandler := handlers.NewFileHandler(fileService)

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuth())
	{
		protected.GET("/me", authHandler.Me)

		clients := protected.Group("/clients")
		{
			clients.GET("", clientHandler.List)
			clients.GET("/:id", clientHandler.Get)
			clients.POST("", clientHandler.Create)
			clients.PUT("/:id", clientHandler.Update)
			clients.DELETE("/:id", clientHandler.Delete)
		}

		projects := protected.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.GET("/:id", projectHandler.Get)
			projects.POST("", projectHandler.Create)
			projects.PUT("/:id", projectHandler.Update)
			projects.DELETE("/:id", projectHandler.Delete)
		}

		codebases := protected.Group("/codebases")
		{
			codebases.GET("", codebaseHandler.List)
			codebases.GET("/:id", codebaseHandler.Get)
			codebases.POST("", codebaseHandler.Create)
			codebases.PUT("/:id", codebaseHandler.Update)
			codebases.DELETE("/:id", codebaseHandler.Delete)
		}

		links := protected.Group("/links")
		{
			links.GET("", linkHandler.List)
			links.GET("/:id", linkHandler.Get)
			links.POST("", linkHandler.Create)
			links.PUT("/:id", linkHandler.Update)
			links.DELETE("/:id", linkHandler.Delete)
		}

		files := protected.Group("/files")
		{
			files.GET("", fileHandler.List)
			files.GET("/:id", fileHandler.Get)
			files.GET("/:id/download", fileHandler.Download)
			files.POST("", fileHandler.Upload)
			files.PUT("/:id", fileHandler.Update)
			files.DELETE("/:id", fileHandler.Delete)
		}
	}

	return r
}

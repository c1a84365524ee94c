package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-inventory-api/internal/config"
	"product-inventory-api/internal/database"
	"product-inventory-api/internal/delivery/http/handler"
	"product-inventory-api/internal/infrastructure/database/postgres"
	"product-inventory-api/internal/logger"
	"product-inventory-api/internal/middleware"
	"product-inventory-api/internal/usecase/auth"
	"product-inventory-api/internal/usecase/product"
)

func SetupRoutes(cfg *config.Config, db *database.Database) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	authService := auth.NewService(userRepository, cfg)
	authHandler := handler.NewAuthHandler(authService)

	productRepository := postgres.NewProductRepository(db)
	productService := product.NewService(productRepository)
	productHandler := handler.NewProductHandler(productService)

	api := router.Group("/api")
	{
		authHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			productHandler.RegisterRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}

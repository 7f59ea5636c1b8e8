package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dkanak/shopcart-backend/internal/handlers"
	"github.com/dkanak/shopcart-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	CartHandler    *handlers.CartHandler
	SeedHandler    *handlers.SeedHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")

	// Public
	api.GET("/seeder", cfg.SeedHandler.Run)
	api.POST("/auth/registration", cfg.AuthHandler.Registration)
	api.POST("/auth/login", cfg.AuthHandler.Login)
	api.GET("/products/:id", cfg.ProductHandler.Get)

	// Protected
	protected := api.Group("")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.GET("/products", cfg.ProductHandler.List)
	protected.POST("/cart", cfg.CartHandler.Add)
	protected.GET("/cart", cfg.CartHandler.Details)

	return router
}

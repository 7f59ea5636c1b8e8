package main

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dkanak/shopcart-backend/internal/cache"
	"github.com/dkanak/shopcart-backend/internal/docindex"
	"github.com/dkanak/shopcart-backend/internal/handlers"
	"github.com/dkanak/shopcart-backend/internal/logger"
	"github.com/dkanak/shopcart-backend/internal/middleware"
	"github.com/dkanak/shopcart-backend/internal/repos"
	"github.com/dkanak/shopcart-backend/internal/server"
	"github.com/dkanak/shopcart-backend/internal/services"
	"github.com/dkanak/shopcart-backend/internal/token"
	"github.com/dkanak/shopcart-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecret := utils.GetEnv("JWT_SECRET", "defaultsecret", log)
	tokenTTL := utils.GetEnvAsInt("TOKEN_TTL", 3600, log)
	databaseURL := utils.GetEnv("DATABASE_URL", "", log)
	redisAddr := utils.GetEnv("REDIS_ADDR", "", log)

	// Document store
	log.Info("Setting up document store from main...")
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		log.Warn("DATABASE_URL not set, falling back to local sqlite file")
		dialector = sqlite.Open("shopcart.db")
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Error("Could not open database", "error", err)
		os.Exit(1)
	}
	store, err := docindex.NewGorm(db, log)
	if err != nil {
		log.Error("Could not init document store", "error", err)
		os.Exit(1)
	}

	// Key-value cache
	log.Info("Setting up key-value cache from main...")
	var kv cache.Cache
	if redisAddr != "" {
		kv, err = cache.NewRedis(log, redisAddr)
		if err != nil {
			log.Error("Could not connect to redis", "error", err)
			os.Exit(1)
		}
	} else {
		log.Warn("REDIS_ADDR not set, using in-process cache")
		kv = cache.NewMemory()
	}

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(store, log)
	productRepo := repos.NewProductRepo(store, log)

	// Services
	log.Info("Setting up services from main...")
	tokenService := token.NewService(jwtSecret, time.Duration(tokenTTL)*time.Second)
	authService := services.NewAuthService(log, userRepo, tokenService, kv)
	productService := services.NewProductService(log, productRepo, kv)
	cartService := services.NewCartService(log, kv, productRepo)
	seedService := services.NewSeedService(log, store)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	seedHandler := handlers.NewSeedHandler(seedService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    authHandler,
		ProductHandler: productHandler,
		CartHandler:    cartHandler,
		SeedHandler:    seedHandler,
		AuthMiddleware: authMiddleware,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

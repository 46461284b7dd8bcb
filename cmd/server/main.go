package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "stavquote/docs"
	"stavquote/internal/config"
	"stavquote/internal/handlers"
	"stavquote/internal/middleware"
	"stavquote/internal/services"
	"stavquote/pkg/database"
	"stavquote/pkg/supabase"
)

// @title StavQuote API
// @version 1.0
// @description Room pricing and quote persistence for construction contractors.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.SetupLogger(cfg.LogLevel)

	dbClient, err := database.NewClient(
		cfg.DBHost, cfg.DBPort, cfg.DBName,
		cfg.DBUser, cfg.DBPassword, cfg.DBSSLMode,
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer dbClient.Close()

	if err := dbClient.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var supaClient *supabase.AuthClient
	if cfg.SupabaseURL != "" && cfg.SupabaseKey != "" {
		if cfg.SupabaseServiceKey != "" {
			supaClient = supabase.NewAuthClientWithServiceKey(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseServiceKey)
		} else {
			supaClient = supabase.NewAuthClient(cfg.SupabaseURL, cfg.SupabaseKey)
		}
	}

	authService := services.NewAuthService(dbClient, supaClient, logger)
	roomService := services.NewRoomService(dbClient, logger)
	priceListService := services.NewPriceListService(dbClient, logger)

	authHandler := handlers.NewAuthHandler(authService, logger)
	roomHandler := handlers.NewRoomHandler(roomService, priceListService, logger)
	priceListHandler := handlers.NewPriceListHandler(priceListService, logger)
	healthHandler := handlers.NewHealthHandler(dbClient)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", healthHandler.Check)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "StavQuote API",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.Refresh)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/me", authHandler.Me)
			protected.POST("/auth/logout", authHandler.Logout)

			protected.POST("/rooms/price", roomHandler.PriceRoom)
			protected.GET("/rooms/:roomID/items", roomHandler.GetItems)
			protected.POST("/rooms/:roomID/save", roomHandler.SaveRoom)

			protected.GET("/price-lists/general", priceListHandler.GetGeneral)
			protected.PUT("/price-lists/general", priceListHandler.SaveGeneral)
			protected.POST("/projects/:id/snapshot", priceListHandler.Snapshot)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := cfg.Port
	logger.WithField("port", port).Info("Starting server")

	if err := router.Run(":" + port); err != nil {
		logger.WithError(err).Fatal("Failed to start server")
	}
}

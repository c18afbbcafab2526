package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"warga-registry-svc/docs"
	"warga-registry-svc/internal/cache"
	"warga-registry-svc/internal/config"
	"warga-registry-svc/internal/database"
	"warga-registry-svc/internal/handler"
	"warga-registry-svc/internal/middleware"
	"warga-registry-svc/internal/repository"
	"warga-registry-svc/internal/service"
	"warga-registry-svc/pkg/logger"
	"warga-registry-svc/pkg/response"
)

// @title Warga Registry Service API
// @version 1.0
// @description RESTful API for the warga (resident) registry

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Warga Registry Service API"
	docs.SwaggerInfo.Description = "RESTful API for the warga (resident) registry"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Warga Registry Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize Redis; the cache is optional and the service runs without it
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			appLogger.WithField("error", err).Warn("Redis unreachable, running without cache")
			redisClient = nil
		} else {
			appLogger.Info("Redis connected successfully")
		}
		cancel()
	} else {
		appLogger.Warn("No Redis address configured, running without cache")
	}

	// Initialize repositories
	wargaRepo := repository.NewWargaRepository(db.DB)
	summaryRepo := repository.NewSummaryRepository(db.DB)

	// Initialize cache and services
	wargaCache := cache.NewWargaCache(redisClient, cfg.Redis.CacheTTL)
	wargaService := service.NewWargaService(wargaRepo, wargaCache, appLogger)
	summaryService := service.NewSummaryService(summaryRepo, appLogger)

	// Response writer carries the service id used in response codes
	writer := response.NewWriter(cfg.Service.ID)

	// Initialize Gin router
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(writer, appLogger))
	router.NoRoute(middleware.NoRouteHandler(writer))
	router.NoMethod(middleware.NoMethodHandler(writer))

	// Setup routes
	handler.SetupRoutes(router, wargaService, summaryService, writer, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close cache and database connections
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.WithField("error", err).Error("Failed to close Redis connection")
		}
	}
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"blog-service/internal/cache"
	"blog-service/internal/config"
	"blog-service/internal/handler"
	"blog-service/internal/infrastructure/database"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/repository"
	"blog-service/internal/service"
	"blog-service/internal/session"
	"blog-service/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgresPool(context.Background(), cfg.PG)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Apply schema migrations
	if err := database.RunMigrations(cfg.PG.DSN, cfg.PG.MigrationsDir); err != nil {
		logger.Fatal("Failed to run migrations",
			slog.String("error", err.Error()))
	}

	// Connect to Redis for sessions and the article cache
	rdb, err := database.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis",
			slog.String("error", err.Error()))
	}
	defer rdb.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)

	// Initialize validator, sessions, and cache
	v := validator.NewValidator()
	sessions := session.NewStore(rdb, cfg.Auth.SessionTTL)
	articleCache := cache.NewArticleCache(rdb, cfg.Cache.ArticleTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, v, cfg.Auth.BcryptCost)
	accountService := service.NewAccountService(userRepo, v, nil)
	articleService := service.NewArticleService(articleRepo, commentRepo, articleCache, v)
	commentService := service.NewCommentService(commentRepo, articleRepo, v)
	exportService := service.NewExportService(articleRepo)

	// Setup Gin router
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(handler.Handlers{
		Health:   handler.NewHealthHandler(pool, rdb, cfg.App.Version),
		Auth:     handler.NewAuthHandler(authService, sessions),
		Accounts: handler.NewAccountHandler(accountService),
		Articles: handler.NewArticleHandler(articleService),
		Comments: handler.NewCommentHandler(commentService),
		Exports:  handler.NewExportHandler(exportService),
		Sessions: sessions,
		Users:    userRepo,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.HTTP.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"adaptrack/database"
	"adaptrack/internal/api/handler"
	"adaptrack/internal/api/middleware"
	"adaptrack/internal/api/repository"
	"adaptrack/internal/api/service"
	"adaptrack/internal/cache"
	"adaptrack/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	gdb, err := database.OpenGorm(cfg, logger)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Direct pgx pool for health pings. Non-fatal.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := database.ConnectPool(ctx, cfg)
	cancel()
	if err != nil {
		logger.Warn("pgx pool unavailable, health endpoint degraded", "error", err)
	} else {
		defer pool.Close()
	}

	var suggestionCache service.SuggestionCache
	if sc, err := cache.NewSuggestionCache(cfg.RedisAddr, cfg.RedisPassword, time.Duration(cfg.CacheTTL)*time.Second, logger); err != nil {
		logger.Warn("redis unavailable, suggestion caching disabled", "error", err)
	} else {
		suggestionCache = sc
		defer sc.Close()
	}

	// Repositories
	licenseRepo := repository.NewLicenseRepo(gdb)
	mangaRepo := repository.NewMangaRepo(gdb)
	animeRepo := repository.NewAnimeRepo(gdb)
	userRepo := repository.NewUserRepository(gdb)
	refreshTokenRepo := repository.NewRefreshTokenRepository(gdb)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	licenseService := service.NewLicenseService(licenseRepo)
	mangaService := service.NewMangaService(mangaRepo, licenseRepo, logger)
	animeService := service.NewAnimeService(animeRepo, mangaRepo, licenseRepo, logger)
	adaptationService := service.NewAdaptationService(animeRepo, logger)
	searchService := service.NewSearchService(licenseRepo, suggestionCache, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RateLimit(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok"}
		if pool != nil {
			if err := pool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
				return
			}
			status["database"] = "up"
		}
		c.JSON(http.StatusOK, status)
	})

	handler.NewAuthHandler(authService).RegisterRoutes(r.Group("/api/auth"))

	authed := r.Group("/api")
	authed.Use(middleware.AuthMiddleware(authService))
	handler.NewLicenseHandler(licenseService).RegisterRoutes(authed.Group("/license"))
	handler.NewMangaHandler(mangaService).RegisterRoutes(authed.Group("/manga"))
	handler.NewAnimeHandler(animeService).RegisterRoutes(authed.Group("/anime"))
	handler.NewAdaptationHandler(adaptationService).RegisterRoutes(authed.Group("/adaptation"))
	handler.NewSearchHandler(searchService).RegisterRoutes(authed.Group("/search"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("API server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

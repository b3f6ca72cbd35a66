package database

import (
	"context"
	"fmt"
	"log/slog"

	"adaptrack/internal/api/models"
	"adaptrack/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenGorm opens the postgres database used by the repositories and keeps
// the schema current for this app's models.
func OpenGorm(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.License{},
		&models.MangaWork{},
		&models.MangaPart{},
		&models.AnimeAdaptation{},
		&models.AnimeSeason{},
		&models.MangaToAnime{},
		&models.MangaPartToAnime{},
		&models.User{},
		&models.RefreshToken{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

// ConnectPool opens a pgx pool next to GORM, used by the health endpoint
// for direct liveness pings.
func ConnectPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}

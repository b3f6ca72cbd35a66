package anilist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"adaptrack/internal/api/models"
)

const syncTypeLicenses = "anilist_licenses"

// ImportConfig tunes one import run.
type ImportConfig struct {
	// Limit caps the number of titles imported; 0 means the default.
	Limit int
	// Workers is the number of concurrent store writers.
	Workers int
	// PageSize is the API page size.
	PageSize int
}

func (c ImportConfig) withDefaults() ImportConfig {
	if c.Limit == 0 {
		c.Limit = 50
	}
	if c.Workers == 0 {
		c.Workers = 10
	}
	if c.PageSize == 0 {
		c.PageSize = 25
	}
	return c
}

// SyncState tracks the progress of an import run in the database, keyed by
// sync type so repeated runs resume bookkeeping on the same row.
type SyncState struct {
	ID            int    `gorm:"primaryKey"`
	SyncType      string `gorm:"unique;not null"`
	LastRunAt     *time.Time
	LastSuccessAt *time.Time
	LastPage      int
	Status        string
	ErrorMessage  string
	UpdatedAt     time.Time
}

func (SyncState) TableName() string {
	return "sync_state"
}

// Importer pulls manga titles and their anime relations from AniList and
// upserts them as License / MangaWork / AnimeAdaptation rows. Licenses are
// matched by external id, so re-running an import refreshes rather than
// duplicates.
type Importer struct {
	client *Client
	db     *gorm.DB
	cfg    ImportConfig
	logger *slog.Logger
}

func NewImporter(db *gorm.DB, cfg ImportConfig, logger *slog.Logger) *Importer {
	return &Importer{
		client: NewClient(),
		db:     db,
		cfg:    cfg.withDefaults(),
		logger: logger,
	}
}

// Run walks API pages until the title limit is reached, writing each title
// through the worker pool.
func (imp *Importer) Run(ctx context.Context) error {
	if err := imp.db.AutoMigrate(&SyncState{}); err != nil {
		return fmt.Errorf("failed to migrate sync state: %w", err)
	}
	imp.markRun("running", 0, nil)

	pool := NewWorkerPool(imp.cfg.Workers, imp.logger)
	pool.Start()

	imported := 0
	page := 1
	var runErr error
	for imported < imp.cfg.Limit {
		pageData, err := imp.client.FetchMangaPage(ctx, page, imp.cfg.PageSize)
		if err != nil {
			runErr = err
			break
		}

		for _, media := range pageData.Media {
			if imported >= imp.cfg.Limit {
				break
			}
			imported++
			m := media
			pool.Submit(func(taskCtx context.Context) error {
				return imp.importOne(taskCtx, m)
			})
		}

		if !pageData.PageInfo.HasNextPage {
			break
		}
		page++
	}

	pool.Wait()

	if runErr != nil {
		imp.markRun("failed", page, runErr)
		return runErr
	}
	imp.markRun("completed", page, nil)
	imp.logger.Info("import finished", "titles", imported, "pages", page)
	return nil
}

func (imp *Importer) importOne(ctx context.Context, media MediaData) error {
	title, err := ExtractTitle(media)
	if err != nil {
		return err
	}
	if err := imp.storeTitle(ctx, title); err != nil {
		return fmt.Errorf("failed to store %q: %w", title.Title, err)
	}
	imp.logger.Info("imported title", "title", title.Title,
		"external_id", title.ExternalID, "adaptations", len(title.Adaptations))
	return nil
}

// storeTitle upserts the license and its children in one transaction.
func (imp *Importer) storeTitle(ctx context.Context, title *ImportedTitle) error {
	return imp.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var license models.License
		err := tx.Where("external_id = ?", title.ExternalID).First(&license).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			license = models.License{Title: title.Title, ExternalID: &title.ExternalID}
			if err := tx.Create(&license).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&license).Update("title", title.Title).Error; err != nil {
				return err
			}
		}

		var work models.MangaWork
		err = tx.Where("license_id = ? AND title = ?", license.ID, title.Title).First(&work).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			work = models.MangaWork{
				LicenseID: license.ID,
				Title:     title.Title,
				Authors:   title.Authors,
				Volumes:   title.Volumes,
				Status:    title.Status,
			}
			if err := tx.Create(&work).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			work.Authors = title.Authors
			work.Volumes = title.Volumes
			work.Status = title.Status
			if err := tx.Save(&work).Error; err != nil {
				return err
			}
		}

		for _, imported := range title.Adaptations {
			var adaptation models.AnimeAdaptation
			err := tx.Where("license_id = ? AND title = ?", license.ID, imported.Title).
				First(&adaptation).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				adaptation = models.AnimeAdaptation{
					LicenseID:      license.ID,
					Title:          imported.Title,
					AdaptationType: imported.AdaptationType,
					Episodes:       imported.Episodes,
					Duration:       imported.Duration,
					RelationType:   imported.RelationType,
				}
				if err := tx.Create(&adaptation).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				adaptation.AdaptationType = imported.AdaptationType
				adaptation.Episodes = imported.Episodes
				adaptation.Duration = imported.Duration
				adaptation.RelationType = imported.RelationType
				if err := tx.Omit("Seasons").Save(&adaptation).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (imp *Importer) markRun(status string, page int, runErr error) {
	now := time.Now()
	update := map[string]any{
		"last_run_at": now,
		"last_page":   page,
		"status":      status,
	}
	if status == "completed" {
		update["last_success_at"] = now
		update["error_message"] = ""
	}
	if runErr != nil {
		update["error_message"] = runErr.Error()
	}

	err := imp.db.Where("sync_type = ?", syncTypeLicenses).
		Assign(update).
		FirstOrCreate(&SyncState{}, SyncState{SyncType: syncTypeLicenses}).Error
	if err != nil {
		imp.logger.Error("failed to record sync state", "error", err)
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"adaptrack/internal/api/models"

	"gorm.io/gorm"
)

type AnimeRepo struct {
	db *gorm.DB
}

func NewAnimeRepo(db *gorm.DB) *AnimeRepo {
	return &AnimeRepo{db: db}
}

// CoverageUpdate carries merged manga-to-anime coverage bounds. The Set
// flags distinguish "leave unchanged" from "store this value (or NULL)".
type CoverageUpdate struct {
	FromSet bool
	From    *int
	ToSet   bool
	To      *int
}

// Touches reports whether the update would change either bound.
func (c CoverageUpdate) Touches() bool {
	return c.FromSet || c.ToSet
}

func (r *AnimeRepo) GetAdaptation(ctx context.Context, id string) (*models.AnimeAdaptation, error) {
	var a models.AnimeAdaptation
	if err := r.db.WithContext(ctx).Preload("Seasons").First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnimeRepo) ListAdaptationsByLicense(ctx context.Context, licenseID string) ([]models.AnimeAdaptation, error) {
	var list []models.AnimeAdaptation
	if err := r.db.WithContext(ctx).
		Preload("Seasons").
		Where("license_id = ?", licenseID).
		Order("created_at asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list adaptations: %w", err)
	}
	return list, nil
}

func (r *AnimeRepo) CreateAdaptation(ctx context.Context, a *models.AnimeAdaptation) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create adaptation: %w", err)
	}
	return nil
}

func (r *AnimeRepo) UpdateAdaptation(ctx context.Context, id string, a *models.AnimeAdaptation) error {
	a.ID = id
	if err := r.db.WithContext(ctx).Omit("Seasons").Save(a).Error; err != nil {
		return fmt.Errorf("update adaptation: %w", err)
	}
	return nil
}

// DeleteAdaptation removes the adaptation and its seasons in one
// transaction.
func (r *AnimeRepo) DeleteAdaptation(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Begin()
	var a models.AnimeAdaptation
	if err := tx.First(&a, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("anime_adaptation_id = ?", id).Delete(&models.AnimeSeason{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete seasons: %w", err)
	}
	if err := tx.Delete(&a).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete adaptation: %w", err)
	}
	return tx.Commit().Error
}

// SaveAdaptationWithCoverage persists the adaptation and, when the coverage
// update touches either bound, applies it to the first MangaToAnime row for
// the adaptation (ordered by id). Both writes share one transaction so a
// failed link update rolls the adaptation update back too. Returns how many
// link rows exist so the caller can log skipped or ambiguous cascades; no
// link row is ever created here.
func (r *AnimeRepo) SaveAdaptationWithCoverage(ctx context.Context, a *models.AnimeAdaptation, cov CoverageUpdate) (linkCount int64, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Seasons").Save(a).Error; err != nil {
			return fmt.Errorf("update adaptation: %w", err)
		}
		if !cov.Touches() {
			return nil
		}
		if err := tx.Model(&models.MangaToAnime{}).
			Where("anime_adaptation_id = ?", a.ID).
			Count(&linkCount).Error; err != nil {
			return fmt.Errorf("count links: %w", err)
		}
		if linkCount == 0 {
			return nil
		}
		var link models.MangaToAnime
		if err := tx.Where("anime_adaptation_id = ?", a.ID).
			Order("id asc").
			First(&link).Error; err != nil {
			return fmt.Errorf("load link: %w", err)
		}
		if cov.FromSet {
			link.CoverageFromVolume = cov.From
		}
		if cov.ToSet {
			link.CoverageToVolume = cov.To
		}
		if err := tx.Save(&link).Error; err != nil {
			return fmt.Errorf("update link coverage: %w", err)
		}
		return nil
	})
	return linkCount, err
}

func (r *AnimeRepo) GetSeason(ctx context.Context, id string) (*models.AnimeSeason, error) {
	var s models.AnimeSeason
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AnimeRepo) CreateSeason(ctx context.Context, s *models.AnimeSeason) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create season: %w", err)
	}
	return nil
}

func (r *AnimeRepo) UpdateSeason(ctx context.Context, id string, s *models.AnimeSeason) error {
	s.ID = id
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return fmt.Errorf("update season: %w", err)
	}
	return nil
}

func (r *AnimeRepo) DeleteSeason(ctx context.Context, id string) error {
	var s models.AnimeSeason
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&s).Error; err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	return nil
}

func (r *AnimeRepo) CreateMangaLink(ctx context.Context, l *models.MangaToAnime) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("create manga link: %w", err)
	}
	return nil
}

func (r *AnimeRepo) ListMangaLinks(ctx context.Context, animeAdaptationID string) ([]models.MangaToAnime, error) {
	var list []models.MangaToAnime
	if err := r.db.WithContext(ctx).
		Where("anime_adaptation_id = ?", animeAdaptationID).
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list manga links: %w", err)
	}
	return list, nil
}

// IsNotFound reports whether err is the store's missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

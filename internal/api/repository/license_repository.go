package repository

import (
	"context"
	"fmt"
	"strings"

	"adaptrack/internal/api/models"

	"gorm.io/gorm"
)

type LicenseRepo struct {
	db *gorm.DB
}

func NewLicenseRepo(db *gorm.DB) *LicenseRepo {
	return &LicenseRepo{db: db}
}

func (r *LicenseRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.License, int64, error) {
	var list []models.License
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.License{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *LicenseRepo) GetByID(ctx context.Context, id string) (*models.License, error) {
	var l models.License
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LicenseRepo) Create(ctx context.Context, l *models.License) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("create license: %w", err)
	}
	return nil
}

func (r *LicenseRepo) Update(ctx context.Context, id string, l *models.License) error {
	l.ID = id
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		return fmt.Errorf("update license: %w", err)
	}
	return nil
}

func (r *LicenseRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.License{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete license: %w", err)
	}
	return nil
}

// Suggest returns lightweight {id, title} rows whose title contains the
// query, case-insensitive, capped at limit.
func (r *LicenseRepo) Suggest(ctx context.Context, query string, limit int) ([]models.License, error) {
	var list []models.License
	p := "%" + strings.TrimSpace(query) + "%"
	if err := r.db.WithContext(ctx).
		Select("id", "title").
		Where("title ILIKE ?", p).
		Order("title asc").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("suggest licenses: %w", err)
	}
	return list, nil
}

// SearchDetailed returns the full License trees matching the query:
// mangas with their parts, adaptations with their seasons, plus link rows
// hanging off the works and parts.
func (r *LicenseRepo) SearchDetailed(ctx context.Context, query string) ([]models.License, error) {
	var list []models.License
	p := "%" + strings.TrimSpace(query) + "%"
	if err := r.db.WithContext(ctx).
		Preload("Mangas.AnimeLinks").
		Preload("Mangas.Parts.AnimeLinks").
		Preload("AnimeAdaptations.Seasons").
		Where("title ILIKE ?", p).
		Order("title asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search licenses: %w", err)
	}
	return list, nil
}

package repository

import (
	"context"
	"fmt"

	"adaptrack/internal/api/models"

	"gorm.io/gorm"
)

type MangaRepo struct {
	db *gorm.DB
}

func NewMangaRepo(db *gorm.DB) *MangaRepo {
	return &MangaRepo{db: db}
}

func (r *MangaRepo) GetWork(ctx context.Context, id string) (*models.MangaWork, error) {
	var m models.MangaWork
	if err := r.db.WithContext(ctx).Preload("Parts").First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MangaRepo) ListWorksByLicense(ctx context.Context, licenseID string) ([]models.MangaWork, error) {
	var list []models.MangaWork
	if err := r.db.WithContext(ctx).
		Preload("Parts").
		Where("license_id = ?", licenseID).
		Order("created_at asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list manga works: %w", err)
	}
	return list, nil
}

func (r *MangaRepo) CreateWork(ctx context.Context, m *models.MangaWork) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create manga work: %w", err)
	}
	return nil
}

func (r *MangaRepo) UpdateWork(ctx context.Context, id string, m *models.MangaWork) error {
	m.ID = id
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("update manga work: %w", err)
	}
	return nil
}

// DeleteWork removes the work and its parts in one transaction. Link rows
// referencing the parts go with them via the DB-level cascade.
func (r *MangaRepo) DeleteWork(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Begin()
	var m models.MangaWork
	if err := tx.First(&m, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("manga_id = ?", id).Delete(&models.MangaPart{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete manga parts: %w", err)
	}
	if err := tx.Delete(&m).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete manga work: %w", err)
	}
	return tx.Commit().Error
}

func (r *MangaRepo) GetPart(ctx context.Context, id string) (*models.MangaPart, error) {
	var p models.MangaPart
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MangaRepo) CreatePart(ctx context.Context, p *models.MangaPart) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create manga part: %w", err)
	}
	return nil
}

func (r *MangaRepo) UpdatePart(ctx context.Context, id string, p *models.MangaPart) error {
	p.ID = id
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update manga part: %w", err)
	}
	return nil
}

func (r *MangaRepo) DeletePart(ctx context.Context, id string) error {
	var p models.MangaPart
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&p).Error; err != nil {
		return fmt.Errorf("delete manga part: %w", err)
	}
	return nil
}

func (r *MangaRepo) CreatePartLink(ctx context.Context, l *models.MangaPartToAnime) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("create part link: %w", err)
	}
	return nil
}

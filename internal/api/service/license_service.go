package service

import (
	"context"
	"strings"

	"adaptrack/internal/api/dto"
	"adaptrack/internal/api/models"
	"adaptrack/internal/api/repository"
)

type LicenseService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.License, int64, error)
	GetByID(ctx context.Context, id string) (*models.License, error)
	Create(ctx context.Context, in dto.CreateLicenseDTO) (*models.License, error)
	Update(ctx context.Context, id string, in dto.UpdateLicenseDTO) (*models.License, error)
	Delete(ctx context.Context, id string) (*models.License, error)
}

type licenseService struct {
	repo *repository.LicenseRepo
}

func NewLicenseService(r *repository.LicenseRepo) LicenseService {
	return &licenseService{repo: r}
}

func (s *licenseService) GetAll(ctx context.Context, page, pageSize int) ([]models.License, int64, error) {
	return s.repo.GetAll(ctx, page, pageSize)
}

func (s *licenseService) GetByID(ctx context.Context, id string) (*models.License, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "license", ID: id}
		}
		return nil, err
	}
	return l, nil
}

func (s *licenseService) Create(ctx context.Context, in dto.CreateLicenseDTO) (*models.License, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &ValidationError{Reason: "title is required"}
	}
	l := in.ToModel()
	if err := s.repo.Create(ctx, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *licenseService) Update(ctx context.Context, id string, in dto.UpdateLicenseDTO) (*models.License, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, &ValidationError{Reason: "title must not be empty", Received: *in.Title}
	}
	in.ApplyTo(existing)
	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *licenseService) Delete(ctx context.Context, id string) (*models.License, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}

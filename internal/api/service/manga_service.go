package service

import (
	"context"
	"log/slog"
	"strings"

	"adaptrack/internal/api/dto"
	"adaptrack/internal/api/models"
	"adaptrack/internal/api/repository"
)

type MangaService interface {
	GetWork(ctx context.Context, id string) (*models.MangaWork, error)
	ListByLicense(ctx context.Context, licenseID string) ([]models.MangaWork, error)
	CreateWork(ctx context.Context, in dto.CreateMangaWorkDTO) (*models.MangaWork, error)
	UpdateWork(ctx context.Context, id string, in dto.UpdateMangaWorkDTO) (*models.MangaWork, error)
	DeleteWork(ctx context.Context, id string) (*models.MangaWork, error)

	GetPart(ctx context.Context, id string) (*models.MangaPart, error)
	CreatePart(ctx context.Context, in dto.CreateMangaPartDTO) (*models.MangaPart, error)
	UpdatePart(ctx context.Context, id string, in dto.UpdateMangaPartDTO) (*models.MangaPart, error)
	DeletePart(ctx context.Context, id string) (*models.MangaPart, error)

	CreatePartLink(ctx context.Context, in dto.CreateMangaPartToAnimeDTO) (*models.MangaPartToAnime, error)
}

type mangaService struct {
	repo     *repository.MangaRepo
	licenses *repository.LicenseRepo
	logger   *slog.Logger
}

func NewMangaService(r *repository.MangaRepo, licenses *repository.LicenseRepo, logger *slog.Logger) MangaService {
	return &mangaService{repo: r, licenses: licenses, logger: logger}
}

func (s *mangaService) GetWork(ctx context.Context, id string) (*models.MangaWork, error) {
	m, err := s.repo.GetWork(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "manga", ID: id}
		}
		return nil, err
	}
	return m, nil
}

func (s *mangaService) ListByLicense(ctx context.Context, licenseID string) ([]models.MangaWork, error) {
	if _, err := s.licenses.GetByID(ctx, licenseID); err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "license", ID: licenseID}
		}
		return nil, err
	}
	return s.repo.ListWorksByLicense(ctx, licenseID)
}

func (s *mangaService) CreateWork(ctx context.Context, in dto.CreateMangaWorkDTO) (*models.MangaWork, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &ValidationError{Reason: "title is required"}
	}
	if err := validateNumeric("volumes", in.Volumes); err != nil {
		return nil, err
	}
	if err := validateStatus(in.Status); err != nil {
		return nil, err
	}
	if in.Volumes.Provided() && in.Volumes.Value < 0 {
		return nil, &ValidationError{Reason: "volumes must be >= 0", Received: in.Volumes.Value}
	}
	if _, err := s.licenses.GetByID(ctx, in.LicenseID); err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "license", ID: in.LicenseID}
		}
		return nil, err
	}
	m := in.ToModel()
	if err := s.repo.CreateWork(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *mangaService) UpdateWork(ctx context.Context, id string, in dto.UpdateMangaWorkDTO) (*models.MangaWork, error) {
	existing, err := s.GetWork(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateNumeric("volumes", in.Volumes); err != nil {
		return nil, err
	}
	if err := validateStatus(in.Status.Ptr()); err != nil {
		return nil, err
	}
	if in.Volumes.Provided() && in.Volumes.Value < 0 {
		return nil, &ValidationError{Reason: "volumes must be >= 0", Received: in.Volumes.Value}
	}
	in.ApplyTo(existing)
	if err := s.repo.UpdateWork(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *mangaService) DeleteWork(ctx context.Context, id string) (*models.MangaWork, error) {
	existing, err := s.GetWork(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteWork(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info("deleted manga work with its parts", "manga_id", id, "parts", len(existing.Parts))
	return existing, nil
}

func (s *mangaService) GetPart(ctx context.Context, id string) (*models.MangaPart, error) {
	p, err := s.repo.GetPart(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "part", ID: id}
		}
		return nil, err
	}
	return p, nil
}

func (s *mangaService) CreatePart(ctx context.Context, in dto.CreateMangaPartDTO) (*models.MangaPart, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &ValidationError{Reason: "title is required"}
	}
	for _, f := range []struct {
		name string
		val  dto.OptionalInt
	}{
		{"partNumber", in.PartNumber},
		{"startVolume", in.StartVolume},
		{"endVolume", in.EndVolume},
	} {
		if err := validateNumeric(f.name, f.val); err != nil {
			return nil, err
		}
	}
	if err := validateStatus(in.Status); err != nil {
		return nil, err
	}

	if _, err := s.GetWork(ctx, in.MangaID); err != nil {
		return nil, err
	}

	p := models.MangaPart{
		MangaID:     in.MangaID,
		LicenseID:   in.LicenseID,
		Title:       in.Title,
		PartNumber:  in.PartNumber.Merge(nil),
		StartVolume: in.StartVolume.Merge(nil),
		EndVolume:   in.EndVolume.Merge(nil),
		Status:      in.Status,
	}
	if err := validatePartBounds(&p); err != nil {
		return nil, err
	}
	deriveVolumes(&p)

	if err := s.repo.CreatePart(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *mangaService) UpdatePart(ctx context.Context, id string, in dto.UpdateMangaPartDTO) (*models.MangaPart, error) {
	existing, err := s.GetPart(ctx, id)
	if err != nil {
		return nil, err
	}
	merged, err := mergePart(existing, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePart(ctx, id, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// mergePart validates the provided part fields against the stored row and
// produces the merged entity, recomputing the derived volume count whenever
// both bounds resolve, whether a bound came from this request or the stored
// row. An explicit volumes value only sticks when the bounds cannot derive
// one.
func mergePart(existing *models.MangaPart, in dto.UpdateMangaPartDTO) (*models.MangaPart, error) {
	for _, f := range []struct {
		name string
		val  dto.OptionalInt
	}{
		{"partNumber", in.PartNumber},
		{"startVolume", in.StartVolume},
		{"endVolume", in.EndVolume},
		{"volumes", in.Volumes},
	} {
		if err := validateNumeric(f.name, f.val); err != nil {
			return nil, err
		}
	}
	if err := validateStatus(in.Status.Ptr()); err != nil {
		return nil, err
	}

	merged := *existing
	if in.Title != nil {
		merged.Title = *in.Title
	}
	merged.Status = in.Status.MergeNullable(existing.Status)
	merged.PartNumber = in.PartNumber.Merge(existing.PartNumber)
	merged.StartVolume = in.StartVolume.Merge(existing.StartVolume)
	merged.EndVolume = in.EndVolume.Merge(existing.EndVolume)

	if err := validatePartBounds(&merged); err != nil {
		return nil, err
	}

	if merged.StartVolume != nil && merged.EndVolume != nil {
		deriveVolumes(&merged)
	} else if in.Volumes.Provided() {
		v := in.Volumes.Value
		merged.Volumes = &v
	}
	return &merged, nil
}

func (s *mangaService) DeletePart(ctx context.Context, id string) (*models.MangaPart, error) {
	existing, err := s.GetPart(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeletePart(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *mangaService) CreatePartLink(ctx context.Context, in dto.CreateMangaPartToAnimeDTO) (*models.MangaPartToAnime, error) {
	if _, err := s.GetPart(ctx, in.MangaPartID); err != nil {
		return nil, err
	}
	l := models.MangaPartToAnime{
		MangaPartID:       in.MangaPartID,
		AnimeAdaptationID: in.AnimeAdaptationID,
		CoverageComplete:  in.CoverageComplete.Value,
	}
	if err := s.repo.CreatePartLink(ctx, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// deriveVolumes keeps the stored tome count consistent with the bounds:
// volumes = endVolume - startVolume + 1 whenever both are set.
func deriveVolumes(p *models.MangaPart) {
	if p.StartVolume != nil && p.EndVolume != nil {
		v := *p.EndVolume - *p.StartVolume + 1
		p.Volumes = &v
	}
}

package service

import (
	"context"
	"log/slog"
	"strings"

	"adaptrack/internal/api/dto"
	"adaptrack/internal/api/models"
	"adaptrack/internal/api/repository"
)

type AnimeService interface {
	GetAdaptation(ctx context.Context, id string) (*models.AnimeAdaptation, error)
	ListByLicense(ctx context.Context, licenseID string) ([]models.AnimeAdaptation, error)
	CreateAdaptation(ctx context.Context, in dto.CreateAnimeAdaptationDTO) (*models.AnimeAdaptation, error)
	UpdateAdaptationFields(ctx context.Context, id string, in dto.UpdateAnimeAdaptationDTO) (*models.AnimeAdaptation, error)
	DeleteAdaptation(ctx context.Context, id string) (*models.AnimeAdaptation, error)

	GetSeason(ctx context.Context, id string) (*models.AnimeSeason, error)
	CreateSeason(ctx context.Context, in dto.CreateAnimeSeasonDTO) (*models.AnimeSeason, error)
	UpdateSeason(ctx context.Context, id string, in dto.UpdateAnimeSeasonDTO) (*models.AnimeSeason, error)
	DeleteSeason(ctx context.Context, id string) (*models.AnimeSeason, error)

	CreateMangaLink(ctx context.Context, in dto.CreateMangaToAnimeDTO) (*models.MangaToAnime, error)
	GetMangaLinks(ctx context.Context, animeAdaptationID string) ([]models.MangaToAnime, error)
}

type animeService struct {
	repo     *repository.AnimeRepo
	mangas   *repository.MangaRepo
	licenses *repository.LicenseRepo
	logger   *slog.Logger
}

func NewAnimeService(r *repository.AnimeRepo, mangas *repository.MangaRepo, licenses *repository.LicenseRepo, logger *slog.Logger) AnimeService {
	return &animeService{repo: r, mangas: mangas, licenses: licenses, logger: logger}
}

func (s *animeService) GetAdaptation(ctx context.Context, id string) (*models.AnimeAdaptation, error) {
	a, err := s.repo.GetAdaptation(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "anime", ID: id}
		}
		return nil, err
	}
	return a, nil
}

func (s *animeService) ListByLicense(ctx context.Context, licenseID string) ([]models.AnimeAdaptation, error) {
	if _, err := s.licenses.GetByID(ctx, licenseID); err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "license", ID: licenseID}
		}
		return nil, err
	}
	return s.repo.ListAdaptationsByLicense(ctx, licenseID)
}

func (s *animeService) CreateAdaptation(ctx context.Context, in dto.CreateAnimeAdaptationDTO) (*models.AnimeAdaptation, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, &ValidationError{Reason: "title is required"}
	}
	if err := validateNumeric("episodes", in.Episodes); err != nil {
		return nil, err
	}
	if err := validateNumeric("duration", in.Duration); err != nil {
		return nil, err
	}
	if in.Episodes.Provided() && in.Episodes.Value < 0 {
		return nil, &ValidationError{Reason: "episodes must be >= 0", Received: in.Episodes.Value}
	}
	if err := validateAdaptationType(in.AdaptationType); err != nil {
		return nil, err
	}
	if err := validateFidelity(in.Fidelity); err != nil {
		return nil, err
	}
	if err := validateRelationType(in.RelationType); err != nil {
		return nil, err
	}
	if _, err := s.licenses.GetByID(ctx, in.LicenseID); err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "license", ID: in.LicenseID}
		}
		return nil, err
	}
	a := in.ToModel()
	if err := s.repo.CreateAdaptation(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *animeService) UpdateAdaptationFields(ctx context.Context, id string, in dto.UpdateAnimeAdaptationDTO) (*models.AnimeAdaptation, error) {
	existing, err := s.GetAdaptation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateNumeric("episodes", in.Episodes); err != nil {
		return nil, err
	}
	if err := validateNumeric("duration", in.Duration); err != nil {
		return nil, err
	}
	if in.Episodes.Provided() && in.Episodes.Value < 0 {
		return nil, &ValidationError{Reason: "episodes must be >= 0", Received: in.Episodes.Value}
	}
	if err := validateAdaptationType(in.AdaptationType.Ptr()); err != nil {
		return nil, err
	}
	if err := validateFidelity(in.Fidelity.Ptr()); err != nil {
		return nil, err
	}
	if err := validateRelationType(in.RelationType.Ptr()); err != nil {
		return nil, err
	}
	in.ApplyTo(existing)
	if err := s.repo.UpdateAdaptation(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *animeService) DeleteAdaptation(ctx context.Context, id string) (*models.AnimeAdaptation, error) {
	existing, err := s.GetAdaptation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteAdaptation(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info("deleted adaptation with its seasons", "anime_id", id, "seasons", len(existing.Seasons))
	return existing, nil
}

func (s *animeService) GetSeason(ctx context.Context, id string) (*models.AnimeSeason, error) {
	season, err := s.repo.GetSeason(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "season", ID: id}
		}
		return nil, err
	}
	return season, nil
}

func (s *animeService) CreateSeason(ctx context.Context, in dto.CreateAnimeSeasonDTO) (*models.AnimeSeason, error) {
	for _, f := range []struct {
		name string
		val  dto.OptionalInt
	}{
		{"seasonNumber", in.SeasonNumber},
		{"episodes", in.Episodes},
		{"coverageFromVolume", in.CoverageFromVolume},
		{"coverageToVolume", in.CoverageToVolume},
	} {
		if err := validateNumeric(f.name, f.val); err != nil {
			return nil, err
		}
	}
	if err := validateFidelity(in.Fidelity); err != nil {
		return nil, err
	}
	if err := validateRelationType(in.RelationType); err != nil {
		return nil, err
	}
	if in.SeasonNumber.Provided() && in.SeasonNumber.Value < 1 {
		return nil, &ValidationError{Reason: "seasonNumber must be >= 1", Received: in.SeasonNumber.Value}
	}
	if in.Episodes.Provided() && in.Episodes.Value < 1 {
		return nil, &ValidationError{Reason: "episodes must be >= 1", Received: in.Episodes.Value}
	}

	if _, err := s.GetAdaptation(ctx, in.AnimeAdaptationID); err != nil {
		return nil, err
	}

	season := models.AnimeSeason{
		AnimeAdaptationID:  in.AnimeAdaptationID,
		Fidelity:           in.Fidelity,
		CoverageFromVolume: in.CoverageFromVolume.MergeNullable(nil),
		CoverageToVolume:   in.CoverageToVolume.MergeNullable(nil),
		Notes:              in.Notes,
		RelationType:       in.RelationType,
	}
	if in.SeasonNumber.Provided() {
		season.SeasonNumber = in.SeasonNumber.Value
	}
	if in.Episodes.Provided() {
		season.Episodes = in.Episodes.Value
	}
	if err := validateCoverageOrder(season.CoverageFromVolume, season.CoverageToVolume); err != nil {
		return nil, err
	}

	if err := s.repo.CreateSeason(ctx, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

func (s *animeService) UpdateSeason(ctx context.Context, id string, in dto.UpdateAnimeSeasonDTO) (*models.AnimeSeason, error) {
	existing, err := s.GetSeason(ctx, id)
	if err != nil {
		return nil, err
	}
	merged, err := mergeSeason(existing, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSeason(ctx, id, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// mergeSeason validates the provided season fields against the stored row
// and produces the merged entity. Shared between the season route and the
// type-dispatched adaptation route.
func mergeSeason(existing *models.AnimeSeason, in dto.UpdateAnimeSeasonDTO) (*models.AnimeSeason, error) {
	for _, f := range []struct {
		name string
		val  dto.OptionalInt
	}{
		{"seasonNumber", in.SeasonNumber},
		{"episodes", in.Episodes},
		{"coverageFromVolume", in.CoverageFromVolume},
		{"coverageToVolume", in.CoverageToVolume},
	} {
		if err := validateNumeric(f.name, f.val); err != nil {
			return nil, err
		}
	}
	if err := validateFidelity(in.Fidelity.Ptr()); err != nil {
		return nil, err
	}
	if err := validateRelationType(in.RelationType.Ptr()); err != nil {
		return nil, err
	}
	if in.SeasonNumber.Provided() && in.SeasonNumber.Value < 1 {
		return nil, &ValidationError{Reason: "seasonNumber must be >= 1", Received: in.SeasonNumber.Value}
	}
	if in.Episodes.Provided() && in.Episodes.Value < 1 {
		return nil, &ValidationError{Reason: "episodes must be >= 1", Received: in.Episodes.Value}
	}

	merged := *existing
	if in.SeasonNumber.Provided() {
		merged.SeasonNumber = in.SeasonNumber.Value
	}
	if in.Episodes.Provided() {
		merged.Episodes = in.Episodes.Value
	}
	merged.Fidelity = in.Fidelity.MergeNullable(existing.Fidelity)
	merged.Notes = in.Notes.MergeNullable(existing.Notes)
	merged.RelationType = in.RelationType.MergeNullable(existing.RelationType)
	merged.CoverageFromVolume = in.CoverageFromVolume.MergeNullable(existing.CoverageFromVolume)
	merged.CoverageToVolume = in.CoverageToVolume.MergeNullable(existing.CoverageToVolume)
	if err := validateCoverageOrder(merged.CoverageFromVolume, merged.CoverageToVolume); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *animeService) DeleteSeason(ctx context.Context, id string) (*models.AnimeSeason, error) {
	existing, err := s.GetSeason(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteSeason(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *animeService) CreateMangaLink(ctx context.Context, in dto.CreateMangaToAnimeDTO) (*models.MangaToAnime, error) {
	if err := validateNumeric("coverageFromVolume", in.CoverageFromVolume); err != nil {
		return nil, err
	}
	if err := validateNumeric("coverageToVolume", in.CoverageToVolume); err != nil {
		return nil, err
	}
	if _, err := s.GetAdaptation(ctx, in.AnimeAdaptationID); err != nil {
		return nil, err
	}
	if _, err := s.mangas.GetWork(ctx, in.MangaID); err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "manga", ID: in.MangaID}
		}
		return nil, err
	}
	l := models.MangaToAnime{
		MangaID:            in.MangaID,
		AnimeAdaptationID:  in.AnimeAdaptationID,
		CoverageFromVolume: in.CoverageFromVolume.MergeNullable(nil),
		CoverageToVolume:   in.CoverageToVolume.MergeNullable(nil),
	}
	if err := validateCoverageOrder(l.CoverageFromVolume, l.CoverageToVolume); err != nil {
		return nil, err
	}
	if err := s.repo.CreateMangaLink(ctx, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *animeService) GetMangaLinks(ctx context.Context, animeAdaptationID string) ([]models.MangaToAnime, error) {
	if _, err := s.GetAdaptation(ctx, animeAdaptationID); err != nil {
		return nil, err
	}
	return s.repo.ListMangaLinks(ctx, animeAdaptationID)
}

package service

import (
	"context"
	"log/slog"

	"adaptrack/internal/api/dto"
	"adaptrack/internal/api/models"
	"adaptrack/internal/api/repository"
)

// Type discriminators accepted by the adaptation update route.
const (
	TargetSeason = "season"
	TargetAnime  = "anime"
)

var adaptationTargets = []string{TargetSeason, TargetAnime}

// AdaptationService is the single entry point for coverage-aware adaptation
// updates. It dispatches on the request's type discriminator, merges the
// provided fields into the loaded entity and, for top-level adaptations,
// cascades volume-coverage edits to the linked MangaToAnime row.
type AdaptationService interface {
	UpdateAdaptation(ctx context.Context, id string, in dto.UpdateAdaptationDTO) (any, error)
}

// AdaptationStore is the slice of the anime repository this service needs.
// *repository.AnimeRepo satisfies it.
type AdaptationStore interface {
	GetSeason(ctx context.Context, id string) (*models.AnimeSeason, error)
	UpdateSeason(ctx context.Context, id string, s *models.AnimeSeason) error
	GetAdaptation(ctx context.Context, id string) (*models.AnimeAdaptation, error)
	SaveAdaptationWithCoverage(ctx context.Context, a *models.AnimeAdaptation, cov repository.CoverageUpdate) (int64, error)
}

type adaptationService struct {
	anime  AdaptationStore
	logger *slog.Logger
}

func NewAdaptationService(anime AdaptationStore, logger *slog.Logger) AdaptationService {
	return &adaptationService{anime: anime, logger: logger}
}

func (s *adaptationService) UpdateAdaptation(ctx context.Context, id string, in dto.UpdateAdaptationDTO) (any, error) {
	switch in.Type {
	case TargetSeason:
		return s.updateSeason(ctx, id, in)
	case TargetAnime:
		return s.updateAnime(ctx, id, in)
	default:
		return nil, &ValidationError{
			Reason:      "unknown type",
			Received:    in.Type,
			ValidValues: adaptationTargets,
		}
	}
}

func (s *adaptationService) updateSeason(ctx context.Context, id string, in dto.UpdateAdaptationDTO) (any, error) {
	existing, err := s.anime.GetSeason(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Kind: TargetSeason, ID: id}
		}
		return nil, err
	}
	merged, err := mergeSeason(existing, dto.UpdateAnimeSeasonDTO{
		Episodes:           in.Episodes,
		CoverageFromVolume: in.CoverageFromVolume,
		CoverageToVolume:   in.CoverageToVolume,
	})
	if err != nil {
		return nil, err
	}
	if err := s.anime.UpdateSeason(ctx, id, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *adaptationService) updateAnime(ctx context.Context, id string, in dto.UpdateAdaptationDTO) (any, error) {
	existing, err := s.anime.GetAdaptation(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, &NotFoundError{Kind: TargetAnime, ID: id}
		}
		return nil, err
	}
	if err := validateNumeric("episodes", in.Episodes); err != nil {
		return nil, err
	}
	if err := validateNumeric("fromVolume", in.FromVolume); err != nil {
		return nil, err
	}
	if err := validateNumeric("toVolume", in.ToVolume); err != nil {
		return nil, err
	}
	if in.Episodes.Provided() {
		if in.Episodes.Value < 0 {
			return nil, &ValidationError{Reason: "episodes must be >= 0", Received: in.Episodes.Value}
		}
		existing.Episodes = in.Episodes.Value
	}

	cov := repository.CoverageUpdate{
		FromSet: in.FromVolume.Set,
		From:    in.FromVolume.MergeNullable(nil),
		ToSet:   in.ToVolume.Set,
		To:      in.ToVolume.MergeNullable(nil),
	}
	if cov.FromSet && cov.ToSet {
		if err := validateCoverageOrder(cov.From, cov.To); err != nil {
			return nil, err
		}
	}

	linkCount, err := s.anime.SaveAdaptationWithCoverage(ctx, existing, cov)
	if err != nil {
		return nil, err
	}
	if cov.Touches() {
		switch {
		case linkCount == 0:
			// Coverage edits without a link row are a silent no-op by
			// contract; a new link is never created here.
			s.logger.Info("no manga link for adaptation, coverage update skipped",
				"adaptation_id", id)
		case linkCount > 1:
			s.logger.Warn("multiple manga links for adaptation, updated the oldest",
				"adaptation_id", id, "link_count", linkCount)
		}
	}
	return existing, nil
}

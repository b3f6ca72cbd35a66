package service

import (
	"context"
	"log/slog"
	"strings"

	"adaptrack/internal/api/dto"
	"adaptrack/internal/api/models"
	"adaptrack/internal/api/repository"
)

// SuggestionLimit caps the lightweight lookup; detailed search is unbounded.
const SuggestionLimit = 10

// SuggestionCache is the optional read-through cache in front of the
// suggestion query. Implementations must be safe to call with a nil store
// miss; errors degrade to the database.
type SuggestionCache interface {
	Get(ctx context.Context, query string) ([]dto.SuggestionResponse, bool)
	Set(ctx context.Context, query string, results []dto.SuggestionResponse)
}

type SearchService interface {
	Suggest(ctx context.Context, query string) ([]dto.SuggestionResponse, error)
	Detailed(ctx context.Context, query string) ([]models.License, error)
}

type searchService struct {
	licenses *repository.LicenseRepo
	cache    SuggestionCache
	logger   *slog.Logger
}

// NewSearchService builds the title-lookup service. cache may be nil.
func NewSearchService(licenses *repository.LicenseRepo, cache SuggestionCache, logger *slog.Logger) SearchService {
	return &searchService{licenses: licenses, cache: cache, logger: logger}
}

func (s *searchService) Suggest(ctx context.Context, query string) ([]dto.SuggestionResponse, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, &ValidationError{Reason: "query parameter is required"}
	}

	key := strings.ToLower(q)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	list, err := s.licenses.Suggest(ctx, q, SuggestionLimit)
	if err != nil {
		return nil, err
	}
	results := make([]dto.SuggestionResponse, 0, len(list))
	for _, l := range list {
		results = append(results, dto.SuggestionResponse{ID: l.ID, Title: l.Title})
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, results)
	}
	return results, nil
}

func (s *searchService) Detailed(ctx context.Context, query string) ([]models.License, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, &ValidationError{Reason: "query parameter is required"}
	}
	return s.licenses.SearchDetailed(ctx, q)
}

package dto

import "adaptrack/internal/api/models"

// CreateAnimeAdaptationDTO used for POST /api/anime
type CreateAnimeAdaptationDTO struct {
	LicenseID      string      `json:"licenseId" binding:"required"`
	Title          string      `json:"title" binding:"required"`
	Studio         *string     `json:"studio,omitempty"`
	AdaptationType *string     `json:"adaptationType,omitempty"`
	Episodes       OptionalInt `json:"episodes,omitempty"`
	Duration       OptionalInt `json:"duration,omitempty"`
	Status         *string     `json:"status,omitempty"`
	Fidelity       *string     `json:"fidelity,omitempty"`
	RelationType   *string     `json:"relationType,omitempty"`
	Notes          *string     `json:"notes,omitempty"`
}

func (d CreateAnimeAdaptationDTO) ToModel() models.AnimeAdaptation {
	a := models.AnimeAdaptation{
		LicenseID:      d.LicenseID,
		Title:          d.Title,
		Studio:         d.Studio,
		AdaptationType: d.AdaptationType,
		Status:         d.Status,
		Fidelity:       d.Fidelity,
		RelationType:   d.RelationType,
		Notes:          d.Notes,
	}
	if d.Episodes.Provided() {
		a.Episodes = d.Episodes.Value
	}
	a.Duration = d.Duration.MergeNullable(nil)
	return a
}

// UpdateAnimeAdaptationDTO used for PUT /api/anime/:id (partial updates
// allowed; a present null clears the nullable fields)
type UpdateAnimeAdaptationDTO struct {
	Title          *string        `json:"title,omitempty"`
	Studio         OptionalString `json:"studio,omitempty"`
	AdaptationType OptionalString `json:"adaptationType,omitempty"`
	Episodes       OptionalInt    `json:"episodes,omitempty"`
	Duration       OptionalInt    `json:"duration,omitempty"`
	Status         OptionalString `json:"status,omitempty"`
	Fidelity       OptionalString `json:"fidelity,omitempty"`
	RelationType   OptionalString `json:"relationType,omitempty"`
	Notes          OptionalString `json:"notes,omitempty"`
}

func (d UpdateAnimeAdaptationDTO) ApplyTo(a *models.AnimeAdaptation) {
	if d.Title != nil {
		a.Title = *d.Title
	}
	a.Studio = d.Studio.MergeNullable(a.Studio)
	a.AdaptationType = d.AdaptationType.MergeNullable(a.AdaptationType)
	if d.Episodes.Provided() {
		a.Episodes = d.Episodes.Value
	}
	a.Duration = d.Duration.MergeNullable(a.Duration)
	a.Status = d.Status.MergeNullable(a.Status)
	a.Fidelity = d.Fidelity.MergeNullable(a.Fidelity)
	a.RelationType = d.RelationType.MergeNullable(a.RelationType)
	a.Notes = d.Notes.MergeNullable(a.Notes)
}

// CreateAnimeSeasonDTO used for POST /api/anime/season
type CreateAnimeSeasonDTO struct {
	AnimeAdaptationID  string      `json:"animeAdaptationId" binding:"required"`
	SeasonNumber       OptionalInt `json:"seasonNumber,omitempty"`
	Episodes           OptionalInt `json:"episodes,omitempty"`
	Fidelity           *string     `json:"fidelity,omitempty"`
	CoverageFromVolume OptionalInt `json:"coverageFromVolume,omitempty"`
	CoverageToVolume   OptionalInt `json:"coverageToVolume,omitempty"`
	Notes              *string     `json:"notes,omitempty"`
	RelationType       *string     `json:"relationType,omitempty"`
}

// UpdateAnimeSeasonDTO used for PUT /api/anime/season/:id
type UpdateAnimeSeasonDTO struct {
	SeasonNumber       OptionalInt    `json:"seasonNumber,omitempty"`
	Episodes           OptionalInt    `json:"episodes,omitempty"`
	Fidelity           OptionalString `json:"fidelity,omitempty"`
	CoverageFromVolume OptionalInt    `json:"coverageFromVolume,omitempty"`
	CoverageToVolume   OptionalInt    `json:"coverageToVolume,omitempty"`
	Notes              OptionalString `json:"notes,omitempty"`
	RelationType       OptionalString `json:"relationType,omitempty"`
}

// UpdateAdaptationDTO is the type-dispatched payload for PUT /api/adaptation/:id.
// The season branch reads coverageFromVolume/coverageToVolume, the anime
// branch reads fromVolume/toVolume; the asymmetry is part of the API contract.
type UpdateAdaptationDTO struct {
	Type               string      `json:"type"`
	Episodes           OptionalInt `json:"episodes,omitempty"`
	CoverageFromVolume OptionalInt `json:"coverageFromVolume,omitempty"`
	CoverageToVolume   OptionalInt `json:"coverageToVolume,omitempty"`
	FromVolume         OptionalInt `json:"fromVolume,omitempty"`
	ToVolume           OptionalInt `json:"toVolume,omitempty"`
}

// CreateMangaToAnimeDTO used for POST /api/anime/link
type CreateMangaToAnimeDTO struct {
	MangaID            string      `json:"mangaId" binding:"required"`
	AnimeAdaptationID  string      `json:"animeAdaptationId" binding:"required"`
	CoverageFromVolume OptionalInt `json:"coverageFromVolume,omitempty"`
	CoverageToVolume   OptionalInt `json:"coverageToVolume,omitempty"`
}

// CreateMangaPartToAnimeDTO used for POST /api/manga/part/link
type CreateMangaPartToAnimeDTO struct {
	MangaPartID       string       `json:"mangaPartId" binding:"required"`
	AnimeAdaptationID string       `json:"animeAdaptationId" binding:"required"`
	CoverageComplete  OptionalBool `json:"coverageComplete,omitempty"`
}

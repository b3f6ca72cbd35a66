package dto

import (
	"time"

	"adaptrack/internal/api/models"
)

// CreateMangaWorkDTO used for POST /api/manga
type CreateMangaWorkDTO struct {
	LicenseID string      `json:"licenseId" binding:"required"`
	Title     string      `json:"title" binding:"required"`
	Authors   []string    `json:"authors,omitempty"`
	Volumes   OptionalInt `json:"volumes,omitempty"`
	Status    *string     `json:"status,omitempty"`
	StartDate *time.Time  `json:"startDate,omitempty"`
	EndDate   *time.Time  `json:"endDate,omitempty"`
	Publisher *string     `json:"publisher,omitempty"`
}

func (d CreateMangaWorkDTO) ToModel() models.MangaWork {
	m := models.MangaWork{
		LicenseID: d.LicenseID,
		Title:     d.Title,
		Authors:   d.Authors,
		Status:    d.Status,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Publisher: d.Publisher,
	}
	if d.Volumes.Provided() {
		m.Volumes = d.Volumes.Value
	}
	return m
}

// UpdateMangaWorkDTO used for PUT /api/manga/:id (partial updates allowed;
// a present null clears status and publisher)
type UpdateMangaWorkDTO struct {
	Title     *string        `json:"title,omitempty"`
	Authors   *[]string      `json:"authors,omitempty"`
	Volumes   OptionalInt    `json:"volumes,omitempty"`
	Status    OptionalString `json:"status,omitempty"`
	StartDate *time.Time     `json:"startDate,omitempty"`
	EndDate   *time.Time     `json:"endDate,omitempty"`
	Publisher OptionalString `json:"publisher,omitempty"`
}

func (d UpdateMangaWorkDTO) ApplyTo(m *models.MangaWork) {
	if d.Title != nil {
		m.Title = *d.Title
	}
	if d.Authors != nil {
		m.Authors = *d.Authors
	}
	if d.Volumes.Provided() {
		m.Volumes = d.Volumes.Value
	}
	m.Status = d.Status.MergeNullable(m.Status)
	if d.StartDate != nil {
		m.StartDate = d.StartDate
	}
	if d.EndDate != nil {
		m.EndDate = d.EndDate
	}
	m.Publisher = d.Publisher.MergeNullable(m.Publisher)
}

// CreateMangaPartDTO used for POST /api/manga/part
type CreateMangaPartDTO struct {
	MangaID     string      `json:"mangaId" binding:"required"`
	LicenseID   string      `json:"licenseId" binding:"required"`
	Title       string      `json:"title" binding:"required"`
	PartNumber  OptionalInt `json:"partNumber,omitempty"`
	StartVolume OptionalInt `json:"startVolume,omitempty"`
	EndVolume   OptionalInt `json:"endVolume,omitempty"`
	Status      *string     `json:"status,omitempty"`
}

// UpdateMangaPartDTO used for PUT /api/manga/part/:id. Volume bounds use
// OptionalInt so a key left out of the body never touches the stored value.
type UpdateMangaPartDTO struct {
	Title       *string        `json:"title,omitempty"`
	PartNumber  OptionalInt    `json:"partNumber,omitempty"`
	StartVolume OptionalInt    `json:"startVolume,omitempty"`
	EndVolume   OptionalInt    `json:"endVolume,omitempty"`
	Volumes     OptionalInt    `json:"volumes,omitempty"`
	Status      OptionalString `json:"status,omitempty"`
}

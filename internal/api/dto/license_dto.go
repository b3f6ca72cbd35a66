package dto

import "adaptrack/internal/api/models"

// CreateLicenseDTO used for POST /api/license
type CreateLicenseDTO struct {
	Title      string  `json:"title" binding:"required"`
	ExternalID *string `json:"externalId,omitempty"`
}

// UpdateLicenseDTO used for PUT /api/license/:id (partial updates allowed;
// a present null detaches the external id)
type UpdateLicenseDTO struct {
	Title      *string        `json:"title,omitempty"`
	ExternalID OptionalString `json:"externalId,omitempty"`
}

func (d CreateLicenseDTO) ToModel() models.License {
	return models.License{
		Title:      d.Title,
		ExternalID: d.ExternalID,
	}
}

func (d UpdateLicenseDTO) ApplyTo(l *models.License) {
	if d.Title != nil {
		l.Title = *d.Title
	}
	l.ExternalID = d.ExternalID.MergeNullable(l.ExternalID)
}

// SuggestionResponse is the lightweight search result shape.
type SuggestionResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

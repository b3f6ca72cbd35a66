package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Publication status shared by manga works and parts.
const (
	StatusOngoing    = "ONGOING"
	StatusCompleted  = "COMPLETED"
	StatusHiatus     = "HIATUS"
	StatusUnfinished = "UNFINISHED"
	StatusCanceled   = "CANCELED"
)

// PublicationStatuses lists the accepted values for the status field.
var PublicationStatuses = []string{
	StatusOngoing, StatusCompleted, StatusHiatus, StatusUnfinished, StatusCanceled,
}

func ValidPublicationStatus(s string) bool {
	for _, v := range PublicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// MangaWork is one manga publication under a License.
type MangaWork struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid"`
	LicenseID string     `json:"licenseId" gorm:"type:uuid;not null;index"`
	Title     string     `json:"title" gorm:"not null"`
	Authors   []string   `json:"authors,omitempty" gorm:"serializer:json"`
	Volumes   int        `json:"volumes"`
	Status    *string    `json:"status,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Publisher *string    `json:"publisher,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty" gorm:"autoCreateTime"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" gorm:"autoUpdateTime"`

	Parts      []MangaPart    `json:"parts,omitempty" gorm:"foreignKey:MangaID;constraint:OnDelete:CASCADE;"`
	AnimeLinks []MangaToAnime `json:"animeLinks,omitempty" gorm:"foreignKey:MangaID"`
}

func (m *MangaWork) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}

func (MangaWork) TableName() string {
	return "manga_works"
}

// MangaPart is a named arc/part of a MangaWork spanning a volume range.
// Volumes is derived from the bounds and must stay consistent with them.
type MangaPart struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid"`
	MangaID     string     `json:"mangaId" gorm:"type:uuid;not null;index"`
	LicenseID   string     `json:"licenseId" gorm:"type:uuid;not null;index"`
	Title       string     `json:"title" gorm:"not null"`
	PartNumber  *int       `json:"partNumber,omitempty"`
	StartVolume *int       `json:"startVolume,omitempty"`
	EndVolume   *int       `json:"endVolume,omitempty"`
	Volumes     *int       `json:"volumes,omitempty"`
	Status      *string    `json:"status,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty" gorm:"autoCreateTime"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" gorm:"autoUpdateTime"`

	AnimeLinks []MangaPartToAnime `json:"animeLinks,omitempty" gorm:"foreignKey:MangaPartID"`
}

func (p *MangaPart) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (MangaPart) TableName() string {
	return "manga_parts"
}

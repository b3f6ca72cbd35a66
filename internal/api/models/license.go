package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// License is the intellectual-property root grouping the manga works and
// anime adaptations published under a shared title.
type License struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid"`
	Title      string     `json:"title" gorm:"not null;index"`
	ExternalID *string    `json:"externalId,omitempty" gorm:"uniqueIndex;size:100"`
	CreatedAt  *time.Time `json:"createdAt,omitempty" gorm:"autoCreateTime"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty" gorm:"autoUpdateTime"`

	// associations
	Mangas           []MangaWork       `json:"mangas,omitempty" gorm:"foreignKey:LicenseID;constraint:OnDelete:CASCADE;"`
	AnimeAdaptations []AnimeAdaptation `json:"animeAdaptations,omitempty" gorm:"foreignKey:LicenseID;constraint:OnDelete:CASCADE;"`
}

func (l *License) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}

func (License) TableName() string {
	return "licenses"
}

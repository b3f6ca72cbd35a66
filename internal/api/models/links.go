package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MangaToAnime links a manga work to an adaptation with the manga volume
// range the adaptation covers. Used for non-seasoned adaptations.
type MangaToAnime struct {
	ID                 string `json:"id" gorm:"primaryKey;type:uuid"`
	MangaID            string `json:"mangaId" gorm:"type:uuid;not null;index"`
	AnimeAdaptationID  string `json:"animeAdaptationId" gorm:"type:uuid;not null;index"`
	CoverageFromVolume *int   `json:"coverageFromVolume,omitempty"`
	CoverageToVolume   *int   `json:"coverageToVolume,omitempty"`
}

func (l *MangaToAnime) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}

func (MangaToAnime) TableName() string {
	return "manga_to_anime"
}

// MangaPartToAnime links a manga part to an adaptation with only a
// completion flag.
type MangaPartToAnime struct {
	ID                string `json:"id" gorm:"primaryKey;type:uuid"`
	MangaPartID       string `json:"mangaPartId" gorm:"type:uuid;not null;index"`
	AnimeAdaptationID string `json:"animeAdaptationId" gorm:"type:uuid;not null;index"`
	CoverageComplete  bool   `json:"coverageComplete"`
}

func (l *MangaPartToAnime) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}

func (MangaPartToAnime) TableName() string {
	return "manga_part_to_anime"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Adaptation format.
const (
	AdaptationTVSeries = "TV_SERIES"
	AdaptationMovie    = "MOVIE"
	AdaptationOVA      = "OVA"
	AdaptationONA      = "ONA"
	AdaptationSpecial  = "SPECIAL"
)

var AdaptationTypes = []string{
	AdaptationTVSeries, AdaptationMovie, AdaptationOVA, AdaptationONA, AdaptationSpecial,
}

// Fidelity classifies how closely an adaptation follows its manga source.
const (
	FidelityFaithful      = "FAITHFUL"
	FidelityPartial       = "PARTIAL"
	FidelityAnimeOriginal = "ANIME_ORIGINAL"
)

var Fidelities = []string{FidelityFaithful, FidelityPartial, FidelityAnimeOriginal}

func ValidFidelity(s string) bool {
	for _, v := range Fidelities {
		if v == s {
			return true
		}
	}
	return false
}

// Relation of an adaptation to the source material.
const (
	RelationOriginal        = "ORIGINAL"
	RelationMangaAdaptation = "MANGA_ADAPTATION"
	RelationSequel          = "SEQUEL"
	RelationPrequel         = "PREQUEL"
	RelationRemake          = "REMAKE"
	RelationSpinOff         = "SPIN_OFF"
	RelationReboot          = "REBOOT"
)

var RelationTypes = []string{
	RelationOriginal, RelationMangaAdaptation, RelationSequel,
	RelationPrequel, RelationRemake, RelationSpinOff, RelationReboot,
}

func ValidRelationType(s string) bool {
	for _, v := range RelationTypes {
		if v == s {
			return true
		}
	}
	return false
}

func ValidAdaptationType(s string) bool {
	for _, v := range AdaptationTypes {
		if v == s {
			return true
		}
	}
	return false
}

// AnimeAdaptation is one anime production under a License.
type AnimeAdaptation struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid"`
	LicenseID      string     `json:"licenseId" gorm:"type:uuid;not null;index"`
	Title          string     `json:"title" gorm:"not null"`
	Studio         *string    `json:"studio,omitempty"`
	AdaptationType *string    `json:"adaptationType,omitempty"`
	Episodes       int        `json:"episodes"`
	Duration       *int       `json:"duration,omitempty"` // minutes
	Status         *string    `json:"status,omitempty"`
	Fidelity       *string    `json:"fidelity,omitempty"`
	RelationType   *string    `json:"relationType,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty" gorm:"autoCreateTime"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty" gorm:"autoUpdateTime"`

	Seasons []AnimeSeason `json:"seasons,omitempty" gorm:"foreignKey:AnimeAdaptationID;constraint:OnDelete:CASCADE;"`
}

func (a *AnimeAdaptation) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

func (AnimeAdaptation) TableName() string {
	return "anime_adaptations"
}

// AnimeSeason is one season of a seasoned adaptation, with the manga
// volume range it covers. Both coverage bounds are independently nullable.
type AnimeSeason struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:uuid"`
	AnimeAdaptationID  string     `json:"animeAdaptationId" gorm:"type:uuid;not null;index"`
	SeasonNumber       int        `json:"seasonNumber"`
	Episodes           int        `json:"episodes"`
	Fidelity           *string    `json:"fidelity,omitempty"`
	CoverageFromVolume *int       `json:"coverageFromVolume,omitempty"`
	CoverageToVolume   *int       `json:"coverageToVolume,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	RelationType       *string    `json:"relationType,omitempty"`
	CreatedAt          *time.Time `json:"createdAt,omitempty" gorm:"autoCreateTime"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty" gorm:"autoUpdateTime"`
}

func (s *AnimeSeason) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

func (AnimeSeason) TableName() string {
	return "anime_seasons"
}

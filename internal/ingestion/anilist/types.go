package anilist

import (
	"fmt"
	"strings"

	"adaptrack/internal/api/models"
)

// MangaPage is one page of manga media from the AniList API.
type MangaPage struct {
	PageInfo PageInfo    `json:"pageInfo"`
	Media    []MediaData `json:"media"`
}

type PageInfo struct {
	CurrentPage int  `json:"currentPage"`
	HasNextPage bool `json:"hasNextPage"`
}

type MediaData struct {
	ID        int          `json:"id"`
	Title     MediaTitle   `json:"title"`
	Type      string       `json:"type"`
	Format    string       `json:"format"`
	Status    string       `json:"status"`
	Volumes   *int         `json:"volumes"`
	Episodes  *int         `json:"episodes"`
	Duration  *int         `json:"duration"`
	Staff     StaffData    `json:"staff"`
	Relations RelationData `json:"relations"`
}

type MediaTitle struct {
	English string `json:"english"`
	Romaji  string `json:"romaji"`
}

// Preferred returns the english title, falling back to romaji.
func (t MediaTitle) Preferred() string {
	if t.English != "" {
		return t.English
	}
	return t.Romaji
}

type StaffData struct {
	Edges []StaffEdge `json:"edges"`
}

type StaffEdge struct {
	Role string    `json:"role"`
	Node StaffNode `json:"node"`
}

type StaffNode struct {
	Name StaffName `json:"name"`
}

type StaffName struct {
	Full string `json:"full"`
}

type RelationData struct {
	Edges []RelationEdge `json:"edges"`
}

type RelationEdge struct {
	RelationType string    `json:"relationType"`
	Node         MediaData `json:"node"`
}

// ImportedTitle is the normalized shape an API media entry is reduced to
// before it is written to the store: one license, its manga work and the
// anime adaptations related to it.
type ImportedTitle struct {
	ExternalID  string
	Title       string
	Authors     []string
	Volumes     int
	Status      *string
	Adaptations []ImportedAdaptation
}

type ImportedAdaptation struct {
	Title          string
	AdaptationType *string
	Episodes       int
	Duration       *int
	RelationType   *string
}

// ExtractTitle normalizes an API manga entry. Entries without a usable
// title are rejected; everything else degrades field by field.
func ExtractTitle(media MediaData) (*ImportedTitle, error) {
	title := media.Title.Preferred()
	if title == "" {
		return nil, fmt.Errorf("media %d has no usable title", media.ID)
	}

	imported := &ImportedTitle{
		ExternalID: fmt.Sprintf("anilist:%d", media.ID),
		Title:      title,
		Status:     mapPublicationStatus(media.Status),
	}
	if media.Volumes != nil {
		imported.Volumes = *media.Volumes
	}

	for _, edge := range media.Staff.Edges {
		if strings.HasPrefix(strings.ToLower(edge.Role), "story") && edge.Node.Name.Full != "" {
			imported.Authors = append(imported.Authors, edge.Node.Name.Full)
		}
	}

	for _, edge := range media.Relations.Edges {
		if edge.Node.Type != "ANIME" {
			continue
		}
		animeTitle := edge.Node.Title.Preferred()
		if animeTitle == "" {
			continue
		}
		adaptation := ImportedAdaptation{
			Title:          animeTitle,
			AdaptationType: mapAdaptationType(edge.Node.Format),
			Duration:       edge.Node.Duration,
			RelationType:   mapRelationType(edge.RelationType),
		}
		if edge.Node.Episodes != nil {
			adaptation.Episodes = *edge.Node.Episodes
		}
		imported.Adaptations = append(imported.Adaptations, adaptation)
	}
	return imported, nil
}

func mapPublicationStatus(apiStatus string) *string {
	var status string
	switch apiStatus {
	case "RELEASING":
		status = models.StatusOngoing
	case "FINISHED":
		status = models.StatusCompleted
	case "HIATUS":
		status = models.StatusHiatus
	case "NOT_YET_RELEASED":
		status = models.StatusUnfinished
	case "CANCELLED":
		status = models.StatusCanceled
	default:
		return nil
	}
	return &status
}

func mapAdaptationType(format string) *string {
	var t string
	switch format {
	case "TV", "TV_SHORT":
		t = models.AdaptationTVSeries
	case "MOVIE":
		t = models.AdaptationMovie
	case "OVA":
		t = models.AdaptationOVA
	case "ONA":
		t = models.AdaptationONA
	case "SPECIAL":
		t = models.AdaptationSpecial
	default:
		return nil
	}
	return &t
}

func mapRelationType(apiRelation string) *string {
	var rel string
	switch apiRelation {
	case "ADAPTATION":
		rel = models.RelationMangaAdaptation
	case "SEQUEL":
		rel = models.RelationSequel
	case "PREQUEL":
		rel = models.RelationPrequel
	case "SPIN_OFF", "SIDE_STORY":
		rel = models.RelationSpinOff
	case "ALTERNATIVE":
		rel = models.RelationRemake
	default:
		return nil
	}
	return &rel
}

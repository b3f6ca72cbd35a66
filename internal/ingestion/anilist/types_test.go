package anilist

import (
	"testing"

	"adaptrack/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func volumes(n int) *int { return &n }

func TestExtractTitle(t *testing.T) {
	media := MediaData{
		ID:      30002,
		Title:   MediaTitle{English: "Berserk", Romaji: "Berserk"},
		Status:  "RELEASING",
		Volumes: volumes(42),
		Staff: StaffData{
			Edges: []StaffEdge{
				{Role: "Story & Art", Node: StaffNode{Name: StaffName{Full: "Kentarou Miura"}}},
			},
		},
		Relations: RelationData{
			Edges: []RelationEdge{
				{
					RelationType: "ADAPTATION",
					Node: MediaData{
						ID:       33,
						Type:     "ANIME",
						Format:   "TV",
						Title:    MediaTitle{Romaji: "Kenpuu Denki Berserk"},
						Episodes: volumes(25),
					},
				},
				{
					// non-anime relations are skipped
					RelationType: "ALTERNATIVE",
					Node:         MediaData{ID: 99, Type: "MANGA", Title: MediaTitle{Romaji: "Berserk Gaiden"}},
				},
			},
		},
	}

	imported, err := ExtractTitle(media)
	require.NoError(t, err)

	assert.Equal(t, "anilist:30002", imported.ExternalID)
	assert.Equal(t, "Berserk", imported.Title)
	assert.Equal(t, []string{"Kentarou Miura"}, imported.Authors)
	assert.Equal(t, 42, imported.Volumes)
	require.NotNil(t, imported.Status)
	assert.Equal(t, models.StatusOngoing, *imported.Status)

	require.Len(t, imported.Adaptations, 1)
	adaptation := imported.Adaptations[0]
	assert.Equal(t, "Kenpuu Denki Berserk", adaptation.Title)
	assert.Equal(t, models.AdaptationTVSeries, *adaptation.AdaptationType)
	assert.Equal(t, 25, adaptation.Episodes)
	assert.Equal(t, models.RelationMangaAdaptation, *adaptation.RelationType)
}

func TestExtractTitle_NoTitle(t *testing.T) {
	_, err := ExtractTitle(MediaData{ID: 1})
	assert.Error(t, err)
}

func TestMapPublicationStatus_UnknownIsNil(t *testing.T) {
	assert.Nil(t, mapPublicationStatus("SOMETHING_NEW"))
}

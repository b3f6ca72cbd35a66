package service

import (
	"encoding/json"
	"testing"

	"adaptrack/internal/api/dto"
	"adaptrack/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partUpdateFromJSON(t *testing.T, body string) dto.UpdateMangaPartDTO {
	t.Helper()
	var in dto.UpdateMangaPartDTO
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestMergePart_PartialUpdate(t *testing.T) {
	status := models.StatusOngoing
	existing := &models.MangaPart{
		ID:          "p1",
		MangaID:     "m1",
		Title:       "Part One",
		PartNumber:  intPtr(1),
		StartVolume: intPtr(1),
		EndVolume:   intPtr(4),
		Volumes:     intPtr(4),
		Status:      &status,
	}

	merged, err := mergePart(existing, partUpdateFromJSON(t, `{"endVolume": 7}`))
	require.NoError(t, err)

	assert.Equal(t, 7, *merged.EndVolume)
	assert.Equal(t, "Part One", merged.Title)
	assert.Equal(t, 1, *merged.PartNumber)
	assert.Equal(t, 1, *merged.StartVolume)
	assert.Equal(t, &status, merged.Status)
}

func TestMergePart_DerivesVolumesFromBounds(t *testing.T) {
	existing := &models.MangaPart{ID: "p1", Title: "Part One", Volumes: intPtr(2)}

	merged, err := mergePart(existing, partUpdateFromJSON(t,
		`{"startVolume": 3, "endVolume": 7}`))
	require.NoError(t, err)

	assert.Equal(t, 5, *merged.Volumes)
}

func TestMergePart_DerivedVolumesWinOverExplicit(t *testing.T) {
	existing := &models.MangaPart{
		ID:          "p1",
		Title:       "Part One",
		StartVolume: intPtr(1),
		EndVolume:   intPtr(4),
		Volumes:     intPtr(4),
	}

	merged, err := mergePart(existing, partUpdateFromJSON(t,
		`{"endVolume": 10, "volumes": 2}`))
	require.NoError(t, err)

	assert.Equal(t, 10, *merged.Volumes)
}

func TestMergePart_ExplicitVolumesWithSingleBound(t *testing.T) {
	existing := &models.MangaPart{ID: "p1", Title: "Part One", StartVolume: intPtr(3)}

	merged, err := mergePart(existing, partUpdateFromJSON(t, `{"volumes": 6}`))
	require.NoError(t, err)

	assert.Equal(t, 6, *merged.Volumes)
	assert.Nil(t, merged.EndVolume)
}

func TestMergePart_Idempotent(t *testing.T) {
	existing := &models.MangaPart{ID: "p1", Title: "Part One", StartVolume: intPtr(1)}
	in := partUpdateFromJSON(t, `{"title": "Part One Revised", "endVolume": 3}`)

	once, err := mergePart(existing, in)
	require.NoError(t, err)
	twice, err := mergePart(once, in)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestMergePart_BoundsValidatedAfterMerge(t *testing.T) {
	existing := &models.MangaPart{
		ID:          "p1",
		Title:       "Part One",
		StartVolume: intPtr(5),
		EndVolume:   intPtr(9),
	}

	_, err := mergePart(existing, partUpdateFromJSON(t, `{"endVolume": 2}`))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestMergePart_NullClearsStatus(t *testing.T) {
	status := models.StatusOngoing
	existing := &models.MangaPart{ID: "p1", Title: "Part One", Status: &status}

	merged, err := mergePart(existing, partUpdateFromJSON(t, `{"status": null}`))
	require.NoError(t, err)

	assert.Nil(t, merged.Status)
	assert.Equal(t, "Part One", merged.Title)
}

func TestMergePart_InvalidStatus(t *testing.T) {
	existing := &models.MangaPart{ID: "p1", Title: "Part One"}

	_, err := mergePart(existing, partUpdateFromJSON(t, `{"status": "ongoing"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "ongoing", validationErr.Received)
	assert.Contains(t, validationErr.ValidValues, "ONGOING")
}

func TestDeriveVolumes(t *testing.T) {
	p := &models.MangaPart{StartVolume: intPtr(2), EndVolume: intPtr(2)}
	deriveVolumes(p)
	require.NotNil(t, p.Volumes)
	assert.Equal(t, 1, *p.Volumes)

	single := &models.MangaPart{StartVolume: intPtr(2), Volumes: intPtr(9)}
	deriveVolumes(single)
	assert.Equal(t, 9, *single.Volumes)
}

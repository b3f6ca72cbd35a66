package service

import (
	"encoding/json"
	"testing"

	"adaptrack/internal/api/dto"
	"adaptrack/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seasonUpdateFromJSON(t *testing.T, body string) dto.UpdateAnimeSeasonDTO {
	t.Helper()
	var in dto.UpdateAnimeSeasonDTO
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestMergeSeason_PartialUpdate(t *testing.T) {
	notes := "covers the school arc"
	existing := &models.AnimeSeason{
		ID:                "s1",
		AnimeAdaptationID: "a1",
		SeasonNumber:      2,
		Episodes:          12,
		Notes:             &notes,
	}

	merged, err := mergeSeason(existing, seasonUpdateFromJSON(t,
		`{"episodes": 13, "coverageFromVolume": 5, "coverageToVolume": 8}`))
	require.NoError(t, err)

	assert.Equal(t, 13, merged.Episodes)
	assert.Equal(t, 5, *merged.CoverageFromVolume)
	assert.Equal(t, 8, *merged.CoverageToVolume)
	// untouched fields keep the stored values
	assert.Equal(t, 2, merged.SeasonNumber)
	assert.Equal(t, &notes, merged.Notes)
	// the input snapshot is not mutated
	assert.Equal(t, 12, existing.Episodes)
}

func TestMergeSeason_Idempotent(t *testing.T) {
	existing := &models.AnimeSeason{ID: "s1", SeasonNumber: 1, Episodes: 12}
	in := seasonUpdateFromJSON(t, `{"episodes": 24, "coverageFromVolume": 3}`)

	once, err := mergeSeason(existing, in)
	require.NoError(t, err)
	twice, err := mergeSeason(once, in)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestMergeSeason_NullClearsCoverage(t *testing.T) {
	existing := &models.AnimeSeason{
		ID:                 "s1",
		Episodes:           12,
		CoverageFromVolume: intPtr(5),
		CoverageToVolume:   intPtr(9),
	}

	merged, err := mergeSeason(existing, seasonUpdateFromJSON(t,
		`{"coverageFromVolume": null, "coverageToVolume": ""}`))
	require.NoError(t, err)

	assert.Nil(t, merged.CoverageFromVolume)
	assert.Nil(t, merged.CoverageToVolume)
	assert.Equal(t, 12, merged.Episodes)
}

func TestMergeSeason_NullClearsTextFields(t *testing.T) {
	fidelity := "FAITHFUL"
	notes := "covers the school arc"
	rel := "SEQUEL"
	existing := &models.AnimeSeason{
		ID:           "s1",
		Episodes:     12,
		Fidelity:     &fidelity,
		Notes:        &notes,
		RelationType: &rel,
	}

	merged, err := mergeSeason(existing, seasonUpdateFromJSON(t,
		`{"fidelity": null, "notes": null}`))
	require.NoError(t, err)

	assert.Nil(t, merged.Fidelity)
	assert.Nil(t, merged.Notes)
	// absent key keeps the stored value
	assert.Equal(t, &rel, merged.RelationType)
}

func TestMergeSeason_InvalidFidelity(t *testing.T) {
	existing := &models.AnimeSeason{ID: "s1", Episodes: 12}

	_, err := mergeSeason(existing, seasonUpdateFromJSON(t, `{"fidelity": "canon"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "invalid fidelity", validationErr.Reason)
	assert.Equal(t, []string{"FAITHFUL", "PARTIAL", "ANIME_ORIGINAL"}, validationErr.ValidValues)
}

func TestMergeSeason_InvalidEpisodes(t *testing.T) {
	existing := &models.AnimeSeason{ID: "s1", Episodes: 12}

	_, err := mergeSeason(existing, seasonUpdateFromJSON(t, `{"episodes": "twelve"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "invalid episodes", validationErr.Reason)
}

func TestMergeSeason_CoverageOrderAgainstStoredBound(t *testing.T) {
	// the merged field set is validated, so a new from-bound must respect
	// an existing to-bound
	existing := &models.AnimeSeason{
		ID:               "s1",
		Episodes:         12,
		CoverageToVolume: intPtr(4),
	}

	_, err := mergeSeason(existing, seasonUpdateFromJSON(t, `{"coverageFromVolume": 7}`))
	assert.Error(t, err)
}

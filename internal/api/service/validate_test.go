package service

import (
	"testing"

	"adaptrack/internal/api/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int          { return &i }
func stringPtr(s string) *string { return &s }

func TestValidateFidelity(t *testing.T) {
	for _, valid := range []string{"FAITHFUL", "PARTIAL", "ANIME_ORIGINAL"} {
		assert.NoError(t, validateFidelity(stringPtr(valid)), valid)
	}

	for _, invalid := range []string{"canon", "faithful", "FULL", "1", ""} {
		err := validateFidelity(stringPtr(invalid))
		assert.Error(t, err, invalid)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "invalid fidelity", validationErr.Reason)
		assert.Equal(t, invalid, validationErr.Received)
		assert.Equal(t, []string{"FAITHFUL", "PARTIAL", "ANIME_ORIGINAL"}, validationErr.ValidValues)
	}

	assert.NoError(t, validateFidelity(nil))
}

func TestValidatePartBounds(t *testing.T) {
	t.Run("ordered bounds pass", func(t *testing.T) {
		p := &models.MangaPart{StartVolume: intPtr(1), EndVolume: intPtr(10)}
		assert.NoError(t, validatePartBounds(p))
	})

	t.Run("equal bounds pass", func(t *testing.T) {
		p := &models.MangaPart{StartVolume: intPtr(5), EndVolume: intPtr(5)}
		assert.NoError(t, validatePartBounds(p))
	})

	t.Run("inverted bounds fail", func(t *testing.T) {
		p := &models.MangaPart{StartVolume: intPtr(8), EndVolume: intPtr(3)}
		assert.Error(t, validatePartBounds(p))
	})

	t.Run("single bound skips ordering check", func(t *testing.T) {
		p := &models.MangaPart{StartVolume: intPtr(8)}
		assert.NoError(t, validatePartBounds(p))
	})

	t.Run("bounds below one fail", func(t *testing.T) {
		assert.Error(t, validatePartBounds(&models.MangaPart{StartVolume: intPtr(0)}))
		assert.Error(t, validatePartBounds(&models.MangaPart{EndVolume: intPtr(-2)}))
		assert.Error(t, validatePartBounds(&models.MangaPart{PartNumber: intPtr(0)}))
	})
}

func TestValidateCoverageOrder(t *testing.T) {
	assert.NoError(t, validateCoverageOrder(intPtr(1), intPtr(5)))
	assert.NoError(t, validateCoverageOrder(nil, intPtr(5)))
	assert.NoError(t, validateCoverageOrder(intPtr(9), nil))
	assert.NoError(t, validateCoverageOrder(nil, nil))
	assert.Error(t, validateCoverageOrder(intPtr(6), intPtr(5)))
}

func TestValidateStatus(t *testing.T) {
	assert.NoError(t, validateStatus(stringPtr("ONGOING")))
	assert.NoError(t, validateStatus(nil))

	err := validateStatus(stringPtr("ongoing"))
	assert.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, models.PublicationStatuses, validationErr.ValidValues)
}

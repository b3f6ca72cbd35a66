package dto

import (
	"encoding/json"
	"testing"

	"adaptrack/internal/api/models"

	"github.com/stretchr/testify/assert"
)

type optionalProbe struct {
	Episodes OptionalInt `json:"episodes"`
	From     OptionalInt `json:"from"`
}

func TestOptionalInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		set     bool
		null    bool
		invalid bool
		value   int
	}{
		{"absent key", `{}`, false, false, false, 0},
		{"number", `{"episodes": 12}`, true, false, false, 12},
		{"zero", `{"episodes": 0}`, true, false, false, 0},
		{"numeric string", `{"episodes": "7"}`, true, false, false, 7},
		{"padded numeric string", `{"episodes": " 7 "}`, true, false, false, 7},
		{"explicit null", `{"episodes": null}`, true, true, false, 0},
		{"empty string", `{"episodes": ""}`, true, true, false, 0},
		{"garbage string", `{"episodes": "abc"}`, true, false, true, 0},
		{"fractional number", `{"episodes": 1.5}`, true, false, true, 0},
		{"integral float", `{"episodes": 13.0}`, true, false, false, 13},
		{"negative", `{"episodes": -3}`, true, false, false, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var probe optionalProbe
			err := json.Unmarshal([]byte(tt.body), &probe)
			assert.NoError(t, err)
			assert.Equal(t, tt.set, probe.Episodes.Set)
			assert.Equal(t, tt.null, probe.Episodes.Null)
			assert.Equal(t, tt.invalid, probe.Episodes.Invalid)
			if probe.Episodes.Provided() {
				assert.Equal(t, tt.value, probe.Episodes.Value)
			}
		})
	}
}

func TestOptionalInt_Merge(t *testing.T) {
	existing := 4

	t.Run("absent keeps existing", func(t *testing.T) {
		var o OptionalInt
		assert.Equal(t, &existing, o.Merge(&existing))
	})

	t.Run("null keeps existing", func(t *testing.T) {
		o := OptionalInt{Set: true, Null: true}
		assert.Equal(t, &existing, o.Merge(&existing))
	})

	t.Run("value replaces existing", func(t *testing.T) {
		o := OptionalInt{Set: true, Value: 9}
		got := o.Merge(&existing)
		assert.Equal(t, 9, *got)
	})

	t.Run("zero replaces existing", func(t *testing.T) {
		// a provided 0 must not fall back to the stored value
		o := OptionalInt{Set: true, Value: 0}
		got := o.Merge(&existing)
		assert.Equal(t, 0, *got)
	})
}

func TestOptionalString_UnmarshalJSON(t *testing.T) {
	type probe struct {
		Notes OptionalString `json:"notes"`
	}

	tests := []struct {
		name  string
		body  string
		set   bool
		null  bool
		value string
	}{
		{"absent key", `{}`, false, false, ""},
		{"value", `{"notes": "covers the boat arc"}`, true, false, "covers the boat arc"},
		{"explicit null", `{"notes": null}`, true, true, ""},
		{"empty string is a value", `{"notes": ""}`, true, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p probe
			assert.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.set, p.Notes.Set)
			assert.Equal(t, tt.null, p.Notes.Null)
			assert.Equal(t, tt.value, p.Notes.Value)
		})
	}
}

func TestOptionalString_MergeNullable(t *testing.T) {
	existing := "Madhouse"

	t.Run("absent keeps existing", func(t *testing.T) {
		var o OptionalString
		assert.Equal(t, &existing, o.MergeNullable(&existing))
	})

	t.Run("null clears", func(t *testing.T) {
		o := OptionalString{Set: true, Null: true}
		assert.Nil(t, o.MergeNullable(&existing))
	})

	t.Run("value replaces", func(t *testing.T) {
		o := OptionalString{Set: true, Value: "Bones"}
		got := o.MergeNullable(&existing)
		assert.Equal(t, "Bones", *got)
	})
}

func TestUpdateAnimeAdaptationDTO_NullClearsFields(t *testing.T) {
	studio := "Madhouse"
	notes := "stalled after season 1"
	a := models.AnimeAdaptation{ID: "a1", Title: "Berserk", Studio: &studio, Notes: &notes}

	var in UpdateAnimeAdaptationDTO
	assert.NoError(t, json.Unmarshal([]byte(`{"studio": null, "notes": null}`), &in))
	in.ApplyTo(&a)

	assert.Nil(t, a.Studio)
	assert.Nil(t, a.Notes)
	// absent keys stay untouched
	assert.Equal(t, "Berserk", a.Title)
}

func TestOptionalInt_MergeNullable(t *testing.T) {
	existing := 4

	t.Run("absent keeps existing", func(t *testing.T) {
		var o OptionalInt
		assert.Equal(t, &existing, o.MergeNullable(&existing))
	})

	t.Run("null clears", func(t *testing.T) {
		o := OptionalInt{Set: true, Null: true}
		assert.Nil(t, o.MergeNullable(&existing))
	})

	t.Run("value replaces", func(t *testing.T) {
		o := OptionalInt{Set: true, Value: 8}
		got := o.MergeNullable(&existing)
		assert.Equal(t, 8, *got)
	})
}

package service

import (
	"adaptrack/internal/api/dto"
	"adaptrack/internal/api/models"
)

// Range and enum checks applied to the merged field set before anything is
// persisted. Callers merge first, validate second.

// validatePartBounds checks a merged MangaPart: both bounds must be >= 1
// when set, and ordered when both are set. A part with a single bound is
// accepted; the ordering check is skipped until the other bound arrives.
func validatePartBounds(p *models.MangaPart) error {
	if p.PartNumber != nil && *p.PartNumber < 1 {
		return &ValidationError{Reason: "partNumber must be >= 1", Received: *p.PartNumber}
	}
	if p.StartVolume != nil && *p.StartVolume < 1 {
		return &ValidationError{Reason: "startVolume must be >= 1", Received: *p.StartVolume}
	}
	if p.EndVolume != nil && *p.EndVolume < 1 {
		return &ValidationError{Reason: "endVolume must be >= 1", Received: *p.EndVolume}
	}
	if p.StartVolume != nil && p.EndVolume != nil && *p.StartVolume > *p.EndVolume {
		return &ValidationError{
			Reason:   "startVolume must not exceed endVolume",
			Received: map[string]int{"startVolume": *p.StartVolume, "endVolume": *p.EndVolume},
		}
	}
	return nil
}

// validateFidelity rejects anything outside the closed enum, case-sensitive.
func validateFidelity(fidelity *string) error {
	if fidelity == nil {
		return nil
	}
	if !models.ValidFidelity(*fidelity) {
		return &ValidationError{
			Reason:      "invalid fidelity",
			Received:    *fidelity,
			ValidValues: models.Fidelities,
		}
	}
	return nil
}

func validateStatus(status *string) error {
	if status == nil {
		return nil
	}
	if !models.ValidPublicationStatus(*status) {
		return &ValidationError{
			Reason:      "invalid status",
			Received:    *status,
			ValidValues: models.PublicationStatuses,
		}
	}
	return nil
}

func validateRelationType(rel *string) error {
	if rel == nil {
		return nil
	}
	if !models.ValidRelationType(*rel) {
		return &ValidationError{
			Reason:      "invalid relationType",
			Received:    *rel,
			ValidValues: models.RelationTypes,
		}
	}
	return nil
}

func validateAdaptationType(t *string) error {
	if t == nil {
		return nil
	}
	if !models.ValidAdaptationType(*t) {
		return &ValidationError{
			Reason:      "invalid adaptationType",
			Received:    *t,
			ValidValues: models.AdaptationTypes,
		}
	}
	return nil
}

// validateNumeric rejects a provided value that did not coerce to an
// integer. Null and empty string are not errors here; the merger decides
// what they mean per field.
func validateNumeric(field string, o dto.OptionalInt) error {
	if o.Set && o.Invalid {
		return invalidField(field, nil)
	}
	return nil
}

// validateCoverageOrder enforces from <= to when both bounds are present.
// Applies to season coverage and, in strict mode, to manga-to-anime links.
func validateCoverageOrder(from, to *int) error {
	if from != nil && to != nil && *from > *to {
		return &ValidationError{
			Reason:   "coverageFromVolume must not exceed coverageToVolume",
			Received: map[string]int{"coverageFromVolume": *from, "coverageToVolume": *to},
		}
	}
	return nil
}

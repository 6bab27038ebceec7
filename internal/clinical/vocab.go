package clinical

import (
	"strings"

	"github.com/clindoc/clindoc/internal/platform/fhir"
)

// Status mapping tables. Each vocabulary is a closed enum; the default branch
// is the documented fallback, never a silent zero value.

// conditionClinicalStatus maps a past-medical-history status onto the FHIR
// condition-clinical value set. An unrecognized status yields a text-only
// concept with no coded system.
func conditionClinicalStatus(s ConditionStatus) fhir.CodeableConcept {
	switch s {
	case ConditionStatusActive:
		return fhir.ClinicalStatus(fhir.ConditionActive)
	case ConditionStatusRemission:
		return fhir.ClinicalStatus(fhir.ConditionRemission)
	case ConditionStatusResolved:
		return fhir.ClinicalStatus(fhir.ConditionResolved)
	default:
		return fhir.TextConcept(string(s))
	}
}

// immunizationStatus maps the record vocabulary onto the FHIR immunization
// status codes, returning the status plus an extra note for statuses the
// target code cannot express on its own.
func immunizationStatus(s ImmunizationStatus) (status, extraNote string) {
	switch s {
	case ImmunizationCompleted:
		return "completed", ""
	case ImmunizationPartial:
		return "completed", "Partial series"
	case ImmunizationDue:
		return "not-done", "Due"
	case ImmunizationDeclined:
		return "not-done", "Declined"
	default:
		return "completed", ""
	}
}

// diagnosticReportStatus maps a result status onto DiagnosticReport.status.
func diagnosticReportStatus(s ResultStatus) string {
	switch s {
	case ResultCompleted, ResultAbnormal:
		return "final"
	default:
		return "registered"
	}
}

// medicationStatementStatus maps the medication-history vocabulary onto
// MedicationStatement.status: stopped only for an explicit "stopped".
func medicationStatementStatus(s MedicationStatus) string {
	if s == MedicationStopped {
		return "stopped"
	}
	return "active"
}

// encounterRef returns an encounter reference, or nil when the record has no
// encounter id (draft/unsaved encounters carry no reference at all).
func encounterRef(rec *EncounterRecord) *fhir.Reference {
	if rec.EncounterID == "" {
		return nil
	}
	ref := fhir.EncounterRef(rec.EncounterID)
	return &ref
}

// codedOrText builds a concept from a coding system and code, falling back to
// a text-only concept when the code is absent.
func codedOrText(system, code, text string) fhir.CodeableConcept {
	if code == "" {
		return fhir.TextConcept(text)
	}
	return fhir.CodedConcept(system, code, text)
}

// humanizeFieldName converts a camelCase field name into space-separated
// lowercase ("heartSounds" -> "heart sounds").
func humanizeFieldName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// joinNonEmpty joins the non-empty segments with sep, preserving order.
func joinNonEmpty(sep string, segments ...string) string {
	kept := segments[:0:0]
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, sep)
}

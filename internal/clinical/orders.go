package clinical

import (
	"fmt"
	"strings"

	"github.com/clindoc/clindoc/internal/platform/fhir"
)

// BuildServiceRequests emits one active order ServiceRequest per ordered
// test that carries a name or a code. The urgency is carried both as the
// request priority and as an uppercase note entry, with free-text notes as
// a separate note entry.
func BuildServiceRequests(rec *EncounterRecord) []fhir.ServiceRequest {
	if rec.Investigations == nil {
		return nil
	}
	var out []fhir.ServiceRequest
	for _, test := range rec.Investigations.OrderedTests {
		if test.TestName == "" && test.Code == "" {
			continue
		}
		sr := fhir.ServiceRequest{
			ResourceType: "ServiceRequest",
			Status:       "active",
			Intent:       "order",
			Priority:     string(test.Urgency),
			Code:         codedOrText(fhir.SystemLOINC, test.Code, test.TestName),
			Subject:      fhir.PatientRef(rec.PatientID),
			Encounter:    encounterRef(rec),
		}
		if rec.ProviderID != "" {
			requester := fhir.PractitionerRef(rec.ProviderID)
			sr.Requester = &requester
		}
		if test.Urgency != "" {
			sr.Note = append(sr.Note, fhir.Annotation{
				Text: fmt.Sprintf("Urgency: %s", strings.ToUpper(string(test.Urgency))),
			})
		}
		if test.Notes != "" {
			sr.Note = append(sr.Note, fhir.Annotation{Text: test.Notes})
		}
		out = append(out, sr)
	}
	return out
}

// BuildDiagnosticReports emits one DiagnosticReport per result with a test
// name. The conclusion is a pipe-joined assembly of the value, reference
// range and status segments, each included only when present.
func BuildDiagnosticReports(rec *EncounterRecord) []fhir.DiagnosticReport {
	if rec.Investigations == nil {
		return nil
	}
	var out []fhir.DiagnosticReport
	for _, result := range rec.Investigations.Results {
		if result.TestName == "" {
			continue
		}
		var valueSegment string
		if result.Value != "" {
			valueSegment = joinNonEmpty(" ", result.Value, result.Unit)
		}
		var refSegment, statusSegment string
		if result.ReferenceRange != "" {
			refSegment = fmt.Sprintf("Ref: %s", result.ReferenceRange)
		}
		if result.Status != "" {
			statusSegment = fmt.Sprintf("Status: %s", result.Status)
		}
		out = append(out, fhir.DiagnosticReport{
			ResourceType: "DiagnosticReport",
			Status:       diagnosticReportStatus(result.Status),
			Code:         fhir.TextConcept(result.TestName),
			Subject:      fhir.PatientRef(rec.PatientID),
			Encounter:    encounterRef(rec),
			Conclusion:   joinNonEmpty(" | ", valueSegment, refSegment, statusSegment),
		})
	}
	return out
}

// BuildMedicationRequests emits one active order MedicationRequest per
// prescription with a medication name. The dosage instruction text is a
// comma-joined assembly of dosage, route, frequency, "for {duration}" and
// "Indication: {indication}", in that fixed order, skipping empty segments.
func BuildMedicationRequests(rec *EncounterRecord) []fhir.MedicationRequest {
	if rec.Medications == nil {
		return nil
	}
	var out []fhir.MedicationRequest
	for _, rx := range rec.Medications.Prescriptions {
		if rx.MedicationName == "" {
			continue
		}
		var durationSegment, indicationSegment string
		if rx.Duration != "" {
			durationSegment = fmt.Sprintf("for %s", rx.Duration)
		}
		if rx.Indication != "" {
			indicationSegment = fmt.Sprintf("Indication: %s", rx.Indication)
		}
		req := fhir.MedicationRequest{
			ResourceType:              "MedicationRequest",
			Status:                    "active",
			Intent:                    "order",
			MedicationCodeableConcept: fhir.TextConcept(rx.MedicationName),
			Subject:                   fhir.PatientRef(rec.PatientID),
			Encounter:                 encounterRef(rec),
		}
		if rec.ProviderID != "" {
			requester := fhir.PractitionerRef(rec.ProviderID)
			req.Requester = &requester
		}
		if text := joinNonEmpty(", ", rx.Dosage, rx.Route, rx.Frequency, durationSegment, indicationSegment); text != "" {
			req.DosageInstruction = []fhir.Dosage{{Text: text}}
		}
		if rx.Indication != "" {
			req.ReasonCode = []fhir.CodeableConcept{fhir.TextConcept(rx.Indication)}
		}
		if rx.Notes != "" {
			req.Note = []fhir.Annotation{{Text: rx.Notes}}
		}
		out = append(out, req)
	}
	return out
}

package clinical

import (
	"fmt"
	"sort"

	"github.com/clindoc/clindoc/internal/platform/fhir"
)

// BuildSystemEnquiryObservations maps the review-of-systems entries onto
// Observations. A system marked normal with no positive symptoms yields
// exactly one observation with a Normal interpretation; a system with
// positive symptoms yields one observation per symptom, each carrying the
// system-level summary text as its valueString (the duplication is the
// contract: summaries are per-system, attached per-observation for
// traceability). A system with neither yields nothing.
//
// Systems are processed in sorted key order so repeated builds of the same
// record produce identical output.
func BuildSystemEnquiryObservations(rec *EncounterRecord) []fhir.Observation {
	enquiry := rec.History.SystemEnquiry
	if len(enquiry) == 0 {
		return nil
	}
	systems := make([]string, 0, len(enquiry))
	for name := range enquiry {
		systems = append(systems, name)
	}
	sort.Strings(systems)

	var out []fhir.Observation
	for _, system := range systems {
		entry := enquiry[system]
		if len(entry.PositiveSymptoms) == 0 {
			if !entry.Normal {
				continue
			}
			out = append(out, fhir.Observation{
				ResourceType: "Observation",
				Status:       "final",
				Category:     []fhir.CodeableConcept{fhir.ObservationCategory(fhir.ObsCategorySurvey)},
				Code:         fhir.TextConcept(fmt.Sprintf("Review of systems: %s", system)),
				Subject:      fhir.PatientRef(rec.PatientID),
				Encounter:    encounterRef(rec),
				Interpretation: []fhir.CodeableConcept{
					fhir.CodedConcept(fhir.SystemObservationInterp, fhir.InterpretationNormal, "Normal"),
				},
			})
			continue
		}
		for _, sym := range entry.PositiveSymptoms {
			code := fhir.CodeableConcept{Text: fmt.Sprintf("%s: %s", system, sym.Label)}
			if sym.SNOMEDCode != "" {
				code.Coding = []fhir.Coding{{
					System: fhir.SystemSNOMED, Code: sym.SNOMEDCode, Display: sym.Label,
				}}
			}
			out = append(out, fhir.Observation{
				ResourceType: "Observation",
				Status:       "final",
				Category:     []fhir.CodeableConcept{fhir.ObservationCategory(fhir.ObsCategorySurvey)},
				Code:         code,
				Subject:      fhir.PatientRef(rec.PatientID),
				Encounter:    encounterRef(rec),
				ValueString:  entry.SummaryText,
			})
		}
	}
	return out
}

package clinical

import (
	"fmt"

	"github.com/clindoc/clindoc/internal/platform/fhir"
)

// BuildCarePlans emits at most one CarePlan for the whole encounter, only
// when the assessment or plan text is non-empty. The description is up to
// two lines, "Assessment: ..." and "Plan: ...", separated by a blank line,
// omitting either line when its source is empty.
func BuildCarePlans(rec *EncounterRecord) []fhir.CarePlan {
	if rec.Assessment == "" && rec.Plan == "" {
		return nil
	}
	var assessmentLine, planLine string
	if rec.Assessment != "" {
		assessmentLine = fmt.Sprintf("Assessment: %s", rec.Assessment)
	}
	if rec.Plan != "" {
		planLine = fmt.Sprintf("Plan: %s", rec.Plan)
	}
	cp := fhir.CarePlan{
		ResourceType: "CarePlan",
		Status:       "active",
		Intent:       "plan",
		Title:        "Assessment and plan",
		Description:  joinNonEmpty("\n\n", assessmentLine, planLine),
		Subject:      fhir.PatientRef(rec.PatientID),
		Encounter:    encounterRef(rec),
	}
	if rec.ProviderID != "" {
		author := fhir.PractitionerRef(rec.ProviderID)
		cp.Author = &author
	}
	return []fhir.CarePlan{cp}
}

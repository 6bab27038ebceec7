package clinical

import (
	"github.com/clindoc/clindoc/internal/platform/fhir"
)

// LOINC codes for the obstetric and gynecologic history observations.
const (
	loincGravida       = "11996-6"
	loincPara          = "11977-6"
	loincLMP           = "8665-2"
	loincEDD           = "11778-8"
	loincContraception = "8659-5"
	loincMenarcheAge   = "42798-9"
	loincMenopauseAge  = "42802-9"
	loincLastPapDate   = "19762-4"
	loincLastPapResult = "10524-7"
)

// SNOMED code for the pregnancy condition.
const snomedPregnant = "77386006"

// BuildOBGYNConditions emits a Pregnant condition only when the obstetric
// history flags a current pregnancy, plus one problem-list condition per
// named gynecologic condition.
func BuildOBGYNConditions(rec *EncounterRecord) []fhir.Condition {
	obgyn := rec.History.OBGYN
	if obgyn == nil {
		return nil
	}
	var out []fhir.Condition
	if ob := obgyn.Obstetric; ob != nil && ob.CurrentlyPregnant {
		clinical := fhir.ClinicalStatus(fhir.ConditionActive)
		out = append(out, fhir.Condition{
			ResourceType:   "Condition",
			ClinicalStatus: &clinical,
			Code:           fhir.CodedConcept(fhir.SystemSNOMED, snomedPregnant, "Pregnant"),
			Subject:        fhir.PatientRef(rec.PatientID),
			Encounter:      encounterRef(rec),
			OnsetDateTime:  ob.LMP,
		})
	}
	if gyn := obgyn.Gynecologic; gyn != nil {
		for _, name := range gyn.Conditions {
			if name == "" {
				continue
			}
			out = append(out, fhir.Condition{
				ResourceType: "Condition",
				Category: []fhir.CodeableConcept{
					fhir.ConditionCategory("problem-list-item", "Gynecologic history"),
				},
				Code:      fhir.TextConcept(name),
				Subject:   fhir.PatientRef(rec.PatientID),
				Encounter: encounterRef(rec),
			})
		}
	}
	return out
}

// BuildOBGYNObservations emits one LOINC-coded observation per populated
// obstetric or gynecologic field. This builder is field-sparse: an absent
// field produces no observation at all.
func BuildOBGYNObservations(rec *EncounterRecord) []fhir.Observation {
	obgyn := rec.History.OBGYN
	if obgyn == nil {
		return nil
	}
	var out []fhir.Observation

	quantity := func(code, display string, value float64, unit string) {
		out = append(out, obgynObservation(rec, code, display, fhir.Observation{
			ValueQuantity: &fhir.Quantity{Value: value, Unit: unit},
		}))
	}
	dateTime := func(code, display, value string) {
		out = append(out, obgynObservation(rec, code, display, fhir.Observation{
			ValueDateTime: value,
		}))
	}
	text := func(code, display, value string) {
		out = append(out, obgynObservation(rec, code, display, fhir.Observation{
			ValueString: value,
		}))
	}

	if ob := obgyn.Obstetric; ob != nil {
		if ob.Gravida > 0 {
			quantity(loincGravida, "Gravida", float64(ob.Gravida), "")
		}
		if ob.Para > 0 {
			quantity(loincPara, "Para", float64(ob.Para), "")
		}
		if ob.LMP != "" {
			dateTime(loincLMP, "Last menstrual period", ob.LMP)
		}
		if ob.EDD != "" {
			dateTime(loincEDD, "Estimated date of delivery", ob.EDD)
		}
		if ob.ContraceptionMethod != "" {
			text(loincContraception, "Contraception method", ob.ContraceptionMethod)
		}
	}
	if gyn := obgyn.Gynecologic; gyn != nil {
		if gyn.MenarcheAge > 0 {
			quantity(loincMenarcheAge, "Age at menarche", float64(gyn.MenarcheAge), "a")
		}
		if gyn.MenopauseAge > 0 {
			quantity(loincMenopauseAge, "Age at menopause", float64(gyn.MenopauseAge), "a")
		}
		if gyn.LastPapDate != "" {
			dateTime(loincLastPapDate, "Last Pap smear date", gyn.LastPapDate)
		}
		if gyn.LastPapResult != "" {
			text(loincLastPapResult, "Last Pap smear result", gyn.LastPapResult)
		}
	}
	return out
}

func obgynObservation(rec *EncounterRecord, code, display string, value fhir.Observation) fhir.Observation {
	value.ResourceType = "Observation"
	value.Status = "final"
	value.Category = []fhir.CodeableConcept{fhir.ObservationCategory(fhir.ObsCategorySurvey)}
	value.Code = fhir.CodedConcept(fhir.SystemLOINC, code, display)
	value.Subject = fhir.PatientRef(rec.PatientID)
	value.Encounter = encounterRef(rec)
	return value
}

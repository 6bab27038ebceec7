package clinical

import (
	"fmt"
	"strings"

	"github.com/clindoc/clindoc/internal/platform/fhir"
)

// Per-section builders for the history portion of the encounter record. Every
// builder is a pure function of the record: a resource is emitted for an
// entry only when its defining field is present, and absence of any optional
// field means "skip", never an error.

// BuildChiefComplaintConditions emits one provisional active Condition per
// coded or custom chief-complaint symptom. Symptoms with neither a label nor
// a SNOMED code are skipped.
func BuildChiefComplaintConditions(rec *EncounterRecord) []fhir.Condition {
	var out []fhir.Condition
	for _, sym := range rec.History.ChiefComplaints {
		if sym.Label == "" && sym.SNOMEDCode == "" {
			continue
		}
		clinical := fhir.ClinicalStatus(fhir.ConditionActive)
		verification := fhir.TextConcept("provisional")
		out = append(out, fhir.Condition{
			ResourceType:       "Condition",
			ClinicalStatus:     &clinical,
			VerificationStatus: &verification,
			Code:               codedOrText(fhir.SystemSNOMED, sym.SNOMEDCode, sym.Label),
			Subject:            fhir.PatientRef(rec.PatientID),
			Encounter:          encounterRef(rec),
		})
	}
	return out
}

// BuildPresentIllnessObservations emits one survey Observation per
// chief-complaint symptom, with components only for the per-symptom features
// actually recorded. No chief-complaint symptoms means no HPI observations.
func BuildPresentIllnessObservations(rec *EncounterRecord) []fhir.Observation {
	hpi := rec.History.PresentIllness
	if hpi == nil {
		return nil
	}
	var out []fhir.Observation
	for _, sym := range rec.History.ChiefComplaints {
		if sym.Label == "" && sym.SNOMEDCode == "" {
			continue
		}
		obs := fhir.Observation{
			ResourceType: "Observation",
			Status:       "final",
			Category:     []fhir.CodeableConcept{fhir.ObservationCategory(fhir.ObsCategorySurvey)},
			Code:         codedOrText(fhir.SystemSNOMED, sym.SNOMEDCode, sym.Label),
			Subject:      fhir.PatientRef(rec.PatientID),
			Encounter:    encounterRef(rec),
		}
		if features, ok := hpi.SymptomFeatures[sym.ID]; ok {
			obs.Component = presentIllnessComponents(features)
		}
		out = append(out, obs)
	}
	return out
}

func presentIllnessComponents(f SymptomFeatures) []fhir.ObservationComponent {
	var comps []fhir.ObservationComponent
	if f.DurationValue > 0 {
		comps = append(comps, fhir.ObservationComponent{
			Code:          fhir.TextConcept("Duration"),
			ValueQuantity: &fhir.Quantity{Value: f.DurationValue, Unit: f.DurationUnit},
		})
	}
	if f.Severity != "" {
		severity := fhir.TextConcept(string(f.Severity))
		comps = append(comps, fhir.ObservationComponent{
			Code:                 fhir.TextConcept("Severity"),
			ValueCodeableConcept: &severity,
		})
	}
	if len(f.Character) > 0 {
		comps = append(comps, fhir.ObservationComponent{
			Code:        fhir.TextConcept("Character"),
			ValueString: strings.Join(f.Character, ", "),
		})
	}
	if len(f.AggravatingFactors) > 0 {
		comps = append(comps, fhir.ObservationComponent{
			Code:        fhir.TextConcept("Aggravating factors"),
			ValueString: strings.Join(f.AggravatingFactors, ", "),
		})
	}
	if len(f.RelievingFactors) > 0 {
		comps = append(comps, fhir.ObservationComponent{
			Code:        fhir.TextConcept("Relieving factors"),
			ValueString: strings.Join(f.RelievingFactors, ", "),
		})
	}
	if f.Notes != "" {
		comps = append(comps, fhir.ObservationComponent{
			Code:        fhir.TextConcept("Notes"),
			ValueString: f.Notes,
		})
	}
	return comps
}

// BuildPastMedicalConditions emits one problem-list Condition per entry with
// a named condition. SNOMED and ICD-10 codes on the same entry become two
// coding entries on the same concept, not separate resources.
func BuildPastMedicalConditions(rec *EncounterRecord) []fhir.Condition {
	var out []fhir.Condition
	for _, entry := range rec.History.PastMedical {
		if entry.Condition == "" {
			continue
		}
		code := fhir.CodeableConcept{Text: entry.Condition}
		if entry.SNOMEDCode != "" {
			code.Coding = append(code.Coding, fhir.Coding{
				System: fhir.SystemSNOMED, Code: entry.SNOMEDCode, Display: entry.Condition,
			})
		}
		if entry.ICD10Code != "" {
			code.Coding = append(code.Coding, fhir.Coding{
				System: fhir.SystemICD10, Code: entry.ICD10Code, Display: entry.Condition,
			})
		}
		clinical := conditionClinicalStatus(entry.Status)
		verification := fhir.VerificationStatus("confirmed")
		cond := fhir.Condition{
			ResourceType:       "Condition",
			ClinicalStatus:     &clinical,
			VerificationStatus: &verification,
			Category: []fhir.CodeableConcept{
				fhir.ConditionCategory("problem-list-item", "Problem List Item"),
			},
			Code:          code,
			Subject:       fhir.PatientRef(rec.PatientID),
			Encounter:     encounterRef(rec),
			OnsetDateTime: entry.YearDiagnosed,
		}
		if entry.Notes != "" {
			cond.Note = []fhir.Annotation{{Text: entry.Notes}}
		}
		out = append(out, cond)
	}
	return out
}

// BuildMedicationStatements emits one MedicationStatement per medication-
// history entry with a name. Status is "stopped" only for an explicit
// stopped entry; the effective period appears only when a start or end date
// was recorded.
func BuildMedicationStatements(rec *EncounterRecord) []fhir.MedicationStatement {
	var out []fhir.MedicationStatement
	for _, entry := range rec.History.MedicationHistory {
		if entry.Name == "" {
			continue
		}
		stmt := fhir.MedicationStatement{
			ResourceType:              "MedicationStatement",
			Status:                    medicationStatementStatus(entry.Status),
			MedicationCodeableConcept: codedOrText(fhir.SystemRxNorm, entry.RxNormCode, entry.Name),
			Subject:                   fhir.PatientRef(rec.PatientID),
			Context:                   encounterRef(rec),
		}
		if entry.StartDate != "" || entry.EndDate != "" {
			stmt.EffectivePeriod = &fhir.Period{Start: entry.StartDate, End: entry.EndDate}
		}
		if text := joinNonEmpty(", ", entry.Dosage, entry.Route, entry.Frequency); text != "" {
			stmt.Dosage = []fhir.Dosage{{Text: text}}
		}
		if entry.Indication != "" {
			stmt.ReasonCode = []fhir.CodeableConcept{fhir.TextConcept(entry.Indication)}
		}
		if entry.Notes != "" {
			stmt.Note = []fhir.Annotation{{Text: entry.Notes}}
		}
		out = append(out, stmt)
	}
	return out
}

// BuildSurgicalProcedures emits one completed Procedure per surgical-history
// entry with a named procedure.
func BuildSurgicalProcedures(rec *EncounterRecord) []fhir.Procedure {
	var out []fhir.Procedure
	for _, entry := range rec.History.SurgicalHistory {
		if entry.Procedure == "" {
			continue
		}
		proc := fhir.Procedure{
			ResourceType:      "Procedure",
			Status:            "completed",
			Code:              codedOrText(fhir.SystemSNOMED, entry.SNOMEDCode, entry.Procedure),
			Subject:           fhir.PatientRef(rec.PatientID),
			Encounter:         encounterRef(rec),
			PerformedDateTime: entry.Date,
		}
		if entry.BodySite != "" {
			proc.BodySite = []fhir.CodeableConcept{fhir.TextConcept(entry.BodySite)}
		}
		if entry.Outcome != "" {
			outcome := fhir.TextConcept(entry.Outcome)
			proc.Outcome = &outcome
		}
		if entry.Notes != "" {
			proc.Note = []fhir.Annotation{{Text: entry.Notes}}
		}
		out = append(out, proc)
	}
	return out
}

// BuildImmunizations emits one Immunization per entry with a vaccine name.
// The vaccine coding prefers CVX, attaching SNOMED alongside when both are
// present. Free-text notes and the status-derived note are joined into one
// annotation.
func BuildImmunizations(rec *EncounterRecord) []fhir.Immunization {
	var out []fhir.Immunization
	for _, entry := range rec.History.Immunizations {
		if entry.VaccineName == "" {
			continue
		}
		status, extraNote := immunizationStatus(entry.Status)
		vaccine := fhir.CodeableConcept{Text: entry.VaccineName}
		if entry.CVXCode != "" {
			vaccine.Coding = append(vaccine.Coding, fhir.Coding{
				System: fhir.SystemCVX, Code: entry.CVXCode, Display: entry.VaccineName,
			})
		}
		if entry.SNOMEDCode != "" {
			vaccine.Coding = append(vaccine.Coding, fhir.Coding{
				System: fhir.SystemSNOMED, Code: entry.SNOMEDCode, Display: entry.VaccineName,
			})
		}
		imm := fhir.Immunization{
			ResourceType:       "Immunization",
			Status:             status,
			VaccineCode:        vaccine,
			Patient:            fhir.PatientRef(rec.PatientID),
			Encounter:          encounterRef(rec),
			OccurrenceDateTime: entry.Date,
			LotNumber:          entry.LotNumber,
		}
		if entry.Manufacturer != "" {
			imm.Manufacturer = &fhir.Reference{Display: entry.Manufacturer}
		}
		if entry.Site != "" {
			site := fhir.TextConcept(entry.Site)
			imm.Site = &site
		}
		if entry.Route != "" {
			route := fhir.TextConcept(entry.Route)
			imm.Route = &route
		}
		if note := joinNonEmpty("; ", entry.Notes, extraNote); note != "" {
			imm.Note = []fhir.Annotation{{Text: note}}
		}
		out = append(out, imm)
	}
	return out
}

// BuildFamilyMemberHistories emits one completed FamilyMemberHistory per
// entry with a relation. The condition array is present only when a
// condition was named; the age is carried verbatim as onsetString.
func BuildFamilyMemberHistories(rec *EncounterRecord) []fhir.FamilyMemberHistory {
	var out []fhir.FamilyMemberHistory
	for _, entry := range rec.History.FamilyHistory {
		if entry.Relation == "" {
			continue
		}
		fmh := fhir.FamilyMemberHistory{
			ResourceType: "FamilyMemberHistory",
			Status:       "completed",
			Patient:      fhir.PatientRef(rec.PatientID),
			Relationship: fhir.TextConcept(entry.Relation),
		}
		if entry.Condition != "" {
			fmh.Condition = []fhir.FamilyMemberCondition{{
				Code:        fhir.TextConcept(entry.Condition),
				OnsetString: entry.Age,
			}}
		}
		out = append(out, fmh)
	}
	return out
}

// BuildSocialHistoryObservations emits up to five social-history
// Observations, one per populated field.
func BuildSocialHistoryObservations(rec *EncounterRecord) []fhir.Observation {
	social := rec.History.SocialHistory
	if social == nil {
		return nil
	}
	fields := []struct {
		label string
		value string
	}{
		{"Occupation", social.Occupation},
		{"Tobacco use", social.TobaccoUse},
		{"Alcohol use", social.AlcoholUse},
		{"Drug use", social.DrugUse},
		{"Living conditions", social.LivingConditions},
	}
	var out []fhir.Observation
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		out = append(out, fhir.Observation{
			ResourceType: "Observation",
			Status:       "final",
			Category:     []fhir.CodeableConcept{fhir.ObservationCategory(fhir.ObsCategorySocialHistory)},
			Code:         fhir.TextConcept(f.label),
			Subject:      fhir.PatientRef(rec.PatientID),
			Encounter:    encounterRef(rec),
			ValueString:  f.value,
		})
	}
	return out
}

// BuildPersonalHistorySummary emits at most one meta-observation summarising
// the personal history: family-history entry count and whether any social
// history was recorded. Nothing is emitted when neither section has data.
func BuildPersonalHistorySummary(rec *EncounterRecord) []fhir.Observation {
	familyCount := len(rec.History.FamilyHistory)
	hasSocial := !rec.History.SocialHistory.IsEmpty()
	if familyCount == 0 && !hasSocial {
		return nil
	}
	var parts []string
	if familyCount > 0 {
		parts = append(parts, fmt.Sprintf("Family history entries: %d", familyCount))
	}
	if hasSocial {
		parts = append(parts, "Social history recorded")
	}
	return []fhir.Observation{{
		ResourceType: "Observation",
		Status:       "final",
		Category:     []fhir.CodeableConcept{fhir.ObservationCategory(fhir.ObsCategorySocialHistory)},
		Code:         fhir.TextConcept("Personal history summary"),
		Subject:      fhir.PatientRef(rec.PatientID),
		Encounter:    encounterRef(rec),
		ValueString:  strings.Join(parts, "; "),
	}}
}

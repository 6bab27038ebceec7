package clinical

import (
	"github.com/clindoc/clindoc/internal/platform/fhir"
)

// EncounterResources groups the built resources by kind. The order within
// each group follows the fixed builder concatenation order and is an
// observable contract for consumers diffing exports.
type EncounterResources struct {
	Encounter            fhir.Encounter             `json:"encounter"`
	Conditions           []fhir.Condition           `json:"conditions"`
	Observations         []fhir.Observation         `json:"observations"`
	MedicationStatements []fhir.MedicationStatement `json:"medicationStatements"`
	Procedures           []fhir.Procedure           `json:"procedures"`
	Immunizations        []fhir.Immunization        `json:"immunizations"`
	FamilyHistories      []fhir.FamilyMemberHistory `json:"familyHistories"`
	ServiceRequests      []fhir.ServiceRequest      `json:"serviceRequests"`
	DiagnosticReports    []fhir.DiagnosticReport    `json:"diagnosticReports"`
	MedicationRequests   []fhir.MedicationRequest   `json:"medicationRequests"`
	CarePlans            []fhir.CarePlan            `json:"carePlans"`
}

// BuildResources invokes every per-section builder exactly once and
// concatenates same-type outputs into their group:
//
//	conditions   = chief complaint ++ past medical ++ OB/GYN
//	observations = HPI ++ system enquiry ++ OB/GYN ++ social history
//	               ++ personal summary ++ examination
func BuildResources(rec *EncounterRecord) *EncounterResources {
	result := &EncounterResources{
		Encounter: BuildEncounter(rec),
	}

	result.Conditions = append(result.Conditions, BuildChiefComplaintConditions(rec)...)
	result.Conditions = append(result.Conditions, BuildPastMedicalConditions(rec)...)
	result.Conditions = append(result.Conditions, BuildOBGYNConditions(rec)...)

	result.Observations = append(result.Observations, BuildPresentIllnessObservations(rec)...)
	result.Observations = append(result.Observations, BuildSystemEnquiryObservations(rec)...)
	result.Observations = append(result.Observations, BuildOBGYNObservations(rec)...)
	result.Observations = append(result.Observations, BuildSocialHistoryObservations(rec)...)
	result.Observations = append(result.Observations, BuildPersonalHistorySummary(rec)...)
	result.Observations = append(result.Observations, BuildExaminationObservations(rec)...)

	result.MedicationStatements = BuildMedicationStatements(rec)
	result.Procedures = BuildSurgicalProcedures(rec)
	result.Immunizations = BuildImmunizations(rec)
	result.FamilyHistories = BuildFamilyMemberHistories(rec)
	result.ServiceRequests = BuildServiceRequests(rec)
	result.DiagnosticReports = BuildDiagnosticReports(rec)
	result.MedicationRequests = BuildMedicationRequests(rec)
	result.CarePlans = BuildCarePlans(rec)

	return result
}

// BuildEncounter synthesizes the Encounter resource for the record. The id
// is left empty when the record has no encounter id; the bundle assembler
// substitutes a local placeholder there.
func BuildEncounter(rec *EncounterRecord) fhir.Encounter {
	class := fhir.Coding{
		System:  fhir.SystemActCode,
		Code:    fhir.EncounterClassAmbulatory,
		Display: "ambulatory",
	}
	if rec.EncounterType == EncounterInpatient {
		class = fhir.Coding{
			System:  fhir.SystemActCode,
			Code:    fhir.EncounterClassInpatient,
			Display: "inpatient encounter",
		}
	}
	enc := fhir.Encounter{
		ResourceType: "Encounter",
		ID:           rec.EncounterID,
		Status:       "finished",
		Class:        class,
		Subject:      fhir.PatientRef(rec.PatientID),
		Participant: []fhir.Participant{
			{Individual: fhir.PractitionerRef(rec.ProviderID)},
		},
	}
	if rec.EncounterType != "" {
		enc.Type = []fhir.CodeableConcept{fhir.TextConcept(string(rec.EncounterType))}
	}
	if rec.EncounterDate != "" {
		enc.Period = &fhir.Period{Start: rec.EncounterDate}
	}
	return enc
}

// resourceList flattens the groups into a single slice in group order, the
// encounter first. Used by the bundle assembler and the NDJSON exporter.
func (r *EncounterResources) interfaceGroups() [][]interface{} {
	groups := make([][]interface{}, 0, 10)
	appendGroup := func(n int, at func(int) interface{}) {
		group := make([]interface{}, n)
		for i := 0; i < n; i++ {
			group[i] = at(i)
		}
		groups = append(groups, group)
	}
	appendGroup(len(r.Conditions), func(i int) interface{} { return r.Conditions[i] })
	appendGroup(len(r.Observations), func(i int) interface{} { return r.Observations[i] })
	appendGroup(len(r.MedicationStatements), func(i int) interface{} { return r.MedicationStatements[i] })
	appendGroup(len(r.Procedures), func(i int) interface{} { return r.Procedures[i] })
	appendGroup(len(r.Immunizations), func(i int) interface{} { return r.Immunizations[i] })
	appendGroup(len(r.FamilyHistories), func(i int) interface{} { return r.FamilyHistories[i] })
	appendGroup(len(r.ServiceRequests), func(i int) interface{} { return r.ServiceRequests[i] })
	appendGroup(len(r.DiagnosticReports), func(i int) interface{} { return r.DiagnosticReports[i] })
	appendGroup(len(r.MedicationRequests), func(i int) interface{} { return r.MedicationRequests[i] })
	appendGroup(len(r.CarePlans), func(i int) interface{} { return r.CarePlans[i] })
	return groups
}

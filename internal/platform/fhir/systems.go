package fhir

// Coding system URIs.
const (
	SystemSNOMED = "http://snomed.info/sct"
	SystemICD10  = "http://hl7.org/fhir/sid/icd-10"
	SystemLOINC  = "http://loinc.org"
	SystemRxNorm = "http://www.nlm.nih.gov/research/umls/rxnorm"
	SystemCVX    = "http://hl7.org/fhir/sid/cvx"

	SystemConditionClinical     = "http://terminology.hl7.org/CodeSystem/condition-clinical"
	SystemConditionVerification = "http://terminology.hl7.org/CodeSystem/condition-ver-status"
	SystemConditionCategory     = "http://terminology.hl7.org/CodeSystem/condition-category"
	SystemObservationCategory   = "http://terminology.hl7.org/CodeSystem/observation-category"
	SystemObservationInterp     = "http://terminology.hl7.org/CodeSystem/v3-ObservationInterpretation"
	SystemActCode               = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
)

// ConditionClinicalStatus codes per FHIR R4.
const (
	ConditionActive    = "active"
	ConditionRemission = "remission"
	ConditionResolved  = "resolved"
)

// ObservationCategory codes.
const (
	ObsCategorySurvey        = "survey"
	ObsCategoryVitalSigns    = "vital-signs"
	ObsCategoryExam          = "exam"
	ObsCategorySocialHistory = "social-history"
)

// EncounterClass codes per v3-ActCode.
const (
	EncounterClassAmbulatory = "AMB"
	EncounterClassInpatient  = "IMP"
)

// ObservationInterpretation codes.
const (
	InterpretationNormal = "N"
)

// ClinicalStatus builds a condition-clinical coded concept.
func ClinicalStatus(code string) CodeableConcept {
	return CodedConcept(SystemConditionClinical, code, code)
}

// VerificationStatus builds a condition-ver-status coded concept.
func VerificationStatus(code string) CodeableConcept {
	return CodedConcept(SystemConditionVerification, code, code)
}

// ConditionCategory builds a condition-category coded concept.
func ConditionCategory(code, display string) CodeableConcept {
	return CodedConcept(SystemConditionCategory, code, display)
}

// ObservationCategory builds an observation-category coded concept.
func ObservationCategory(code string) CodeableConcept {
	return CodedConcept(SystemObservationCategory, code, code)
}

package fhir

// Typed FHIR R4 resource structs for the resource types this service emits.
// Only the fields the encounter export pipeline populates are modelled; the
// structs marshal to structurally valid R4 JSON for that subset.

// Encounter represents a FHIR Encounter resource.
type Encounter struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id,omitempty"`
	Status       string            `json:"status"`
	Class        Coding            `json:"class"`
	Type         []CodeableConcept `json:"type,omitempty"`
	Subject      Reference         `json:"subject"`
	Participant  []Participant     `json:"participant,omitempty"`
	Period       *Period           `json:"period,omitempty"`
}

type Participant struct {
	Individual Reference `json:"individual"`
}

// Condition represents a FHIR Condition resource.
type Condition struct {
	ResourceType       string            `json:"resourceType"`
	ClinicalStatus     *CodeableConcept  `json:"clinicalStatus,omitempty"`
	VerificationStatus *CodeableConcept  `json:"verificationStatus,omitempty"`
	Category           []CodeableConcept `json:"category,omitempty"`
	Code               CodeableConcept   `json:"code"`
	Subject            Reference         `json:"subject"`
	Encounter          *Reference        `json:"encounter,omitempty"`
	OnsetDateTime      string            `json:"onsetDateTime,omitempty"`
	Note               []Annotation      `json:"note,omitempty"`
}

// Observation represents a FHIR Observation resource.
type Observation struct {
	ResourceType      string                 `json:"resourceType"`
	Status            string                 `json:"status"`
	Category          []CodeableConcept      `json:"category,omitempty"`
	Code              CodeableConcept        `json:"code"`
	Subject           Reference              `json:"subject"`
	Encounter         *Reference             `json:"encounter,omitempty"`
	EffectiveDateTime string                 `json:"effectiveDateTime,omitempty"`
	ValueQuantity     *Quantity              `json:"valueQuantity,omitempty"`
	ValueString       string                 `json:"valueString,omitempty"`
	ValueDateTime     string                 `json:"valueDateTime,omitempty"`
	Interpretation    []CodeableConcept      `json:"interpretation,omitempty"`
	Component         []ObservationComponent `json:"component,omitempty"`
	Note              []Annotation           `json:"note,omitempty"`
}

type ObservationComponent struct {
	Code                 CodeableConcept  `json:"code"`
	ValueQuantity        *Quantity        `json:"valueQuantity,omitempty"`
	ValueString          string           `json:"valueString,omitempty"`
	ValueCodeableConcept *CodeableConcept `json:"valueCodeableConcept,omitempty"`
}

// MedicationStatement represents a FHIR MedicationStatement resource.
type MedicationStatement struct {
	ResourceType              string            `json:"resourceType"`
	Status                    string            `json:"status"`
	MedicationCodeableConcept CodeableConcept   `json:"medicationCodeableConcept"`
	Subject                   Reference         `json:"subject"`
	Context                   *Reference        `json:"context,omitempty"`
	EffectivePeriod           *Period           `json:"effectivePeriod,omitempty"`
	Dosage                    []Dosage          `json:"dosage,omitempty"`
	ReasonCode                []CodeableConcept `json:"reasonCode,omitempty"`
	Note                      []Annotation      `json:"note,omitempty"`
}

type Dosage struct {
	Text string `json:"text,omitempty"`
}

// Procedure represents a FHIR Procedure resource.
type Procedure struct {
	ResourceType      string            `json:"resourceType"`
	Status            string            `json:"status"`
	Code              CodeableConcept   `json:"code"`
	Subject           Reference         `json:"subject"`
	Encounter         *Reference        `json:"encounter,omitempty"`
	PerformedDateTime string            `json:"performedDateTime,omitempty"`
	BodySite          []CodeableConcept `json:"bodySite,omitempty"`
	Outcome           *CodeableConcept  `json:"outcome,omitempty"`
	Note              []Annotation      `json:"note,omitempty"`
}

// Immunization represents a FHIR Immunization resource.
type Immunization struct {
	ResourceType       string           `json:"resourceType"`
	Status             string           `json:"status"`
	VaccineCode        CodeableConcept  `json:"vaccineCode"`
	Patient            Reference        `json:"patient"`
	Encounter          *Reference       `json:"encounter,omitempty"`
	OccurrenceDateTime string           `json:"occurrenceDateTime,omitempty"`
	LotNumber          string           `json:"lotNumber,omitempty"`
	Manufacturer       *Reference       `json:"manufacturer,omitempty"`
	Site               *CodeableConcept `json:"site,omitempty"`
	Route              *CodeableConcept `json:"route,omitempty"`
	Note               []Annotation     `json:"note,omitempty"`
}

// FamilyMemberHistory represents a FHIR FamilyMemberHistory resource.
type FamilyMemberHistory struct {
	ResourceType string                  `json:"resourceType"`
	Status       string                  `json:"status"`
	Patient      Reference               `json:"patient"`
	Relationship CodeableConcept         `json:"relationship"`
	Condition    []FamilyMemberCondition `json:"condition,omitempty"`
}

type FamilyMemberCondition struct {
	Code        CodeableConcept `json:"code"`
	OnsetString string          `json:"onsetString,omitempty"`
}

// ServiceRequest represents a FHIR ServiceRequest resource.
type ServiceRequest struct {
	ResourceType string          `json:"resourceType"`
	Status       string          `json:"status"`
	Intent       string          `json:"intent"`
	Priority     string          `json:"priority,omitempty"`
	Code         CodeableConcept `json:"code"`
	Subject      Reference       `json:"subject"`
	Encounter    *Reference      `json:"encounter,omitempty"`
	Requester    *Reference      `json:"requester,omitempty"`
	Note         []Annotation    `json:"note,omitempty"`
}

// DiagnosticReport represents a FHIR DiagnosticReport resource.
type DiagnosticReport struct {
	ResourceType string          `json:"resourceType"`
	Status       string          `json:"status"`
	Code         CodeableConcept `json:"code"`
	Subject      Reference       `json:"subject"`
	Encounter    *Reference      `json:"encounter,omitempty"`
	Conclusion   string          `json:"conclusion,omitempty"`
}

// MedicationRequest represents a FHIR MedicationRequest resource.
type MedicationRequest struct {
	ResourceType              string            `json:"resourceType"`
	Status                    string            `json:"status"`
	Intent                    string            `json:"intent"`
	MedicationCodeableConcept CodeableConcept   `json:"medicationCodeableConcept"`
	Subject                   Reference         `json:"subject"`
	Encounter                 *Reference        `json:"encounter,omitempty"`
	Requester                 *Reference        `json:"requester,omitempty"`
	DosageInstruction         []Dosage          `json:"dosageInstruction,omitempty"`
	ReasonCode                []CodeableConcept `json:"reasonCode,omitempty"`
	Note                      []Annotation      `json:"note,omitempty"`
}

// CarePlan represents a FHIR CarePlan resource.
type CarePlan struct {
	ResourceType string     `json:"resourceType"`
	Status       string     `json:"status"`
	Intent       string     `json:"intent"`
	Title        string     `json:"title,omitempty"`
	Description  string     `json:"description,omitempty"`
	Subject      Reference  `json:"subject"`
	Encounter    *Reference `json:"encounter,omitempty"`
	Author       *Reference `json:"author,omitempty"`
}

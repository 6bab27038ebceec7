package fhir

import "fmt"

// Shared FHIR R4 datatypes used by the resource structs in this package.
//
// Dates and periods are carried as strings rather than time.Time: encounter
// records hold free-form, unvalidated date text (a bare year, "2023-05", a
// full timestamp) and FHIR date/dateTime fields accept all of those forms.

type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type Reference struct {
	Reference string `json:"reference,omitempty"`
	Type      string `json:"type,omitempty"`
	Display   string `json:"display,omitempty"`
}

type Period struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

type Annotation struct {
	Text string `json:"text"`
}

// TextConcept builds a text-only CodeableConcept with no coding entries.
func TextConcept(text string) CodeableConcept {
	return CodeableConcept{Text: text}
}

// CodedConcept builds a CodeableConcept with a single coding plus text.
func CodedConcept(system, code, display string) CodeableConcept {
	return CodeableConcept{
		Coding: []Coding{{System: system, Code: code, Display: display}},
		Text:   display,
	}
}

// FormatReference creates a FHIR reference string.
func FormatReference(resourceType, id string) string {
	return fmt.Sprintf("%s/%s", resourceType, id)
}

// PatientRef builds a Patient reference.
func PatientRef(patientID string) Reference {
	return Reference{Reference: FormatReference("Patient", patientID)}
}

// EncounterRef builds an Encounter reference.
func EncounterRef(encounterID string) Reference {
	return Reference{Reference: FormatReference("Encounter", encounterID)}
}

// PractitionerRef builds a Practitioner reference.
func PractitionerRef(practitionerID string) Reference {
	return Reference{Reference: FormatReference("Practitioner", practitionerID)}
}

package clinical

import (
	"encoding/json"

	"github.com/clindoc/clindoc/internal/platform/fhir"
)

// NDJSONExport holds one newline-delimited JSON string per resource group,
// suitable for application/x-ndjson bulk-import endpoints. Empty groups are
// empty strings; the encounter field is a single JSON object.
type NDJSONExport struct {
	Encounter            string `json:"encounter"`
	Conditions           string `json:"conditions"`
	Observations         string `json:"observations"`
	MedicationStatements string `json:"medicationStatements"`
	Procedures           string `json:"procedures"`
	Immunizations        string `json:"immunizations"`
	FamilyHistories      string `json:"familyHistories"`
	ServiceRequests      string `json:"serviceRequests"`
	DiagnosticReports    string `json:"diagnosticReports"`
	MedicationRequests   string `json:"medicationRequests"`
	CarePlans            string `json:"carePlans"`
}

// BuildNDJSON builds the resources for the record and serializes each group
// as newline-delimited JSON.
func BuildNDJSON(rec *EncounterRecord) (*NDJSONExport, error) {
	return ndjsonFromResources(BuildResources(rec))
}

func ndjsonFromResources(resources *EncounterResources) (*NDJSONExport, error) {
	encounter, err := json.Marshal(resources.Encounter)
	if err != nil {
		return nil, err
	}
	groups := resources.interfaceGroups()
	lines := make([]string, len(groups))
	for i, group := range groups {
		lines[i], err = fhir.MarshalLines(group)
		if err != nil {
			return nil, err
		}
	}
	return &NDJSONExport{
		Encounter:            string(encounter),
		Conditions:           lines[0],
		Observations:         lines[1],
		MedicationStatements: lines[2],
		Procedures:           lines[3],
		Immunizations:        lines[4],
		FamilyHistories:      lines[5],
		ServiceRequests:      lines[6],
		DiagnosticReports:    lines[7],
		MedicationRequests:   lines[8],
		CarePlans:            lines[9],
	}, nil
}

package clinical

import (
	"github.com/clindoc/clindoc/internal/platform/fhir"
)

// LocalEncounterID is the placeholder id assigned to the synthesized
// Encounter when the record carries no encounter id, so downstream
// consumers always see a non-empty id on the first bundle entry.
const LocalEncounterID = "encounter-local"

// BuildBundle assembles the built resources into a collection Bundle. The
// Encounter is always the first entry; the remaining entries follow the
// aggregate group order (conditions, observations, medication statements,
// procedures, immunizations, family histories, service requests, diagnostic
// reports, medication requests, care plans).
func BuildBundle(rec *EncounterRecord, bundleID string) *fhir.Bundle {
	return bundleFromResources(BuildResources(rec), bundleID)
}

func bundleFromResources(resources *EncounterResources, bundleID string) *fhir.Bundle {
	encounter := resources.Encounter
	if encounter.ID == "" {
		encounter.ID = LocalEncounterID
	}
	entries := []interface{}{encounter}
	for _, group := range resources.interfaceGroups() {
		entries = append(entries, group...)
	}
	return fhir.NewCollectionBundle(bundleID, entries)
}

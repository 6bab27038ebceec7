package clinical

import (
	"testing"

	"github.com/clindoc/clindoc/internal/platform/fhir"
)

func TestBuildBundle_EncounterFirst(t *testing.T) {
	b := BuildBundle(fullRecord(), "b-1")

	if b.Type != "collection" {
		t.Errorf("expected collection bundle, got %s", b.Type)
	}
	if b.ID != "b-1" {
		t.Errorf("expected bundle id b-1, got %s", b.ID)
	}
	if len(b.Entry) == 0 {
		t.Fatal("expected bundle entries")
	}
	enc, ok := b.Entry[0].Resource.(fhir.Encounter)
	if !ok {
		t.Fatalf("expected the Encounter as the first entry, got %T", b.Entry[0].Resource)
	}
	if enc.ID != "enc-1" {
		t.Errorf("expected encounter id enc-1, got %q", enc.ID)
	}

	// Entry count: encounter + every built resource.
	r := BuildResources(fullRecord())
	want := 1 + len(r.Conditions) + len(r.Observations) + len(r.MedicationStatements) +
		len(r.Procedures) + len(r.Immunizations) + len(r.FamilyHistories) +
		len(r.ServiceRequests) + len(r.DiagnosticReports) + len(r.MedicationRequests) +
		len(r.CarePlans)
	if len(b.Entry) != want {
		t.Errorf("expected %d entries, got %d", want, len(b.Entry))
	}

	// Conditions follow the encounter, care plan is last.
	if _, ok := b.Entry[1].Resource.(fhir.Condition); !ok {
		t.Errorf("expected a Condition as the second entry, got %T", b.Entry[1].Resource)
	}
	if _, ok := b.Entry[len(b.Entry)-1].Resource.(fhir.CarePlan); !ok {
		t.Errorf("expected the CarePlan as the last entry, got %T", b.Entry[len(b.Entry)-1].Resource)
	}
}

func TestBuildBundle_LocalEncounterID(t *testing.T) {
	rec := fullRecord()
	rec.EncounterID = ""
	b := BuildBundle(rec, "b-2")

	enc := b.Entry[0].Resource.(fhir.Encounter)
	if enc.ID != LocalEncounterID {
		t.Errorf("expected placeholder id %q, got %q", LocalEncounterID, enc.ID)
	}
}

func TestBuildBundle_EmptyRecord(t *testing.T) {
	b := BuildBundle(baseRecord(), "b-3")
	if len(b.Entry) != 1 {
		t.Fatalf("expected only the encounter entry, got %d", len(b.Entry))
	}
}

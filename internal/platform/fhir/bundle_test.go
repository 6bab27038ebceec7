package fhir

import "testing"

func TestNewCollectionBundle(t *testing.T) {
	resources := []interface{}{
		Encounter{ResourceType: "Encounter", ID: "e-1"},
		Condition{ResourceType: "Condition"},
	}
	b := NewCollectionBundle("b-1", resources)

	if b.ResourceType != "Bundle" {
		t.Errorf("expected resourceType Bundle, got %s", b.ResourceType)
	}
	if b.Type != "collection" {
		t.Errorf("expected type collection, got %s", b.Type)
	}
	if b.ID != "b-1" {
		t.Errorf("expected id b-1, got %s", b.ID)
	}
	if len(b.Entry) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(b.Entry))
	}
	enc, ok := b.Entry[0].Resource.(Encounter)
	if !ok {
		t.Fatalf("expected first entry to be an Encounter, got %T", b.Entry[0].Resource)
	}
	if enc.ID != "e-1" {
		t.Errorf("expected encounter id e-1, got %s", enc.ID)
	}
}

func TestNewCollectionBundle_Empty(t *testing.T) {
	b := NewCollectionBundle("b-2", nil)
	if len(b.Entry) != 0 {
		t.Errorf("expected no entries, got %d", len(b.Entry))
	}
}

package clinical

import (
	"reflect"
	"testing"

	"github.com/clindoc/clindoc/internal/platform/fhir"
)

func TestBuildSystemEnquiryObservations_Normal(t *testing.T) {
	rec := baseRecord()
	rec.History.SystemEnquiry = map[string]SystemEntry{
		"respiratory": {Normal: true},
	}

	obs := BuildSystemEnquiryObservations(rec)
	if len(obs) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(obs))
	}
	o := obs[0]
	if o.Code.Text != "Review of systems: respiratory" {
		t.Errorf("unexpected code text %q", o.Code.Text)
	}
	if len(o.Interpretation) != 1 || o.Interpretation[0].Coding[0].Code != fhir.InterpretationNormal {
		t.Error("expected Normal interpretation")
	}
	if o.ValueString != "" {
		t.Errorf("expected no value on a normal-system observation, got %q", o.ValueString)
	}
}

func TestBuildSystemEnquiryObservations_PositiveSymptoms(t *testing.T) {
	rec := baseRecord()
	rec.History.SystemEnquiry = map[string]SystemEntry{
		"cardiovascular": {
			// Normal true alongside positive symptoms: symptoms win.
			Normal: true,
			PositiveSymptoms: []PositiveSymptom{
				{SNOMEDCode: "29857009", Label: "Chest pain"},
				{Label: "Palpitations"},
			},
			SummaryText: "chest pain on exertion with palpitations",
		},
	}

	obs := BuildSystemEnquiryObservations(rec)
	if len(obs) != 2 {
		t.Fatalf("expected one observation per symptom, got %d", len(obs))
	}
	for _, o := range obs {
		if o.ValueString != "chest pain on exertion with palpitations" {
			t.Errorf("expected per-system summary on every symptom observation, got %q", o.ValueString)
		}
		if len(o.Interpretation) != 0 {
			t.Error("expected no interpretation on a symptom observation")
		}
	}
	if obs[0].Code.Text != "cardiovascular: Chest pain" {
		t.Errorf("unexpected code text %q", obs[0].Code.Text)
	}
	if obs[0].Code.Coding[0].Code != "29857009" || obs[0].Code.Coding[0].Display != "Chest pain" {
		t.Error("expected SNOMED coding with the symptom label as display")
	}
	if len(obs[1].Code.Coding) != 0 {
		t.Error("expected text-only code for an uncoded symptom")
	}
}

func TestBuildSystemEnquiryObservations_NeitherNormalNorSymptoms(t *testing.T) {
	rec := baseRecord()
	rec.History.SystemEnquiry = map[string]SystemEntry{
		"neurological": {Normal: false},
	}
	if obs := BuildSystemEnquiryObservations(rec); obs != nil {
		t.Errorf("expected no observations, got %d", len(obs))
	}
}

func TestBuildSystemEnquiryObservations_Deterministic(t *testing.T) {
	rec := baseRecord()
	rec.History.SystemEnquiry = map[string]SystemEntry{
		"respiratory":    {Normal: true},
		"cardiovascular": {Normal: true},
		"abdominal":      {Normal: true},
	}

	first := BuildSystemEnquiryObservations(rec)
	for i := 0; i < 10; i++ {
		if again := BuildSystemEnquiryObservations(rec); !reflect.DeepEqual(first, again) {
			t.Fatal("expected identical output on repeated builds")
		}
	}
	if first[0].Code.Text != "Review of systems: abdominal" {
		t.Errorf("expected sorted system order, got %q first", first[0].Code.Text)
	}
}

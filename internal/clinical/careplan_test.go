package clinical

import "testing"

func TestBuildCarePlans(t *testing.T) {
	rec := baseRecord()
	rec.Assessment = "Acute bronchitis"
	rec.Plan = "Supportive care, review in one week"

	plans := BuildCarePlans(rec)
	if len(plans) != 1 {
		t.Fatalf("expected a single care plan, got %d", len(plans))
	}
	cp := plans[0]
	if cp.Status != "active" || cp.Intent != "plan" {
		t.Error("expected active plan")
	}
	if cp.Title != "Assessment and plan" {
		t.Errorf("unexpected title %q", cp.Title)
	}
	want := "Assessment: Acute bronchitis\n\nPlan: Supportive care, review in one week"
	if cp.Description != want {
		t.Errorf("expected description %q, got %q", want, cp.Description)
	}
	if cp.Author == nil || cp.Author.Reference != "Practitioner/doc-1" {
		t.Error("expected provider as author")
	}
}

func TestBuildCarePlans_AssessmentOnly(t *testing.T) {
	rec := baseRecord()
	rec.Assessment = "Stable"

	plans := BuildCarePlans(rec)
	if len(plans) != 1 {
		t.Fatalf("expected a single care plan, got %d", len(plans))
	}
	if plans[0].Description != "Assessment: Stable" {
		t.Errorf("unexpected description %q", plans[0].Description)
	}
}

func TestBuildCarePlans_Empty(t *testing.T) {
	rec := baseRecord()
	if plans := BuildCarePlans(rec); plans != nil {
		t.Errorf("expected no care plan, got %d", len(plans))
	}
}

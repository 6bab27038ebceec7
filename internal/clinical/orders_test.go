package clinical

import "testing"

func TestBuildServiceRequests(t *testing.T) {
	rec := baseRecord()
	rec.Investigations = &Investigations{
		OrderedTests: []OrderedTest{
			{TestName: "Complete blood count", Code: "58410-2", Urgency: UrgencyUrgent, Notes: "fasting not required"},
			{TestName: "Lipid panel"},
			{Notes: "orphan notes"}, // no name, no code: skipped
		},
	}

	srs := BuildServiceRequests(rec)
	if len(srs) != 2 {
		t.Fatalf("expected 2 service requests, got %d", len(srs))
	}

	cbc := srs[0]
	if cbc.Status != "active" || cbc.Intent != "order" {
		t.Error("expected active order")
	}
	if cbc.Priority != "urgent" {
		t.Errorf("expected urgent priority, got %q", cbc.Priority)
	}
	if len(cbc.Note) != 2 {
		t.Fatalf("expected urgency note plus free-text note, got %d", len(cbc.Note))
	}
	if cbc.Note[0].Text != "Urgency: URGENT" {
		t.Errorf("unexpected urgency note %q", cbc.Note[0].Text)
	}
	if cbc.Note[1].Text != "fasting not required" {
		t.Errorf("unexpected free-text note %q", cbc.Note[1].Text)
	}
	if cbc.Requester == nil || cbc.Requester.Reference != "Practitioner/doc-1" {
		t.Error("expected provider as requester")
	}

	lipid := srs[1]
	if len(lipid.Note) != 0 {
		t.Errorf("expected no notes, got %d", len(lipid.Note))
	}
	if len(lipid.Code.Coding) != 0 || lipid.Code.Text != "Lipid panel" {
		t.Error("expected text-only code without a LOINC code")
	}
}

func TestBuildDiagnosticReports(t *testing.T) {
	rec := baseRecord()
	rec.Investigations = &Investigations{
		Results: []TestResult{
			{TestName: "Hemoglobin", Value: "13.5", Unit: "g/dL", ReferenceRange: "12-16", Status: ResultCompleted},
			{TestName: "TSH", Status: ResultPending},
			{TestName: "Potassium", Value: "6.1", Unit: "mmol/L", Status: ResultAbnormal},
			{Value: "5"}, // no test name: skipped
		},
	}

	reports := BuildDiagnosticReports(rec)
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}

	hb := reports[0]
	if hb.Status != "final" {
		t.Errorf("expected final status for completed result, got %s", hb.Status)
	}
	if hb.Conclusion != "13.5 g/dL | Ref: 12-16 | Status: completed" {
		t.Errorf("unexpected conclusion %q", hb.Conclusion)
	}

	tsh := reports[1]
	if tsh.Status != "registered" {
		t.Errorf("expected registered status for pending result, got %s", tsh.Status)
	}
	if tsh.Conclusion != "Status: pending" {
		t.Errorf("unexpected conclusion %q", tsh.Conclusion)
	}

	if reports[2].Status != "final" {
		t.Errorf("expected final status for abnormal result, got %s", reports[2].Status)
	}
}

func TestBuildMedicationRequests_DosageOrder(t *testing.T) {
	rec := baseRecord()
	rec.Medications = &Medications{
		Prescriptions: []Prescription{
			{
				MedicationName: "Amoxicillin",
				Dosage:         "500 mg",
				Route:          "oral",
				Frequency:      "8 hourly",
				Duration:       "5 days",
				Indication:     "Acute otitis media",
			},
			{Dosage: "10 mg"}, // no name: skipped
		},
	}

	reqs := BuildMedicationRequests(rec)
	if len(reqs) != 1 {
		t.Fatalf("expected 1 medication request, got %d", len(reqs))
	}
	req := reqs[0]
	want := "500 mg, oral, 8 hourly, for 5 days, Indication: Acute otitis media"
	if req.DosageInstruction[0].Text != want {
		t.Errorf("expected dosage %q, got %q", want, req.DosageInstruction[0].Text)
	}
	if req.ReasonCode[0].Text != "Acute otitis media" {
		t.Error("expected indication as reason code")
	}
	if req.Requester == nil || req.Requester.Reference != "Practitioner/doc-1" {
		t.Error("expected provider as requester")
	}
}

func TestBuildMedicationRequests_PartialDosage(t *testing.T) {
	rec := baseRecord()
	rec.Medications = &Medications{
		Prescriptions: []Prescription{{MedicationName: "Paracetamol", Dosage: "1 g", Frequency: "as needed"}},
	}
	reqs := BuildMedicationRequests(rec)
	if reqs[0].DosageInstruction[0].Text != "1 g, as needed" {
		t.Errorf("unexpected dosage %q", reqs[0].DosageInstruction[0].Text)
	}
}

func TestOrderBuilders_NoInvestigations(t *testing.T) {
	rec := baseRecord()
	if srs := BuildServiceRequests(rec); srs != nil {
		t.Error("expected no service requests without investigations")
	}
	if reports := BuildDiagnosticReports(rec); reports != nil {
		t.Error("expected no reports without investigations")
	}
	if reqs := BuildMedicationRequests(rec); reqs != nil {
		t.Error("expected no requests without medications")
	}
}

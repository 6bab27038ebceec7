package fhir

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNDJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	if err := w.WriteResource(Condition{ResourceType: "Condition"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.WriteResource(Observation{ResourceType: "Observation", Status: "final"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Errorf("line is not valid JSON: %v", err)
		}
	}
}

func TestMarshalLines(t *testing.T) {
	out, err := MarshalLines([]interface{}{
		Condition{ResourceType: "Condition"},
		Condition{ResourceType: "Condition"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected exactly one newline separator, got %d", strings.Count(out, "\n"))
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("expected no trailing newline")
	}
}

func TestMarshalLines_Empty(t *testing.T) {
	out, err := MarshalLines(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty string for empty group, got %q", out)
	}
}

package exportlog

import (
	"time"

	"github.com/google/uuid"
)

// ExportRecord maps to the export_log table: one row per export attempt,
// recording what was exported and whether the upload succeeded. Only
// operational metadata is kept — never the generated resources themselves.
type ExportRecord struct {
	ID            uuid.UUID `db:"id" json:"id"`
	EncounterID   *string   `db:"encounter_id" json:"encounter_id,omitempty"`
	PatientID     string    `db:"patient_id" json:"patient_id"`
	ProviderID    string    `db:"provider_id" json:"provider_id"`
	Destination   string    `db:"destination" json:"destination"`
	ResourceCount int       `db:"resource_count" json:"resource_count"`
	Uploaded      bool      `db:"uploaded" json:"uploaded"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

package exportlog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates a Postgres-backed export log repository.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const cols = `id, encounter_id, patient_id, provider_id, destination, resource_count, uploaded, created_at`

func scanRecord(row pgx.Row) (*ExportRecord, error) {
	var r ExportRecord
	err := row.Scan(&r.ID, &r.EncounterID, &r.PatientID, &r.ProviderID,
		&r.Destination, &r.ResourceCount, &r.Uploaded, &r.CreatedAt)
	return &r, err
}

func (r *repoPG) Create(ctx context.Context, rec *ExportRecord) error {
	rec.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO export_log (id, encounter_id, patient_id, provider_id, destination, resource_count, uploaded)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rec.ID, rec.EncounterID, rec.PatientID, rec.ProviderID,
		rec.Destination, rec.ResourceCount, rec.Uploaded)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*ExportRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM export_log WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM export_log WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*ExportRecord, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM export_log`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM export_log ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func collect(rows pgx.Rows, total int) ([]*ExportRecord, int, error) {
	var items []*ExportRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	return items, total, rows.Err()
}

// Schema is the export_log table definition, applied at startup.
const Schema = `
CREATE TABLE IF NOT EXISTS export_log (
	id UUID PRIMARY KEY,
	encounter_id TEXT,
	patient_id TEXT NOT NULL,
	provider_id TEXT NOT NULL,
	destination TEXT NOT NULL,
	resource_count INT NOT NULL DEFAULT 0,
	uploaded BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_export_log_patient ON export_log (patient_id);
`

package exportlog

import "context"

// Repository persists export audit records.
type Repository interface {
	Create(ctx context.Context, rec *ExportRecord) error
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*ExportRecord, int, error)
	List(ctx context.Context, limit, offset int) ([]*ExportRecord, int, error)
}

package clinical

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clindoc/clindoc/internal/exportlog"
	"github.com/clindoc/clindoc/internal/platform/auth"
	"github.com/clindoc/clindoc/internal/platform/fhir"
)

// BundleUploader is the outbound transport contract: best-effort upload,
// boolean outcome, no error.
type BundleUploader interface {
	UploadBundle(ctx context.Context, bundle *fhir.Bundle, creds auth.Credentials) bool
}

// Service orchestrates validation, resource building, upload and the export
// audit trail. The audit repository may be nil, in which case exports are
// not recorded and the service is fully stateless.
type Service struct {
	uploader BundleUploader
	exports  exportlog.Repository
	logger   zerolog.Logger
}

func NewService(uploader BundleUploader, exports exportlog.Repository, logger zerolog.Logger) *Service {
	return &Service{uploader: uploader, exports: exports, logger: logger}
}

// BuildBundle validates the record and assembles a collection bundle with a
// fresh id.
func (s *Service) BuildBundle(rec *EncounterRecord) (*fhir.Bundle, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return BuildBundle(rec, uuid.NewString()), nil
}

// BuildNDJSON validates the record and serializes the resource groups as
// newline-delimited JSON.
func (s *Service) BuildNDJSON(rec *EncounterRecord) (*NDJSONExport, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return BuildNDJSON(rec)
}

// WriteNDJSON validates the record, builds its resources and streams them to
// w as a single NDJSON document: the encounter line first, then every group
// in order. Nothing is written for an invalid record.
func (s *Service) WriteNDJSON(rec *EncounterRecord, w io.Writer) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	resources := BuildResources(rec)
	nw := fhir.NewNDJSONWriter(w)
	if err := nw.WriteResource(resources.Encounter); err != nil {
		return err
	}
	for _, group := range resources.interfaceGroups() {
		for _, r := range group {
			if err := nw.WriteResource(r); err != nil {
				return err
			}
		}
	}
	return nw.Flush()
}

// Export builds a bundle and uploads it to the FHIR service, recording the
// attempt in the export log. The returned boolean mirrors the transport
// outcome; an error is returned only for an invalid record.
func (s *Service) Export(ctx context.Context, rec *EncounterRecord, creds auth.Credentials) (bool, error) {
	bundle, err := s.BuildBundle(rec)
	if err != nil {
		return false, err
	}
	uploaded := s.uploader.UploadBundle(ctx, bundle, creds)
	s.recordExport(ctx, rec, len(bundle.Entry), uploaded)
	return uploaded, nil
}

// ListExports lists export audit records, optionally scoped to a patient.
func (s *Service) ListExports(ctx context.Context, patientID string, limit, offset int) ([]*exportlog.ExportRecord, int, error) {
	if s.exports == nil {
		return nil, 0, nil
	}
	if patientID != "" {
		return s.exports.ListByPatient(ctx, patientID, limit, offset)
	}
	return s.exports.List(ctx, limit, offset)
}

// recordExport writes the audit row. Failures are logged and swallowed; the
// audit trail never fails an export.
func (s *Service) recordExport(ctx context.Context, rec *EncounterRecord, resourceCount int, uploaded bool) {
	if s.exports == nil {
		return
	}
	entry := &exportlog.ExportRecord{
		PatientID:     rec.PatientID,
		ProviderID:    rec.ProviderID,
		Destination:   "fhir-service",
		ResourceCount: resourceCount,
		Uploaded:      uploaded,
	}
	if rec.EncounterID != "" {
		id := rec.EncounterID
		entry.EncounterID = &id
	}
	if err := s.exports.Create(ctx, entry); err != nil {
		s.logger.Error().Err(err).Str("patient_id", rec.PatientID).Msg("failed to record export")
	}
}

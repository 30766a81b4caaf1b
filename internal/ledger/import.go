package ledger

import (
	"fmt"

	"github.com/google/uuid"

	"paytrack/internal/model"
)

// ImportRecord is one externally-sourced payment row, as produced by the
// spreadsheet collaborator. Status may be empty, in which case the payment
// is imported as pending. Err carries a parse failure reported by the
// reader; such a record is rejected during validation without aborting the
// batch.
type ImportRecord struct {
	Err    error
	Draft  model.PaymentDraft
	Status model.PaymentStatus
}

// ImportResult reports the outcome of a bulk import: the payments actually
// added and one validation error per rejected record.
type ImportResult struct {
	Imported []model.Payment
	Failed   []*ValidationError
}

// BulkImport validates each incoming record and appends the well-formed ones
// to the collection. Malformed records are rejected individually without
// aborting the batch. Requires the add permission.
func (s *PaymentStore) BulkImport(records []ImportRecord, actor model.User) (ImportResult, error) {
	if !actor.Permissions.Add {
		return ImportResult{}, fmt.Errorf("%w: add", ErrPermissionDenied)
	}

	var result ImportResult
	for i, rec := range records {
		if err := validateRecord(rec); err != nil {
			result.Failed = append(result.Failed, &ValidationError{Row: i + 1, Record: rec, Err: err})
			continue
		}

		status := rec.Status
		if status == "" {
			status = model.StatusPending
		}
		result.Imported = append(result.Imported, model.Payment{
			ID:            uuid.NewString(),
			DueDate:       rec.Draft.DueDate,
			CheckNumber:   rec.Draft.CheckNumber,
			Bank:          rec.Draft.Bank,
			Company:       rec.Draft.Company,
			BusinessGroup: rec.Draft.BusinessGroup,
			Description:   rec.Draft.Description,
			Amount:        rec.Draft.Amount,
			Status:        status,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, result.Imported...)
	return result, nil
}

// Restore discards the entire collection and replaces it with the backup
// snapshot verbatim. The backup originates from this system's own persisted
// format and is assumed well-formed; any undo must happen before the call.
// Requires the add permission.
func (s *PaymentStore) Restore(backup []model.Payment, actor model.User) error {
	if !actor.Permissions.Add {
		return fmt.Errorf("%w: add", ErrPermissionDenied)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = make([]model.Payment, len(backup))
	copy(s.payments, backup)
	return nil
}

func validateRecord(rec ImportRecord) error {
	if rec.Err != nil {
		return rec.Err
	}
	if err := rec.Draft.Validate(); err != nil {
		return err
	}
	switch rec.Status {
	case "", model.StatusPending, model.StatusPaid:
		return nil
	default:
		return fmt.Errorf("invalid status %q", rec.Status)
	}
}

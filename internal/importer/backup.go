package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"paytrack/internal/model"
)

// backupRecord is the persisted JSON shape of one payment. It matches the
// layout this system has always produced, so old backups stay restorable.
type backupRecord struct {
	ID            string  `json:"id"`
	DueDate       string  `json:"dueDate"`
	CheckNumber   string  `json:"checkNumber"`
	Bank          string  `json:"bank"`
	Company       string  `json:"company"`
	BusinessGroup string  `json:"businessGroup"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
}

// WriteBackup writes the payment collection to a JSON backup file.
func WriteBackup(path string, payments []model.Payment) error {
	records := make([]backupRecord, len(payments))
	for i, p := range payments {
		records[i] = backupRecord{
			ID:            p.ID,
			DueDate:       p.DueDate.Format(time.RFC3339),
			CheckNumber:   p.CheckNumber,
			Bank:          p.Bank,
			Company:       p.Company,
			BusinessGroup: p.BusinessGroup,
			Description:   p.Description,
			Amount:        p.Amount,
			Status:        string(p.Status),
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ReadBackup reads a JSON backup file back into payments. Backups originate
// from this system's own format and are restored verbatim.
func ReadBackup(path string) ([]model.Payment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}

	var records []backupRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse backup file: %w", err)
	}

	payments := make([]model.Payment, len(records))
	for i, r := range records {
		due, err := time.Parse(time.RFC3339, r.DueDate)
		if err != nil {
			// Older backups carried bare dates.
			due, err = ParseDate(r.DueDate)
			if err != nil {
				return nil, fmt.Errorf("record %d: invalid due date %q", i, r.DueDate)
			}
		}
		payments[i] = model.Payment{
			ID:            r.ID,
			DueDate:       due,
			CheckNumber:   r.CheckNumber,
			Bank:          r.Bank,
			Company:       r.Company,
			BusinessGroup: r.BusinessGroup,
			Description:   r.Description,
			Amount:        r.Amount,
			Status:        model.PaymentStatus(r.Status),
		}
	}
	return payments, nil
}

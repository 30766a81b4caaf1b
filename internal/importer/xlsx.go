// Package importer converts between .xlsx spreadsheets / JSON backups and
// the plain payment records the engine consumes and produces.
package importer

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"paytrack/internal/ledger"
	"paytrack/internal/model"
)

// DateLayout is the spreadsheet date format.
const DateLayout = "02.01.2006"

// Column order of an exported sheet; imports accept the same layout.
var columns = []string{
	"Vade Tarihi", "Çek No", "Banka", "Firma", "İş Grubu", "Açıklama", "Tutar", "Durum",
}

// ReadRecords reads payment rows from the first sheet of an .xlsx file. The
// first row is treated as a header. Cell-level parse failures are attached
// to the record rather than aborting the read; the engine rejects those
// records individually during bulk import.
func ReadRecords(path string) ([]ledger.ImportRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close spreadsheet", "error", closeErr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	records := make([]ledger.ImportRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, parseRow(row))
	}

	slog.Debug("read spreadsheet records", "path", path, "count", len(records))
	return records, nil
}

func parseRow(row []string) ledger.ImportRecord {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var rec ledger.ImportRecord
	rec.Draft.CheckNumber = cell(1)
	rec.Draft.Bank = cell(2)
	rec.Draft.Company = cell(3)
	rec.Draft.BusinessGroup = cell(4)
	rec.Draft.Description = cell(5)

	if raw := cell(0); raw != "" {
		due, err := ParseDate(raw)
		if err != nil {
			rec.Err = fmt.Errorf("invalid due date %q", raw)
			return rec
		}
		rec.Draft.DueDate = due
	}

	if raw := cell(6); raw != "" {
		amount, err := ParseAmount(raw)
		if err != nil {
			rec.Err = fmt.Errorf("invalid amount %q", raw)
			return rec
		}
		rec.Draft.Amount = amount
	}

	status, err := parseStatus(cell(7))
	if err != nil {
		rec.Err = err
		return rec
	}
	rec.Status = status
	return rec
}

// ParseDate accepts the export layout (DD.MM.YYYY) and ISO dates.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{DateLayout, "2006-01-02", "2.1.2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseAmount parses a non-negative decimal, accepting both dot and comma
// decimal separators and tolerating thousands separators like "1.234,56".
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		// Comma decimal: dots are thousands separators.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if amount < 0 {
		return 0, fmt.Errorf("amount must not be negative: %s", s)
	}
	return amount, nil
}

func parseStatus(s string) (model.PaymentStatus, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case "pending", "ödenmedi":
		return model.StatusPending, nil
	case "paid", "ödendi":
		return model.StatusPaid, nil
	default:
		return "", fmt.Errorf("invalid status %q", s)
	}
}

// WriteRecords writes the payments to an .xlsx file in the export layout,
// one row per payment after a header row.
func WriteRecords(path string, payments []model.Payment) error {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close spreadsheet", "error", closeErr)
		}
	}()

	const sheet = "Ödemeler"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, p := range payments {
		status := "Ödenmedi"
		if p.Status == model.StatusPaid {
			status = "Ödendi"
		}
		row := []any{
			p.DueDate.Format(DateLayout),
			p.CheckNumber,
			p.Bank,
			p.Company,
			p.BusinessGroup,
			p.Description,
			p.AmountString(),
			status,
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell reference: %w", err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return nil
}

package importer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"paytrack/internal/model"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"15.03.2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"5.3.2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"15/03/2024", time.Time{}, false},
		{"not a date", time.Time{}, false},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if !tt.ok {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.True(t, got.Equal(tt.want), tt.input)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"1250.50", 1250.50, true},
		{"1250,50", 1250.50, true},
		{"1.234,56", 1234.56, true},
		{"0", 0, true},
		{" 42 ", 42, true},
		{"-5", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.input)
		if !tt.ok {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	payments := []model.Payment{
		{ID: "p1", DueDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			CheckNumber: "CHK-100", Bank: "Halk Bankası", Company: "ALTAY",
			BusinessGroup: "KULU", Description: "rent", Amount: 1250.5,
			Status: model.StatusPaid},
		{ID: "p2", DueDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			CheckNumber: "CHK-200", Bank: "Deniz Bank", Company: "ONURAY İNŞAAT",
			BusinessGroup: "DİĞER", Amount: 300, Status: model.StatusPending},
	}

	path := filepath.Join(t.TempDir(), "payments.xlsx")
	require.NoError(t, WriteRecords(path, payments))

	records, err := ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	require.NoError(t, first.Err)
	assert.True(t, first.Draft.DueDate.Equal(payments[0].DueDate))
	assert.Equal(t, "CHK-100", first.Draft.CheckNumber)
	assert.Equal(t, "Halk Bankası", first.Draft.Bank)
	assert.Equal(t, "ALTAY", first.Draft.Company)
	assert.Equal(t, "KULU", first.Draft.BusinessGroup)
	assert.Equal(t, "rent", first.Draft.Description)
	assert.Equal(t, 1250.5, first.Draft.Amount)
	assert.Equal(t, model.StatusPaid, first.Status)

	assert.Equal(t, model.StatusPending, records[1].Status)
}

func TestReadRecords_MalformedCellsAttachErrors(t *testing.T) {
	payments := []model.Payment{
		{ID: "p1", DueDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			CheckNumber: "CHK-100", Bank: "Bank A", Company: "Acme",
			BusinessGroup: "North", Amount: 100, Status: model.StatusPending},
	}

	path := filepath.Join(t.TempDir(), "payments.xlsx")
	require.NoError(t, WriteRecords(path, payments))

	// Corrupt the date cell of the data row.
	corruptCell(t, path, "A2", "not-a-date")

	records, err := ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Error(t, records[0].Err)
}

func TestReadRecords_MissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func corruptCell(t *testing.T, path, cell, value string) {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.NoError(t, f.SetCellValue(f.GetSheetList()[0], cell, value))
	require.NoError(t, f.Save())
}

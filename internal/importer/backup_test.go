package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paytrack/internal/model"
)

func TestBackupRoundTrip(t *testing.T) {
	payments := []model.Payment{
		{ID: "p1", DueDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			CheckNumber: "CHK-100", Bank: "Bank A", Company: "Acme",
			BusinessGroup: "North", Description: "rent", Amount: 1250.5,
			Status: model.StatusPaid},
		{ID: "p2", DueDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			CheckNumber: "CHK-200", Bank: "Bank B", Company: "Globex",
			BusinessGroup: "South", Amount: 300, Status: model.StatusPending},
	}

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, WriteBackup(path, payments))

	got, err := ReadBackup(path)
	require.NoError(t, err)
	assert.Equal(t, payments, got)
}

func TestReadBackup_LegacyDateFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	data := `[{"id":"p1","dueDate":"15.03.2024","checkNumber":"CHK-100",
		"bank":"Bank A","company":"Acme","businessGroup":"North",
		"description":"","status":"pending","amount":100}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	got, err := ReadBackup(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].DueDate.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
}

func TestReadBackup_InvalidDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	data := `[{"id":"p1","dueDate":"garbage","status":"pending","amount":1}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	_, err := ReadBackup(path)
	assert.Error(t, err)
}

func TestReadBackup_MissingFile(t *testing.T) {
	_, err := ReadBackup(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

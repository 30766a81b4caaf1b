package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paytrack/internal/model"
	"paytrack/internal/report"
)

func TestCriteriaFromFlags(t *testing.T) {
	cmd := paymentsListCmd()
	require.NoError(t, cmd.Flags().Parse([]string{
		"--month", "2024-03",
		"--check", "chk",
		"--bank", "Bank A", "--bank", "Bank B",
		"--status", "paid",
	}))

	c, err := criteriaFromFlags(cmd)
	require.NoError(t, err)

	require.NotNil(t, c.Month)
	assert.Equal(t, report.Month{Year: 2024, Month: time.March}, *c.Month)
	assert.Equal(t, "chk", c.CheckNumber)
	assert.Equal(t, []string{"Bank A", "Bank B"}, c.Banks)
	assert.Equal(t, model.StatusPaid, c.Status)
	assert.Empty(t, c.Companies)
}

func TestCriteriaFromFlags_InvalidMonth(t *testing.T) {
	cmd := paymentsListCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--month", "March"}))

	_, err := criteriaFromFlags(cmd)
	assert.Error(t, err)
}

func TestCriteriaFromFlags_InvalidStatus(t *testing.T) {
	cmd := paymentsListCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--status", "done"}))

	_, err := criteriaFromFlags(cmd)
	assert.Error(t, err)
}

func TestDraftFromFlags_KeepsBaseFields(t *testing.T) {
	cmd := paymentsEditCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--amount", "1.250,50"}))

	base := model.PaymentDraft{
		DueDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CheckNumber: "CHK-100", Bank: "Bank A", Company: "Acme",
		BusinessGroup: "North", Amount: 99,
	}
	draft, err := draftFromFlags(cmd, base)
	require.NoError(t, err)

	assert.Equal(t, 1250.50, draft.Amount)
	assert.Equal(t, "CHK-100", draft.CheckNumber)
	assert.True(t, draft.DueDate.Equal(base.DueDate))
}

func TestDraftFromFlags_ParsesDate(t *testing.T) {
	cmd := paymentsAddCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--due", "15.03.2024"}))

	draft, err := draftFromFlags(cmd, model.PaymentDraft{})
	require.NoError(t, err)
	assert.True(t, draft.DueDate.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
}

func TestApplyPermissionFlags(t *testing.T) {
	perms := model.AllPermissions()
	require.NoError(t, applyPermissionFlags(&perms, []string{"add"}, []string{"manage-users", "delete"}))

	assert.True(t, perms.Add)
	assert.False(t, perms.ManageUsers)
	assert.False(t, perms.Delete)
	assert.True(t, perms.Edit)

	err := applyPermissionFlags(&perms, []string{"fly"}, nil)
	assert.Error(t, err)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "a1b2c3d4", shortID("a1b2c3d4-0000-0000-0000-000000000000"))
	assert.Equal(t, "plain", shortID("plain"))
}

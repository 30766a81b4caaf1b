package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paytrack/internal/model"
)

func testDraft() model.PaymentDraft {
	return model.PaymentDraft{
		DueDate:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CheckNumber:   "CHK-001",
		Bank:          "Bank A",
		Company:       "Acme",
		BusinessGroup: "North",
		Amount:        1250.50,
	}
}

func fullActor() model.User {
	return model.User{ID: "actor-1", Username: "admin", Permissions: model.AllPermissions()}
}

func TestPaymentStore_Create(t *testing.T) {
	store := NewPaymentStore(nil)
	actor := fullActor()

	p, err := store.Create(testDraft(), actor)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, model.StatusPending, p.Status)
	assert.Equal(t, "CHK-001", p.CheckNumber)

	p2, err := store.Create(testDraft(), actor)
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, p2.ID)

	assert.Len(t, store.Payments(), 2)
}

func TestPaymentStore_CreatePermissionDenied(t *testing.T) {
	store := NewPaymentStore(nil)
	actor := fullActor()
	actor.Permissions.Add = false

	_, err := store.Create(testDraft(), actor)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Empty(t, store.Payments())
}

func TestPaymentStore_CreateInvalidDraft(t *testing.T) {
	store := NewPaymentStore(nil)

	draft := testDraft()
	draft.Bank = "  "
	_, err := store.Create(draft, fullActor())
	assert.Error(t, err)
	assert.Empty(t, store.Payments())
}

func TestPaymentStore_UpdatePreservesStatus(t *testing.T) {
	store := NewPaymentStore(nil)
	actor := fullActor()

	p, err := store.Create(testDraft(), actor)
	require.NoError(t, err)

	_, err = store.ConfirmStatusChange(p.ID, actor)
	require.NoError(t, err)

	draft := testDraft()
	draft.Amount = 999
	updated, err := store.Update(p.ID, draft, actor)
	require.NoError(t, err)

	assert.Equal(t, model.StatusPaid, updated.Status)
	assert.Equal(t, 999.0, updated.Amount)
	assert.Equal(t, p.ID, updated.ID)
}

func TestPaymentStore_UpdateNotFound(t *testing.T) {
	store := NewPaymentStore(nil)
	_, err := store.Update("missing", testDraft(), fullActor())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentStore_Delete(t *testing.T) {
	store := NewPaymentStore(nil)
	actor := fullActor()

	p, err := store.Create(testDraft(), actor)
	require.NoError(t, err)

	require.NoError(t, store.Delete(p.ID, actor))
	assert.Empty(t, store.Payments())

	err = store.Delete(p.ID, actor)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentStore_DeletePermissionDenied(t *testing.T) {
	store := NewPaymentStore(nil)
	actor := fullActor()

	p, err := store.Create(testDraft(), actor)
	require.NoError(t, err)

	actor.Permissions.Delete = false
	err = store.Delete(p.ID, actor)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Len(t, store.Payments(), 1)
}

func TestPaymentStore_StatusChangeTwoPhase(t *testing.T) {
	store := NewPaymentStore(nil)
	actor := fullActor()

	p, err := store.Create(testDraft(), actor)
	require.NoError(t, err)

	// Pending to paid needs no confirmation.
	needsConfirm, err := store.RequestStatusChange(p.ID, actor)
	require.NoError(t, err)
	assert.False(t, needsConfirm)

	updated, err := store.ConfirmStatusChange(p.ID, actor)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, updated.Status)

	// Paid back to pending demands confirmation.
	needsConfirm, err = store.RequestStatusChange(p.ID, actor)
	require.NoError(t, err)
	assert.True(t, needsConfirm)

	updated, err = store.ConfirmStatusChange(p.ID, actor)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, updated.Status)
}

func TestPaymentStore_StatusChangePermissionDenied(t *testing.T) {
	store := NewPaymentStore(nil)
	actor := fullActor()

	p, err := store.Create(testDraft(), actor)
	require.NoError(t, err)

	actor.Permissions.ChangeStatus = false
	_, err = store.RequestStatusChange(p.ID, actor)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = store.ConfirmStatusChange(p.ID, actor)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestPaymentStore_SnapshotIsolation(t *testing.T) {
	store := NewPaymentStore(nil)
	actor := fullActor()

	_, err := store.Create(testDraft(), actor)
	require.NoError(t, err)

	snapshot := store.Payments()
	snapshot[0].Amount = -1

	fresh := store.Payments()
	assert.Equal(t, 1250.50, fresh[0].Amount)
}

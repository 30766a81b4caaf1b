package ledger

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"paytrack/internal/model"
)

// PaymentStore owns the payment collection. Every mutation is gated on the
// acting user's permissions and is atomic from the caller's perspective; the
// store is independently serializable via its own mutex.
type PaymentStore struct {
	payments []model.Payment
	mu       sync.Mutex
}

// NewPaymentStore creates a store holding the given payments. Insertion order
// is preserved for iteration but carries no display-order guarantee.
func NewPaymentStore(payments []model.Payment) *PaymentStore {
	s := &PaymentStore{payments: make([]model.Payment, len(payments))}
	copy(s.payments, payments)
	return s
}

// Payments returns a snapshot of the collection in insertion order.
func (s *PaymentStore) Payments() []model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// Get returns the payment with the given id.
func (s *PaymentStore) Get(id string) (model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Payment{}, fmt.Errorf("%w: payment %s", ErrNotFound, id)
	}
	return s.payments[i], nil
}

// Create validates the draft, assigns a fresh id and pending status, and
// appends the payment. Requires the add permission.
func (s *PaymentStore) Create(draft model.PaymentDraft, actor model.User) (model.Payment, error) {
	if !actor.Permissions.Add {
		return model.Payment{}, fmt.Errorf("%w: add", ErrPermissionDenied)
	}
	if err := draft.Validate(); err != nil {
		return model.Payment{}, err
	}

	p := model.Payment{
		ID:            uuid.NewString(),
		DueDate:       draft.DueDate,
		CheckNumber:   draft.CheckNumber,
		Bank:          draft.Bank,
		Company:       draft.Company,
		BusinessGroup: draft.BusinessGroup,
		Description:   draft.Description,
		Amount:        draft.Amount,
		Status:        model.StatusPending,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, p)
	return p, nil
}

// Update replaces all fields of the payment except id and status; editing
// content does not reset a paid check. Requires the edit permission.
func (s *PaymentStore) Update(id string, draft model.PaymentDraft, actor model.User) (model.Payment, error) {
	if !actor.Permissions.Edit {
		return model.Payment{}, fmt.Errorf("%w: edit", ErrPermissionDenied)
	}
	if err := draft.Validate(); err != nil {
		return model.Payment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Payment{}, fmt.Errorf("%w: payment %s", ErrNotFound, id)
	}

	p := &s.payments[i]
	p.DueDate = draft.DueDate
	p.CheckNumber = draft.CheckNumber
	p.Bank = draft.Bank
	p.Company = draft.Company
	p.BusinessGroup = draft.BusinessGroup
	p.Description = draft.Description
	p.Amount = draft.Amount
	return *p, nil
}

// Delete removes the payment immediately and unconditionally; nothing else
// references a payment by id. Requires the delete permission.
func (s *PaymentStore) Delete(id string, actor model.User) error {
	if !actor.Permissions.Delete {
		return fmt.Errorf("%w: delete", ErrPermissionDenied)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: payment %s", ErrNotFound, id)
	}
	s.payments = append(s.payments[:i], s.payments[i+1:]...)
	return nil
}

// RequestStatusChange is the check phase of the two-phase status flip. It
// reports whether the flip needs an explicit confirmation: true when the
// payment is currently paid, since un-paying a check is a sensitive action.
// Nothing is applied here; ConfirmStatusChange performs the flip.
func (s *PaymentStore) RequestStatusChange(id string, actor model.User) (bool, error) {
	if !actor.Permissions.ChangeStatus {
		return false, fmt.Errorf("%w: change status", ErrPermissionDenied)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return false, fmt.Errorf("%w: payment %s", ErrNotFound, id)
	}
	return s.payments[i].Status == model.StatusPaid, nil
}

// ConfirmStatusChange flips the payment's status: pending becomes paid, paid
// becomes pending. Callers must have passed the RequestStatusChange phase
// first and obtained user confirmation when it demanded one.
func (s *PaymentStore) ConfirmStatusChange(id string, actor model.User) (model.Payment, error) {
	if !actor.Permissions.ChangeStatus {
		return model.Payment{}, fmt.Errorf("%w: change status", ErrPermissionDenied)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return model.Payment{}, fmt.Errorf("%w: payment %s", ErrNotFound, id)
	}

	p := &s.payments[i]
	if p.Status == model.StatusPaid {
		p.Status = model.StatusPending
	} else {
		p.Status = model.StatusPaid
	}
	return *p, nil
}

// index returns the position of the payment with the given id, or -1.
// Callers must hold the mutex.
func (s *PaymentStore) index(id string) int {
	for i := range s.payments {
		if s.payments[i].ID == id {
			return i
		}
	}
	return -1
}

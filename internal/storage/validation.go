package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"paytrack/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrInvalidPayment = errors.New("invalid payment")
	ErrInvalidUser    = errors.New("invalid user")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validatePayments validates a slice of payments before persisting.
func validatePayments(payments []model.Payment) error {
	for i := range payments {
		if err := validatePayment(&payments[i]); err != nil {
			return fmt.Errorf("payment at index %d: %w", i, err)
		}
	}
	return nil
}

// validatePayment validates a single payment.
func validatePayment(p *model.Payment) error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidPayment)
	}
	if p.DueDate.IsZero() {
		return fmt.Errorf("%w: missing due date", ErrInvalidPayment)
	}
	switch p.Status {
	case model.StatusPending, model.StatusPaid:
	default:
		return fmt.Errorf("%w: invalid status %q", ErrInvalidPayment, p.Status)
	}
	return nil
}

// validateUsers validates a slice of users before persisting.
func validateUsers(users []model.User) error {
	for i := range users {
		if users[i].ID == "" {
			return fmt.Errorf("user at index %d: %w: missing ID", i, ErrInvalidUser)
		}
		if users[i].Username == "" {
			return fmt.Errorf("user at index %d: %w: missing username", i, ErrInvalidUser)
		}
	}
	return nil
}

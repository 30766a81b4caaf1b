// Package model defines the core data types shared across the application.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PaymentStatus is the two-state lifecycle of a payment.
type PaymentStatus string

const (
	// StatusPending marks a payment that has not been paid yet.
	StatusPending PaymentStatus = "pending"
	// StatusPaid marks a payment that has been paid.
	StatusPaid PaymentStatus = "paid"
)

// Payment represents a single scheduled check payment.
type Payment struct {
	DueDate       time.Time
	ID            string
	CheckNumber   string
	Bank          string
	Company       string
	BusinessGroup string
	Description   string
	Status        PaymentStatus
	Amount        float64
}

// PaymentDraft carries the caller-editable fields of a payment. The store
// assigns ID and Status; a draft never contains either.
type PaymentDraft struct {
	DueDate       time.Time
	CheckNumber   string
	Bank          string
	Company       string
	BusinessGroup string
	Description   string
	Amount        float64
}

// Validate ensures the draft would produce a well-formed payment.
// Description is free text and may be empty.
func (d *PaymentDraft) Validate() error {
	if d.DueDate.IsZero() {
		return fmt.Errorf("due date is required")
	}
	if strings.TrimSpace(d.CheckNumber) == "" {
		return fmt.Errorf("check number is required")
	}
	if strings.TrimSpace(d.Bank) == "" {
		return fmt.Errorf("bank is required")
	}
	if strings.TrimSpace(d.Company) == "" {
		return fmt.Errorf("company is required")
	}
	if strings.TrimSpace(d.BusinessGroup) == "" {
		return fmt.Errorf("business group is required")
	}
	if d.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	return nil
}

// AmountString returns the canonical decimal form of the amount, the form
// the amount filter substring-matches against.
func (p *Payment) AmountString() string {
	return strconv.FormatFloat(p.Amount, 'f', -1, 64)
}

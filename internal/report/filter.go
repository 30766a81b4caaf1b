// Package report provides the read-only filtering and aggregation views over
// a payment snapshot. Nothing here mutates state; every view is recomputed
// from the live collection on each query.
package report

import (
	"slices"
	"strings"
	"time"

	"paytrack/internal/model"
)

// Month is a calendar year+month pair used by the month criterion.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Criteria is the transient filter input. Every zero-valued field is
// inactive and always passes; criteria combine as a conjunction.
type Criteria struct {
	Month          *Month
	CheckNumber    string
	Description    string
	Amount         string
	Status         model.PaymentStatus
	Banks          []string
	Companies      []string
	BusinessGroups []string
}

// Matches reports whether the payment passes every active criterion.
func (c *Criteria) Matches(p model.Payment) bool {
	if c.Month != nil && !c.Month.Contains(p.DueDate) {
		return false
	}
	if !containsFold(p.CheckNumber, c.CheckNumber) {
		return false
	}
	if !inSet(p.Bank, c.Banks) {
		return false
	}
	if !inSet(p.Company, c.Companies) {
		return false
	}
	if !inSet(p.BusinessGroup, c.BusinessGroups) {
		return false
	}
	if !containsFold(p.Description, c.Description) {
		return false
	}
	if c.Amount != "" && !strings.Contains(p.AmountString(), c.Amount) {
		return false
	}
	if c.Status != "" && p.Status != c.Status {
		return false
	}
	return true
}

// Filter returns the payments matching the criteria, preserving input order.
// All-empty criteria return the full input unchanged.
func Filter(payments []model.Payment, c Criteria) []model.Payment {
	out := make([]model.Payment, 0, len(payments))
	for _, p := range payments {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// containsFold is a case-insensitive substring test; an empty needle passes.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// inSet passes when the selection is empty, meaning "no filter".
func inSet(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	return slices.Contains(selected, value)
}

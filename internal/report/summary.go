package report

import (
	"sort"
	"time"

	"paytrack/internal/model"
)

// BankTotal is the amount accumulated for one bank.
type BankTotal struct {
	Bank   string
	Amount float64
}

// Totals is an aggregate over a payment sequence: the sum of amounts and a
// per-bank breakdown sorted by descending amount. Ties keep first-occurrence
// order.
type Totals struct {
	ByBank []BankTotal
	Total  float64
}

// Aggregate computes totals for an arbitrary payment sequence. An empty
// input yields a zero total and an empty breakdown.
func Aggregate(payments []model.Payment) Totals {
	var t Totals
	byBank := make(map[string]int)
	for _, p := range payments {
		t.Total += p.Amount
		i, ok := byBank[p.Bank]
		if !ok {
			i = len(t.ByBank)
			byBank[p.Bank] = i
			t.ByBank = append(t.ByBank, BankTotal{Bank: p.Bank})
		}
		t.ByBank[i].Amount += p.Amount
	}
	sort.SliceStable(t.ByBank, func(a, b int) bool {
		return t.ByBank[a].Amount > t.ByBank[b].Amount
	})
	return t
}

// Overview holds the four independent aggregate views derived from one base
// collection: everything, paid only, pending only, and the calendar month
// containing now.
type Overview struct {
	All          Totals
	Paid         Totals
	Pending      Totals
	CurrentMonth Totals

	// Paid/pending split within the current month.
	CurrentMonthPaid    float64
	CurrentMonthPending float64
}

// BuildOverview recomputes all four views from the given snapshot.
func BuildOverview(payments []model.Payment, now time.Time) Overview {
	month := MonthOf(now)

	var paid, pending, current []model.Payment
	var currentPaid float64
	for _, p := range payments {
		if p.Status == model.StatusPaid {
			paid = append(paid, p)
		} else {
			pending = append(pending, p)
		}
		if month.Contains(p.DueDate) {
			current = append(current, p)
			if p.Status == model.StatusPaid {
				currentPaid += p.Amount
			}
		}
	}

	o := Overview{
		All:              Aggregate(payments),
		Paid:             Aggregate(paid),
		Pending:          Aggregate(pending),
		CurrentMonth:     Aggregate(current),
		CurrentMonthPaid: currentPaid,
	}
	o.CurrentMonthPending = o.CurrentMonth.Total - currentPaid
	return o
}

// Package ledger derives spending totals and the running debt balance from
// a user's expense records. Totals are never stored; they are recomputed
// from the live record set every time they are asked for.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gisuarez/expenso/internal/expense"
)

// MonthlyTotal sums the cost of every expense whose date falls in the same
// calendar year and month as ref. Pure function of its inputs.
func MonthlyTotal(expenses []*expense.Expense, ref time.Time) decimal.Decimal {
	total := decimal.Zero

	for _, e := range expenses {
		if e.Date.Year() == ref.Year() && e.Date.Month() == ref.Month() {
			total = total.Add(e.Cost)
		}
	}

	return total
}

// TotalDebt computes the running debt balance:
//
//	carryover + credit-card charges - debt repayments
//
// where a debt repayment is an expense of type Debt paid in cash or by
// debit card. The Debt + Credit Card combination never contributes; the
// entry validator rejects it before it can be stored.
func TotalDebt(expenses []*expense.Expense, carryover decimal.Decimal) decimal.Decimal {
	total := carryover

	for _, e := range expenses {
		switch {
		case e.PaymentMethod == expense.PaymentCreditCard:
			total = total.Add(e.Cost)
		case e.Type == expense.TypeDebt:
			total = total.Sub(e.Cost)
		}
	}

	return total
}

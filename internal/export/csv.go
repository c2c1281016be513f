package export

import (
	"strings"

	"github.com/gisuarez/expenso/internal/expense"
)

const csvHeader = "Date,Name,Type,Payment Method,Cost,Remarks"

// sanitizeField makes a text field safe for the comma-joined row format.
// Embedded commas become single spaces; there is no quoting and the format
// is not RFC 4180. importer/expensocsv reads the same dialect back.
func sanitizeField(s string) string {
	return strings.ReplaceAll(s, ",", " ")
}

// ToCSV renders the expenses as CSV text. One row per expense, dates as
// YYYY-MM-DD, costs as exact decimal strings with no currency symbol or
// thousands separator. Empty remarks render as an empty field.
func ToCSV(expenses []*expense.Expense) string {
	var sb strings.Builder

	sb.WriteString(csvHeader)
	sb.WriteByte('\n')

	for _, e := range expenses {
		sb.WriteString(e.Date.Format("2006-01-02"))
		sb.WriteByte(',')
		sb.WriteString(sanitizeField(e.Name))
		sb.WriteByte(',')
		sb.WriteString(sanitizeField(string(e.Type)))
		sb.WriteByte(',')
		sb.WriteString(sanitizeField(string(e.PaymentMethod)))
		sb.WriteByte(',')
		sb.WriteString(e.Cost.String())
		sb.WriteByte(',')
		sb.WriteString(sanitizeField(e.Remarks))
		sb.WriteByte('\n')
	}

	return sb.String()
}

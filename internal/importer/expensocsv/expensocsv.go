// Package expensocsv parses the app's own CSV export format back into
// expense records, so an exported history can be restored.
package expensocsv

import (
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gisuarez/expenso/internal/encoding"
	"github.com/gisuarez/expenso/internal/expense"
	"github.com/gisuarez/expenso/internal/importer"
)

const (
	colDate    = "Date"
	colName    = "Name"
	colType    = "Type"
	colPayment = "Payment Method"
	colCost    = "Cost"
	colRemarks = "Remarks"
)

type Importer struct{}

func New() *Importer {
	return &Importer{}
}

// Parse reads an export file and returns the validated records plus a
// report of rows that failed. The file may have been re-saved in a legacy
// encoding; it is normalized to UTF-8 first.
func (i *Importer) Parse(r io.Reader) ([]expense.CreateParams, []importer.RowError, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding input: %w", err)
	}

	reader := stdcsv.NewReader(utf8r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}

	// Column indices, resolved from the header row.
	idx := map[string]int{}

	headerLine := -1

	for n, row := range rows {
		matches := 0

		cand := map[string]int{}

		for i, col := range row {
			switch strings.TrimSpace(col) {
			case colDate, colName, colType, colPayment, colCost, colRemarks:
				cand[strings.TrimSpace(col)] = i
				matches++
			}
		}

		// Date, Name and Cost are enough to call it the header.
		if matches >= 3 {
			idx = cand
			headerLine = n

			break
		}
	}

	if headerLine < 0 {
		return nil, nil, fmt.Errorf("no header row found")
	}

	var (
		params    []expense.CreateParams
		rowErrors []importer.RowError
	)

	for n, row := range rows[headerLine+1:] {
		line := headerLine + n + 2 // 1-based line number

		field := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(row) {
				return ""
			}

			return strings.TrimSpace(row[i])
		}

		dateStr := field(colDate)
		if dateStr == "" {
			continue // blank or footer row
		}

		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			rowErrors = append(rowErrors, importer.RowError{
				Line: line,
				Err:  fmt.Errorf("bad date %q: %w", dateStr, err),
			})

			continue
		}

		p, err := expense.Validate(expense.Input{
			Name:          field(colName),
			CostText:      field(colCost),
			Type:          field(colType),
			PaymentMethod: field(colPayment),
			Remarks:       field(colRemarks),
			Date:          date,
		})
		if err != nil {
			rowErrors = append(rowErrors, importer.RowError{Line: line, Err: err})
			continue
		}

		params = append(params, p)
	}

	return params, rowErrors, nil
}

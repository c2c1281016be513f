package importer

import (
	"io"

	"github.com/gisuarez/expenso/internal/expense"
)

// Source identifies a supported import file format.
type Source string

const (
	// SourceExpenso is the app's own CSV export format, read back for
	// backup restore.
	SourceExpenso Source = "expenso"
)

// RowError reports a data row that failed to parse or validate. The rest
// of the file is still imported; bad rows are never silently dropped or
// zeroed.
type RowError struct {
	Line int
	Err  error
}

type Importer interface {
	Parse(r io.Reader) ([]expense.CreateParams, []RowError, error)
}

package importer

import (
	"fmt"
	"io"

	"github.com/gisuarez/expenso/internal/expense"
)

type Service struct {
	expensoImporter Importer
}

// NewService wires the known import formats. The importer for the app's
// own export format is injected from the caller to avoid an import cycle
// with the expensocsv package's dependency on this one.
func NewService(expensoImporter Importer) *Service {
	return &Service{expensoImporter: expensoImporter}
}

func (s *Service) Import(source Source, r io.Reader) ([]expense.CreateParams, []RowError, error) {
	var imp Importer

	switch source {
	case SourceExpenso:
		imp = s.expensoImporter
	default:
		return nil, nil, fmt.Errorf("unknown import source: %s", source)
	}

	return imp.Parse(r)
}

package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/gisuarez/expenso/internal/expense"
	"github.com/gisuarez/expenso/internal/ledger"
)

// Decision is the user's answer to the post-export prompt: keep the
// history as it is, or roll the computed debt into the carryover and
// clear the records.
type Decision string

const (
	DecisionKeep  Decision = "keep"
	DecisionReset Decision = "reset"
)

var ErrUnknownDecision = errors.New("unknown export decision")

// Service serializes a user's expense history to CSV and drives the
// optional history reset that follows a successful export.
type Service struct {
	expenses *expense.Service
	ledger   *ledger.Service
}

func NewService(expenses *expense.Service, ledger *ledger.Service) *Service {
	return &Service{expenses: expenses, ledger: ledger}
}

// Result describes a completed export.
type Result struct {
	Path  string
	Count int
}

// WriteCSV streams the owner's full history as CSV to w. It only reads;
// a failed write leaves stored data untouched.
func (s *Service) WriteCSV(ctx context.Context, ownerID uuid.UUID, w io.Writer) (int, error) {
	expenses, err := s.expenses.List(ctx, expense.ListFilter{OwnerID: ownerID})
	if err != nil {
		return 0, fmt.Errorf("listing expenses: %w", err)
	}

	if _, err := io.WriteString(w, ToCSV(expenses)); err != nil {
		return 0, fmt.Errorf("writing csv: %w", err)
	}

	return len(expenses), nil
}

// Filename returns the default export file name for the given day.
func Filename(date time.Time) string {
	return fmt.Sprintf("expenso_%s.csv", date.Format("2006-01-02"))
}

// Export writes the owner's history to a dated CSV file in dir. The file
// is written under a temporary name first and renamed into place once
// complete.
func (s *Service) Export(ctx context.Context, ownerID uuid.UUID, dir string) (*Result, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, Filename(time.Now()))

	tmp, err := os.CreateTemp(dir, ".expenso-*.csv")
	if err != nil {
		return nil, fmt.Errorf("creating export file: %w", err)
	}

	count, err := s.WriteCSV(ctx, ownerID, tmp)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return nil, err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("closing export file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("finalizing export file: %w", err)
	}

	return &Result{Path: path, Count: count}, nil
}

// Finish applies the user's post-export decision. Keep is a no-op. Reset
// computes the total debt from the live record set first, then writes it
// as the carryover and deletes the history in one transaction.
func (s *Service) Finish(ctx context.Context, ownerID uuid.UUID, d Decision) error {
	switch d {
	case DecisionKeep:
		return nil
	case DecisionReset:
		debt, err := s.ledger.Debt(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("computing debt: %w", err)
		}

		return s.expenses.ResetHistory(ctx, ownerID, debt)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDecision, d)
	}
}

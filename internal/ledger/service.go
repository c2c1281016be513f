package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gisuarez/expenso/internal/expense"
)

//go:generate mockgen -source=service.go -destination=carryover_mock.go -package=ledger
type CarryoverRepository interface {
	// GetCarryover returns zero for a user with no carryover row.
	GetCarryover(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)
	SetCarryover(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) error
}

type Service struct {
	expenses  *expense.Service
	carryover CarryoverRepository
}

func NewService(expenses *expense.Service, carryover CarryoverRepository) *Service {
	return &Service{expenses: expenses, carryover: carryover}
}

// Summary is the derived state shown on the home screen.
type Summary struct {
	Month        time.Time
	MonthlyTotal decimal.Decimal
	Carryover    decimal.Decimal
	TotalDebt    decimal.Decimal
}

// Summarize recomputes the monthly total and total debt for the owner from
// the current record set. The monthly total is scoped to ref's calendar
// month; the debt balance spans the whole history plus the carryover.
func (s *Service) Summarize(ctx context.Context, ownerID uuid.UUID, ref time.Time) (*Summary, error) {
	all, err := s.expenses.List(ctx, expense.ListFilter{OwnerID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	carryover, err := s.carryover.GetCarryover(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("getting carryover: %w", err)
	}

	return &Summary{
		Month:        ref,
		MonthlyTotal: MonthlyTotal(all, ref),
		Carryover:    carryover,
		TotalDebt:    TotalDebt(all, carryover),
	}, nil
}

// Debt returns just the running debt balance for the owner.
func (s *Service) Debt(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	all, err := s.expenses.List(ctx, expense.ListFilter{OwnerID: ownerID})
	if err != nil {
		return decimal.Zero, fmt.Errorf("listing expenses: %w", err)
	}

	carryover, err := s.carryover.GetCarryover(ctx, ownerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting carryover: %w", err)
	}

	return TotalDebt(all, carryover), nil
}

// ClearCarryover resets the owner's carryover to zero.
func (s *Service) ClearCarryover(ctx context.Context, ownerID uuid.UUID) error {
	return s.carryover.SetCarryover(ctx, ownerID, decimal.Zero)
}

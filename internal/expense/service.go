package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, ownerID, id uuid.UUID) (*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, ownerID, id uuid.UUID) error
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)

	BeginReset(ctx context.Context, ownerID uuid.UUID) (ResetTx, error)
	BeginRestore(ctx context.Context, ownerID uuid.UUID) (RestoreTx, error)
}

// RestoreTx is the transaction used when re-importing an exported CSV.
// The batch lands whole or not at all.
type RestoreTx interface {
	FindDuplicates(ctx context.Context, ownerID uuid.UUID, params []CreateParams) ([]*Expense, error)
	CreateExpenses(ctx context.Context, expenses []*Expense) error
	Commit() error
	Rollback() error
}

// ResetTx is the transaction used by the post-export history reset. The
// carryover write and the bulk delete must land together or not at all.
type ResetTx interface {
	SetCarryover(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) error
	DeleteExpenses(ctx context.Context, ownerID uuid.UUID) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name          string
	Type          Type
	Cost          decimal.Decimal
	PaymentMethod PaymentMethod
	Remarks       string
	Date          time.Time
}

type ListFilter struct {
	OwnerID   uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	// EndBefore is an exclusive upper bound, used for calendar-month
	// windows where an inclusive timestamp would clip the last moments
	// of the month.
	EndBefore *time.Time
}

// Create validates the input and persists a new expense for the owner.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, in Input) (*Expense, error) {
	params, err := Validate(in)
	if err != nil {
		return nil, err
	}

	e := &Expense{
		Name:          params.Name,
		Type:          params.Type,
		Cost:          params.Cost,
		PaymentMethod: params.PaymentMethod,
		Remarks:       params.Remarks,
		Date:          params.Date,
		OwnerID:       ownerID,
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreResult describes a completed restore.
type RestoreResult struct {
	Restored   []*Expense
	Duplicates int
}

// restoreKey identifies an expense for duplicate detection during restore.
// The exported CSV carries dates at day precision, so the key does too.
type restoreKey struct {
	Date string
	Name string
	Cost string
}

func keyFor(date time.Time, name string, cost decimal.Decimal) restoreKey {
	return restoreKey{
		Date: date.Format(time.DateOnly),
		Name: name,
		Cost: cost.String(),
	}
}

// Restore persists a batch of already validated expenses, used when
// re-importing a previously exported CSV. Rows matching an already stored
// expense on date, name and cost are skipped, and the batch is created in
// one transaction so a mid-batch store error leaves nothing behind.
func (s *Service) Restore(ctx context.Context, ownerID uuid.UUID, params []CreateParams) (*RestoreResult, error) {
	if len(params) == 0 {
		return &RestoreResult{}, nil
	}

	rtx, err := s.repo.BeginRestore(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("begin restore: %w", err)
	}
	defer rtx.Rollback()

	existing, err := rtx.FindDuplicates(ctx, ownerID, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	seen := make(map[restoreKey]struct{}, len(existing))
	for _, e := range existing {
		seen[keyFor(e.Date, e.Name, e.Cost)] = struct{}{}
	}

	result := &RestoreResult{}

	var batch []*Expense

	for _, p := range params {
		k := keyFor(p.Date, p.Name, p.Cost)
		if _, found := seen[k]; found {
			result.Duplicates++
			continue
		}

		seen[k] = struct{}{}

		batch = append(batch, &Expense{
			Name:          p.Name,
			Type:          p.Type,
			Cost:          p.Cost,
			PaymentMethod: p.PaymentMethod,
			Remarks:       p.Remarks,
			Date:          p.Date,
			OwnerID:       ownerID,
		})
	}

	if len(batch) > 0 {
		if err := rtx.CreateExpenses(ctx, batch); err != nil {
			return nil, fmt.Errorf("create expenses: %w", err)
		}
	}

	if err := rtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit restore: %w", err)
	}

	result.Restored = batch

	return result, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, filter)
}

// ListMonth lists the owner's expenses whose date falls in the calendar
// month of ref.
func (s *Service) ListMonth(ctx context.Context, ownerID uuid.UUID, ref time.Time) ([]*Expense, error) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	return s.repo.ListExpenses(ctx, ListFilter{
		OwnerID:   ownerID,
		StartDate: &start,
		EndBefore: &end,
	})
}

// Update re-validates the edited fields and persists them. The validation
// rules are the same as on create, including the debt/credit-card check.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, in Input) (*Expense, error) {
	e, err := s.repo.GetExpense(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	params, err := Validate(in)
	if err != nil {
		return nil, err
	}

	e.Name = params.Name
	e.Type = params.Type
	e.Cost = params.Cost
	e.PaymentMethod = params.PaymentMethod
	e.Remarks = params.Remarks
	e.Date = params.Date

	if err := s.repo.UpdateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, ownerID, id)
}

// ResetHistory writes the given carryover amount and deletes every expense
// the owner has, in one transaction. The caller computes the carryover from
// the live expense set before calling, so a crash can never lose debt.
func (s *Service) ResetHistory(ctx context.Context, ownerID uuid.UUID, carryover decimal.Decimal) error {
	tx, err := s.repo.BeginReset(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	if err := tx.SetCarryover(ctx, ownerID, carryover); err != nil {
		return fmt.Errorf("set carryover: %w", err)
	}

	if err := tx.DeleteExpenses(ctx, ownerID); err != nil {
		return fmt.Errorf("delete expenses: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}

	return nil
}

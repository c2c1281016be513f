package export_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gisuarez/expenso/internal/expense"
	"github.com/gisuarez/expenso/internal/export"
	"github.com/gisuarez/expenso/internal/ledger"
)

// memStore is an in-memory record store implementing both the expense
// repository and the carryover repository, so the reset workflow can be
// exercised end to end.
type memStore struct {
	expenses   []*expense.Expense
	carryovers map[uuid.UUID]decimal.Decimal
}

func newMemStore() *memStore {
	return &memStore{carryovers: make(map[uuid.UUID]decimal.Decimal)}
}

func (m *memStore) CreateExpense(_ context.Context, e *expense.Expense) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	m.expenses = append(m.expenses, e)

	return nil
}

func (m *memStore) GetExpense(_ context.Context, ownerID, id uuid.UUID) (*expense.Expense, error) {
	for _, e := range m.expenses {
		if e.ID == id && e.OwnerID == ownerID {
			return e, nil
		}
	}

	return nil, expense.ErrNotFound
}

func (m *memStore) UpdateExpense(_ context.Context, e *expense.Expense) error {
	for i, existing := range m.expenses {
		if existing.ID == e.ID {
			m.expenses[i] = e
			return nil
		}
	}

	return expense.ErrNotFound
}

func (m *memStore) DeleteExpense(_ context.Context, ownerID, id uuid.UUID) error {
	for i, e := range m.expenses {
		if e.ID == id && e.OwnerID == ownerID {
			m.expenses = append(m.expenses[:i], m.expenses[i+1:]...)
			return nil
		}
	}

	return expense.ErrNotFound
}

func (m *memStore) ListExpenses(_ context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	var out []*expense.Expense

	for _, e := range m.expenses {
		if e.OwnerID != filter.OwnerID {
			continue
		}

		if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
			continue
		}

		if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
			continue
		}

		if filter.EndBefore != nil && !e.Date.Before(*filter.EndBefore) {
			continue
		}

		out = append(out, e)
	}

	return out, nil
}

func (m *memStore) GetCarryover(_ context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	if c, ok := m.carryovers[ownerID]; ok {
		return c, nil
	}

	return decimal.Zero, nil
}

func (m *memStore) SetCarryover(_ context.Context, ownerID uuid.UUID, amount decimal.Decimal) error {
	m.carryovers[ownerID] = amount
	return nil
}

// memResetTx stages the carryover write and the bulk delete, applying both
// on Commit the way the real store's transaction does.
type memResetTx struct {
	store     *memStore
	carryover *decimal.Decimal
	owner     uuid.UUID
	deleteAll bool
	committed bool
}

func (m *memStore) BeginReset(_ context.Context, ownerID uuid.UUID) (expense.ResetTx, error) {
	return &memResetTx{store: m, owner: ownerID}, nil
}

func (tx *memResetTx) SetCarryover(_ context.Context, _ uuid.UUID, amount decimal.Decimal) error {
	tx.carryover = &amount
	return nil
}

func (tx *memResetTx) DeleteExpenses(_ context.Context, _ uuid.UUID) error {
	tx.deleteAll = true
	return nil
}

func (tx *memResetTx) Commit() error {
	if tx.carryover != nil {
		tx.store.carryovers[tx.owner] = *tx.carryover
	}

	if tx.deleteAll {
		var kept []*expense.Expense

		for _, e := range tx.store.expenses {
			if e.OwnerID != tx.owner {
				kept = append(kept, e)
			}
		}

		tx.store.expenses = kept
	}

	tx.committed = true

	return nil
}

func (tx *memResetTx) Rollback() error { return nil }

// memRestoreTx stages the batch, applying it on Commit.
type memRestoreTx struct {
	store *memStore
	owner uuid.UUID
	batch []*expense.Expense
}

func (m *memStore) BeginRestore(_ context.Context, ownerID uuid.UUID) (expense.RestoreTx, error) {
	return &memRestoreTx{store: m, owner: ownerID}, nil
}

func (tx *memRestoreTx) FindDuplicates(_ context.Context, ownerID uuid.UUID, _ []expense.CreateParams) ([]*expense.Expense, error) {
	var out []*expense.Expense

	for _, e := range tx.store.expenses {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}

	return out, nil
}

func (tx *memRestoreTx) CreateExpenses(_ context.Context, expenses []*expense.Expense) error {
	tx.batch = expenses
	return nil
}

func (tx *memRestoreTx) Commit() error {
	for _, e := range tx.batch {
		e.ID = uuid.New()
		e.CreatedAt = time.Now()
		tx.store.expenses = append(tx.store.expenses, e)
	}

	return nil
}

func (tx *memRestoreTx) Rollback() error { return nil }

func newServices(store *memStore) (*expense.Service, *ledger.Service, *export.Service) {
	expSvc := expense.NewService(store)
	ledSvc := ledger.NewService(expSvc, store)

	return expSvc, ledSvc, export.NewService(expSvc, ledSvc)
}

func seed(t *testing.T, svc *expense.Service, owner uuid.UUID, name, cost, typ, method string, date time.Time) {
	t.Helper()

	_, err := svc.Create(context.Background(), owner, expense.Input{
		Name:          name,
		CostText:      cost,
		Type:          typ,
		PaymentMethod: method,
		Date:          date,
	})
	require.NoError(t, err)
}

func TestService_Export_WritesFile(t *testing.T) {
	store := newMemStore()
	expSvc, _, svc := newServices(store)

	owner := uuid.New()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	seed(t, expSvc, owner, "Lunch", "250.00", "Food/Drink", "Cash", date)
	seed(t, expSvc, owner, "Taxi", "180", "Transportation", "Cash", date)

	dir := t.TempDir()

	result, err := svc.Export(context.Background(), owner, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, filepath.Join(dir, export.Filename(time.Now())), result.Path)

	content, err := os.ReadFile(result.Path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Name,Type,Payment Method,Cost,Remarks", lines[0])

	// No leftover temp files.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestService_WriteCSV_FailedWriteTouchesNothing(t *testing.T) {
	store := newMemStore()
	expSvc, ledSvc, svc := newServices(store)

	owner := uuid.New()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	seed(t, expSvc, owner, "Lunch", "250.00", "Food/Drink", "Credit Card", date)

	_, err := svc.WriteCSV(context.Background(), owner, failingWriter{})
	require.Error(t, err)

	// The history and debt balance are exactly as they were.
	remaining, err := expSvc.List(context.Background(), expense.ListFilter{OwnerID: owner})
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	debt, err := ledSvc.Debt(context.Background(), owner)
	require.NoError(t, err)
	assert.True(t, debt.Equal(decimal.RequireFromString("250.00")))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestService_Finish_Keep(t *testing.T) {
	store := newMemStore()
	expSvc, _, svc := newServices(store)

	owner := uuid.New()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	seed(t, expSvc, owner, "Lunch", "250.00", "Food/Drink", "Cash", date)

	require.NoError(t, svc.Finish(context.Background(), owner, export.DecisionKeep))

	remaining, err := expSvc.List(context.Background(), expense.ListFilter{OwnerID: owner})
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestService_Finish_Reset(t *testing.T) {
	store := newMemStore()
	expSvc, ledSvc, svc := newServices(store)

	owner := uuid.New()
	other := uuid.New()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	// carryover 100, credit-card total 50, debt repayments 20.
	store.carryovers[owner] = decimal.RequireFromString("100")
	seed(t, expSvc, owner, "Groceries", "30.00", "Food/Drink", "Credit Card", date)
	seed(t, expSvc, owner, "Phone bill", "20.00", "Bills", "Credit Card", date)
	seed(t, expSvc, owner, "Card payment", "20.00", "Debt", "Cash", date)
	seed(t, expSvc, owner, "Snacks", "99.00", "Food/Drink", "Cash", date)
	seed(t, expSvc, other, "Not mine", "500.00", "Other", "Credit Card", date)

	preDebt, err := ledSvc.Debt(context.Background(), owner)
	require.NoError(t, err)
	require.True(t, preDebt.Equal(decimal.RequireFromString("130")), "pre debt %s", preDebt)

	require.NoError(t, svc.Finish(context.Background(), owner, export.DecisionReset))

	// The owner's history is gone; the debt balance survives as carryover.
	remaining, err := expSvc.List(context.Background(), expense.ListFilter{OwnerID: owner})
	require.NoError(t, err)
	assert.Empty(t, remaining)

	postDebt, err := ledSvc.Debt(context.Background(), owner)
	require.NoError(t, err)
	assert.True(t, postDebt.Equal(preDebt), "post debt %s", postDebt)

	// Other users' records are untouched.
	others, err := expSvc.List(context.Background(), expense.ListFilter{OwnerID: other})
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestService_Finish_UnknownDecision(t *testing.T) {
	store := newMemStore()
	_, _, svc := newServices(store)

	err := svc.Finish(context.Background(), uuid.New(), export.Decision("shrug"))
	assert.ErrorIs(t, err, export.ErrUnknownDecision)
}

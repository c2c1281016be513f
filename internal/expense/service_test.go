package expense_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gisuarez/expenso/internal/expense"
)

func TestService_Create(t *testing.T) {
	owner := uuid.New()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		in        expense.Input
		setupMock func(m *expense.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			in: expense.Input{
				Name:          "Lunch",
				CostText:      "250.00",
				Type:          "Food/Drink",
				PaymentMethod: "Cash",
				Date:          date,
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *expense.Expense) error {
						e.ID = uuid.New()
						e.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "InvalidInputNeverHitsStore",
			in: expense.Input{
				Name:          "Card payment",
				CostText:      "100",
				Type:          "Debt",
				PaymentMethod: "Credit Card",
				Date:          date,
			},
			wantErr: expense.ErrInvalidDebtPayment,
		},
		{
			name: "RepoError",
			in: expense.Input{
				Name:          "Lunch",
				CostText:      "250.00",
				Type:          "Food/Drink",
				PaymentMethod: "Cash",
				Date:          date,
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := expense.NewService(repo)
			got, err := svc.Create(context.Background(), owner, tt.in)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, owner, got.OwnerID)
		})
	}
}

func TestService_Update_EnforcesDebtRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	id := uuid.New()

	existing := &expense.Expense{
		ID:            id,
		Name:          "Groceries",
		Type:          expense.TypeFoodDrink,
		Cost:          decimal.RequireFromString("89.50"),
		PaymentMethod: expense.PaymentCash,
		Date:          time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		OwnerID:       owner,
	}

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().GetExpense(gomock.Any(), owner, id).Return(existing, nil)

	svc := expense.NewService(repo)

	// Editing into the Debt + Credit Card combination is rejected just
	// like creating it would be.
	_, err := svc.Update(context.Background(), owner, id, expense.Input{
		Name:          "Groceries",
		CostText:      "89.50",
		Type:          "Debt",
		PaymentMethod: "Credit Card",
		Date:          existing.Date,
	})
	assert.ErrorIs(t, err, expense.ErrInvalidDebtPayment)
}

func TestService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	id := uuid.New()

	existing := &expense.Expense{
		ID:            id,
		Name:          "Groceries",
		Type:          expense.TypeFoodDrink,
		Cost:          decimal.RequireFromString("89.50"),
		PaymentMethod: expense.PaymentCash,
		Date:          time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		OwnerID:       owner,
	}

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().GetExpense(gomock.Any(), owner, id).Return(existing, nil)
	repo.EXPECT().UpdateExpense(gomock.Any(), gomock.Any()).Return(nil)

	svc := expense.NewService(repo)

	got, err := svc.Update(context.Background(), owner, id, expense.Input{
		Name:          "Weekly groceries",
		CostText:      "120",
		Type:          "Food/Drink",
		PaymentMethod: "Debit/Cash Card",
		Date:          existing.Date,
	})
	require.NoError(t, err)
	assert.Equal(t, "Weekly groceries", got.Name)
	assert.Equal(t, expense.PaymentDebitCard, got.PaymentMethod)
	assert.True(t, got.Cost.Equal(decimal.RequireFromString("120")))
}

func TestService_ListMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	ref := time.Date(2026, 1, 15, 12, 30, 0, 0, time.UTC)

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().
		ListExpenses(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndBefore)
			assert.Nil(t, filter.EndDate)
			assert.Equal(t, owner, filter.OwnerID)
			assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)

			// Exclusive upper bound at the first instant of the next
			// month, so a timestamp in the last second of January still
			// counts as January.
			assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *filter.EndBefore)

			lastSecond := time.Date(2026, 1, 31, 23, 59, 59, 500000000, time.UTC)
			assert.True(t, lastSecond.Before(*filter.EndBefore))

			return nil, nil
		})

	svc := expense.NewService(repo)

	_, err := svc.ListMonth(context.Background(), owner, ref)
	require.NoError(t, err)
}

func TestService_Restore_SkipsDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	params := []expense.CreateParams{
		{Name: "Lunch", Type: expense.TypeFoodDrink, Cost: decimal.RequireFromString("250"), PaymentMethod: expense.PaymentCash, Date: date},
		{Name: "Taxi", Type: expense.TypeTransportation, Cost: decimal.RequireFromString("180"), PaymentMethod: expense.PaymentCash, Date: date},
	}

	// "Lunch" on the same day with the same cost is already stored, as it
	// would be after re-importing the export that produced it.
	stored := []*expense.Expense{
		{ID: uuid.New(), Name: "Lunch", Type: expense.TypeFoodDrink, Cost: decimal.RequireFromString("250"), PaymentMethod: expense.PaymentCash, Date: date, OwnerID: owner},
	}

	repo := expense.NewMockRepository(ctrl)
	rtx := expense.NewMockRestoreTx(ctrl)

	repo.EXPECT().BeginRestore(gomock.Any(), owner).Return(rtx, nil)
	rtx.EXPECT().FindDuplicates(gomock.Any(), owner, params).Return(stored, nil)
	rtx.EXPECT().
		CreateExpenses(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []*expense.Expense) error {
			require.Len(t, batch, 1)
			assert.Equal(t, "Taxi", batch[0].Name)
			assert.Equal(t, owner, batch[0].OwnerID)
			return nil
		})
	rtx.EXPECT().Commit().Return(nil)
	rtx.EXPECT().Rollback().Return(nil)

	svc := expense.NewService(repo)

	result, err := svc.Restore(context.Background(), owner, params)
	require.NoError(t, err)
	assert.Len(t, result.Restored, 1)
	assert.Equal(t, 1, result.Duplicates)
}

func TestService_Restore_AllDuplicatesCreatesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	params := []expense.CreateParams{
		{Name: "Lunch", Type: expense.TypeFoodDrink, Cost: decimal.RequireFromString("250"), PaymentMethod: expense.PaymentCash, Date: date},
	}
	stored := []*expense.Expense{
		{ID: uuid.New(), Name: "Lunch", Cost: decimal.RequireFromString("250"), Date: date, OwnerID: owner},
	}

	repo := expense.NewMockRepository(ctrl)
	rtx := expense.NewMockRestoreTx(ctrl)

	repo.EXPECT().BeginRestore(gomock.Any(), owner).Return(rtx, nil)
	rtx.EXPECT().FindDuplicates(gomock.Any(), owner, params).Return(stored, nil)
	rtx.EXPECT().Commit().Return(nil)
	rtx.EXPECT().Rollback().Return(nil)

	svc := expense.NewService(repo)

	result, err := svc.Restore(context.Background(), owner, params)
	require.NoError(t, err)
	assert.Empty(t, result.Restored)
	assert.Equal(t, 1, result.Duplicates)
}

func TestService_Restore_MidBatchFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	params := []expense.CreateParams{
		{Name: "Lunch", Type: expense.TypeFoodDrink, Cost: decimal.RequireFromString("250"), PaymentMethod: expense.PaymentCash, Date: date},
		{Name: "Taxi", Type: expense.TypeTransportation, Cost: decimal.RequireFromString("180"), PaymentMethod: expense.PaymentCash, Date: date},
	}

	repo := expense.NewMockRepository(ctrl)
	rtx := expense.NewMockRestoreTx(ctrl)

	repo.EXPECT().BeginRestore(gomock.Any(), owner).Return(rtx, nil)
	rtx.EXPECT().FindDuplicates(gomock.Any(), owner, params).Return(nil, nil)
	rtx.EXPECT().CreateExpenses(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
	rtx.EXPECT().Rollback().Return(nil)

	svc := expense.NewService(repo)

	// No Commit expectation: the batch must not land partially.
	_, err := svc.Restore(context.Background(), owner, params)
	assert.Error(t, err)
}

func TestService_ResetHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	carryover := decimal.RequireFromString("130")

	repo := expense.NewMockRepository(ctrl)
	rtx := expense.NewMockResetTx(ctrl)

	repo.EXPECT().BeginReset(gomock.Any(), owner).Return(rtx, nil)
	rtx.EXPECT().SetCarryover(gomock.Any(), owner, carryover).Return(nil)
	rtx.EXPECT().DeleteExpenses(gomock.Any(), owner).Return(nil)
	rtx.EXPECT().Commit().Return(nil)
	rtx.EXPECT().Rollback().Return(nil)

	svc := expense.NewService(repo)
	require.NoError(t, svc.ResetHistory(context.Background(), owner, carryover))
}

func TestService_ResetHistory_CarryoverFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	carryover := decimal.RequireFromString("130")

	repo := expense.NewMockRepository(ctrl)
	rtx := expense.NewMockResetTx(ctrl)

	repo.EXPECT().BeginReset(gomock.Any(), owner).Return(rtx, nil)
	rtx.EXPECT().SetCarryover(gomock.Any(), owner, carryover).Return(errors.New("write failed"))
	rtx.EXPECT().Rollback().Return(nil)

	svc := expense.NewService(repo)
	assert.Error(t, svc.ResetHistory(context.Background(), owner, carryover))
}

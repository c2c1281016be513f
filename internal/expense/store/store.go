package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gisuarez/expenso/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanExpense reads an expense row and returns a populated Expense.
// Expected column order: id, name, type, cost::text, payment_method, remarks, date, owner_id, created_at, updated_at
func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	var typeStr, methodStr, costStr string

	var remarks sql.NullString

	if err := s.Scan(
		&e.ID, &e.Name, &typeStr, &costStr, &methodStr, &remarks,
		&e.Date, &e.OwnerID, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	// Costs are stored as NUMERIC and selected as text so the decimal
	// never passes through a binary float.
	cost, err := decimal.NewFromString(costStr)
	if err != nil {
		return nil, fmt.Errorf("parsing stored cost %q: %w", costStr, err)
	}

	e.Type = expense.Type(typeStr)
	e.PaymentMethod = expense.PaymentMethod(methodStr)
	e.Cost = cost
	e.Remarks = remarks.String

	return &e, nil
}

const selectExpenseColumns = `
	e.id, e.name, e.type, e.cost::text, e.payment_method, e.remarks,
	e.date, e.owner_id, e.created_at, e.updated_at
`

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (name, type, cost, payment_method, remarks, date, owner_id, created_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Name,
		e.Type,
		e.Cost.String(),
		e.PaymentMethod,
		e.Remarks,
		e.Date,
		e.OwnerID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, ownerID, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses e
		WHERE e.id = $1 AND e.owner_id = $2`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses e
		WHERE e.owner_id = $1`

	args := []any{filter.OwnerID}

	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND e.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND e.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.EndBefore != nil {
		query += fmt.Sprintf(" AND e.date < $%d", argIdx)

		args = append(args, *filter.EndBefore)
		argIdx++
	}

	query += " ORDER BY e.date ASC, e.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var es []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		es = append(es, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return es, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE expenses
		SET name = $1, type = $2, cost = $3::numeric, payment_method = $4,
		    remarks = $5, date = $6, updated_at = NOW()
		WHERE id = $7 AND owner_id = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		e.Name,
		e.Type,
		e.Cost.String(),
		e.PaymentMethod,
		e.Remarks,
		e.Date,
		e.ID,
		e.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return expense.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM expenses WHERE id = $1 AND owner_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return expense.ErrNotFound
	}

	return nil
}

type resetTx struct {
	tx *sql.Tx
}

// BeginReset opens the transaction used by the post-export history reset.
// An advisory lock on the owner keeps two resets for the same user from
// interleaving.
func (s *Store) BeginReset(ctx context.Context, ownerID uuid.UUID) (expense.ResetTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning reset tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", ownerID.String()); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring reset lock: %w", err)
	}

	return &resetTx{tx: dbTx}, nil
}

func (rtx *resetTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *resetTx) Rollback() error { return rtx.tx.Rollback() }

func (rtx *resetTx) SetCarryover(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) error {
	query := `
		INSERT INTO carryovers (owner_id, amount, updated_at)
		VALUES ($1, $2::numeric, NOW())
		ON CONFLICT (owner_id) DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
	`

	if _, err := rtx.tx.ExecContext(ctx, query, ownerID, amount.String()); err != nil {
		return fmt.Errorf("setting carryover: %w", err)
	}

	return nil
}

func (rtx *resetTx) DeleteExpenses(ctx context.Context, ownerID uuid.UUID) error {
	if _, err := rtx.tx.ExecContext(ctx, "DELETE FROM expenses WHERE owner_id = $1", ownerID); err != nil {
		return fmt.Errorf("deleting expenses: %w", err)
	}

	return nil
}

type restoreTx struct {
	tx *sql.Tx
}

// BeginRestore opens the transaction used by the CSV re-import. The same
// per-owner advisory lock as the reset keeps a restore and a reset for one
// user from interleaving.
func (s *Store) BeginRestore(ctx context.Context, ownerID uuid.UUID) (expense.RestoreTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning restore tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", ownerID.String()); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring restore lock: %w", err)
	}

	return &restoreTx{tx: dbTx}, nil
}

func (itx *restoreTx) Commit() error   { return itx.tx.Commit() }
func (itx *restoreTx) Rollback() error { return itx.tx.Rollback() }

// FindDuplicates returns the owner's stored expenses inside the incoming
// batch's date range. The service matches them against the batch on date,
// name and cost.
func (itx *restoreTx) FindDuplicates(ctx context.Context, ownerID uuid.UUID, params []expense.CreateParams) ([]*expense.Expense, error) {
	if len(params) == 0 {
		return nil, nil
	}

	minDate := params[0].Date
	maxDate := params[0].Date

	for _, p := range params {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}

	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses e
		WHERE e.owner_id = $1 AND e.date >= $2 AND e.date < $3
		ORDER BY e.date ASC`

	rows, err := itx.tx.QueryContext(ctx, query, ownerID, minDate, maxDate.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("finding duplicates: %w", err)
	}
	defer rows.Close()

	var es []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		es = append(es, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating duplicate rows: %w", err)
	}

	return es, nil
}

func (itx *restoreTx) CreateExpenses(ctx context.Context, expenses []*expense.Expense) error {
	query := `
		INSERT INTO expenses (name, type, cost, payment_method, remarks, date, owner_id, created_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	for _, e := range expenses {
		err := itx.tx.QueryRowContext(ctx, query,
			e.Name,
			e.Type,
			e.Cost.String(),
			e.PaymentMethod,
			e.Remarks,
			e.Date,
			e.OwnerID,
		).Scan(&e.ID, &e.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating expense: %w", err)
		}
	}

	return nil
}

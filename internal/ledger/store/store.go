package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetCarryover reads the owner's carryover balance. A user without a row
// has never reset their history, so their carryover is zero.
func (s *Store) GetCarryover(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	var amountStr string

	err := s.db.QueryRowContext(ctx,
		`SELECT amount::text FROM carryovers WHERE owner_id = $1`, ownerID,
	).Scan(&amountStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, nil
		}

		return decimal.Zero, fmt.Errorf("getting carryover: %w", err)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing stored carryover %q: %w", amountStr, err)
	}

	return amount, nil
}

func (s *Store) SetCarryover(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) error {
	query := `
		INSERT INTO carryovers (owner_id, amount, updated_at)
		VALUES ($1, $2::numeric, NOW())
		ON CONFLICT (owner_id) DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, ownerID, amount.String()); err != nil {
		return fmt.Errorf("setting carryover: %w", err)
	}

	return nil
}

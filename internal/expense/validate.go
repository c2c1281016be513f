package expense

import (
	"fmt"
	"strings"
	"time"
)

// Input is a candidate expense as entered by the user, before any
// normalization. CostText is kept as text so the validator owns the
// decimal parse.
type Input struct {
	Name          string
	CostText      string
	Type          string
	PaymentMethod string
	Remarks       string
	Date          time.Time
}

// Validate checks and normalizes a candidate expense. Rules are applied in
// order: required text fields, enum membership (normalizing the legacy debit
// label), positive decimal cost, and finally the debt/credit-card conflict.
// It has no side effects; persistence is the caller's job.
//
// The same rules apply to new entries and to edits of existing ones.
func Validate(in Input) (CreateParams, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return CreateParams{}, fmt.Errorf("name: %w", ErrEmptyField)
	}

	if strings.TrimSpace(in.CostText) == "" {
		return CreateParams{}, fmt.Errorf("cost: %w", ErrEmptyField)
	}

	typ, err := ParseType(in.Type)
	if err != nil {
		return CreateParams{}, fmt.Errorf("type %q: %w", in.Type, err)
	}

	method, err := ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return CreateParams{}, fmt.Errorf("payment method %q: %w", in.PaymentMethod, err)
	}

	cost, err := ParseCost(in.CostText)
	if err != nil {
		return CreateParams{}, fmt.Errorf("cost %q: %w", in.CostText, err)
	}

	if typ == TypeDebt && method == PaymentCreditCard {
		return CreateParams{}, ErrInvalidDebtPayment
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	return CreateParams{
		Name:          name,
		Type:          typ,
		Cost:          cost,
		PaymentMethod: method,
		Remarks:       strings.TrimSpace(in.Remarks),
		Date:          date,
	}, nil
}

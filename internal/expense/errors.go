package expense

import "errors"

var (
	// ErrNotFound is returned when an expense does not exist or belongs to
	// a different user.
	ErrNotFound = errors.New("expense not found")

	// ErrEmptyField is returned when a required field is blank after trimming.
	ErrEmptyField = errors.New("required field is empty")

	// ErrInvalidAmount is returned when the cost text does not parse as a
	// positive decimal amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDebtPayment is returned for the Debt + Credit Card
	// combination: a credit-card charge cannot also count as a debt
	// repayment without double-counting against the debt balance.
	ErrInvalidDebtPayment = errors.New("debt payment cannot be made by credit card")

	ErrUnknownType          = errors.New("unknown expense type")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

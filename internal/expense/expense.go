package expense

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type classifies what an expense was spent on.
type Type string

const (
	TypeFoodDrink      Type = "Food/Drink"
	TypeTransportation Type = "Transportation"
	TypeHealthMeds     Type = "Health/Meds"
	TypeVanityItems    Type = "Vanity Items"
	TypeBills          Type = "Bills"
	TypeDebt           Type = "Debt"
	TypeOther          Type = "Other"
)

// Types lists every valid expense type, in display order.
func Types() []Type {
	return []Type{
		TypeFoodDrink,
		TypeTransportation,
		TypeHealthMeds,
		TypeVanityItems,
		TypeBills,
		TypeDebt,
		TypeOther,
	}
}

// ParseType matches a label against the closed type enum.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyField
	}

	for _, t := range Types() {
		if s == string(t) {
			return t, nil
		}
	}

	return "", ErrUnknownType
}

// PaymentMethod identifies how an expense was paid.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "Cash"
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentDebitCard  PaymentMethod = "Debit Card"
)

// legacyDebitLabel is the older picker label that some clients still send.
// It is normalized to PaymentDebitCard at the validation boundary so that
// stored records carry a single canonical value.
const legacyDebitLabel = "Debit/Cash Card"

// PaymentMethods lists every canonical payment method, in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentCreditCard, PaymentDebitCard}
}

// ParsePaymentMethod matches a label against the payment-method enum,
// accepting the legacy debit label as an alias for Debit Card.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyField
	}

	if s == legacyDebitLabel {
		return PaymentDebitCard, nil
	}

	for _, m := range PaymentMethods() {
		if s == string(m) {
			return m, nil
		}
	}

	return "", ErrUnknownPaymentMethod
}

// Expense is a single recorded expense owned by exactly one user.
type Expense struct {
	ID            uuid.UUID
	Name          string
	Type          Type
	Cost          decimal.Decimal
	PaymentMethod PaymentMethod
	Remarks       string
	Date          time.Time
	OwnerID       uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

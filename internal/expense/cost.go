package expense

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCost parses user-entered cost text into an exact decimal.
// Format examples: "12.50" -> 12.50, "250" -> 250, "1,250.00" -> 1250.00.
// Zero, negative, and malformed values are rejected.
func ParseCost(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return decimal.Zero, ErrEmptyField
	}

	// Strip thousands separators so amounts pasted from formatted
	// displays still parse.
	clean = strings.ReplaceAll(clean, ",", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	if d.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}

	return d, nil
}

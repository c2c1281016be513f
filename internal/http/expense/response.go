package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/gisuarez/expenso/internal/expense"
)

type expenseResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Type          expense.Type          `json:"type"`
	Cost          string                `json:"cost"`
	PaymentMethod expense.PaymentMethod `json:"payment_method"`
	Remarks       string                `json:"remarks,omitempty"`
	Date          time.Time             `json:"date"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     *time.Time            `json:"updated_at,omitempty"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:            e.ID,
		Name:          e.Name,
		Type:          e.Type,
		Cost:          e.Cost.String(),
		PaymentMethod: e.PaymentMethod,
		Remarks:       e.Remarks,
		Date:          e.Date,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toResponseList(expenses []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	return resp
}

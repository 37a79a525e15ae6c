package dto

import (
	"time"

	"github.com/hugohenrick/pos-repuestos/internal/domain/expense"
)

// ExpenseRequest representa a requisição de registro de despesa
type ExpenseRequest struct {
	Concept string   `json:"concept" binding:"required"`
	Amount  *float64 `json:"amount" binding:"required,gte=0"`
}

// ExpenseResponse representa a resposta de despesa
type ExpenseResponse struct {
	ID      string    `json:"id"`
	Concept string    `json:"concept"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
}

// ExpenseListResponse representa a resposta de lista de despesas
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Total int               `json:"total"`
}

// ToExpenseResponse converte uma despesa do domínio para a resposta da API
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:      e.ID,
		Concept: e.Concept,
		Amount:  e.Amount,
		Date:    e.Date,
	}
}

// ToExpenseListResponse converte uma lista de despesas para a resposta da API
func ToExpenseListResponse(expenses []*expense.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, ToExpenseResponse(e))
	}
	return ExpenseListResponse{
		Items: items,
		Total: len(items),
	}
}

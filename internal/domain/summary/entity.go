package summary

import (
	"errors"

	"github.com/hugohenrick/pos-repuestos/internal/domain/expense"
	"github.com/hugohenrick/pos-repuestos/internal/domain/sale"
)

var (
	ErrInvalidDate  = errors.New("data inválida, formato esperado: AAAA-MM-DD")
	ErrInvalidMonth = errors.New("mês inválido")
)

// MechanicDetail é o total devido a um mecânico em um dia
type MechanicDetail struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Daily é o resumo financeiro de uma data (AAAA-MM-DD). É uma visão derivada
// dos logs de vendas e despesas; só vira registro persistido quando o dia é
// fechado, e a partir daí o retrato congelado responde por aquela data.
type Daily struct {
	Date                  string             `json:"date"`
	Sales                 []*sale.Sale       `json:"sales"`
	Expenses              []*expense.Expense `json:"expenses"`
	TotalSales            float64            `json:"total_sales"`
	TotalCost             float64            `json:"total_cost"`
	TotalExpenses         float64            `json:"total_expenses"`
	TotalMechanicPayments float64            `json:"total_mechanic_payments"`
	MechanicDetails       []MechanicDetail   `json:"mechanic_details"`
	Profit                float64            `json:"profit"`
	Closed                bool               `json:"closed"`
}

// Monthly é o resumo financeiro de um mês (AAAA-MM). Sempre recalculado,
// nunca persistido; a mão de obra aparece só como total corrido, sem
// detalhamento por mecânico.
type Monthly struct {
	Month                 string  `json:"month"`
	TotalSales            float64 `json:"total_sales"`
	TotalCost             float64 `json:"total_cost"`
	TotalExpenses         float64 `json:"total_expenses"`
	TotalMechanicPayments float64 `json:"total_mechanic_payments"`
	Profit                float64 `json:"profit"`
	SalesCount            int     `json:"sales_count"`
}

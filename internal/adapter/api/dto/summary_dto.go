package dto

import (
	"github.com/hugohenrick/pos-repuestos/internal/domain/summary"
)

// MechanicDetailResponse representa o total devido a um mecânico no dia
type MechanicDetailResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// DailySummaryResponse representa a resposta de resumo diário
type DailySummaryResponse struct {
	Date                  string                   `json:"date"`
	Sales                 SaleListResponse         `json:"sales"`
	Expenses              ExpenseListResponse      `json:"expenses"`
	TotalSales            float64                  `json:"total_sales"`
	TotalCost             float64                  `json:"total_cost"`
	TotalExpenses         float64                  `json:"total_expenses"`
	TotalMechanicPayments float64                  `json:"total_mechanic_payments"`
	MechanicDetails       []MechanicDetailResponse `json:"mechanic_details"`
	Profit                float64                  `json:"profit"`
	Closed                bool                     `json:"closed"`
}

// DailySummaryListResponse representa a resposta de lista de dias fechados
type DailySummaryListResponse struct {
	Items []DailySummaryResponse `json:"items"`
	Total int                    `json:"total"`
}

// MonthlySummaryResponse representa a resposta de resumo mensal
type MonthlySummaryResponse struct {
	Month                 string  `json:"month"`
	TotalSales            float64 `json:"total_sales"`
	TotalCost             float64 `json:"total_cost"`
	TotalExpenses         float64 `json:"total_expenses"`
	TotalMechanicPayments float64 `json:"total_mechanic_payments"`
	Profit                float64 `json:"profit"`
	SalesCount            int     `json:"sales_count"`
}

// ToDailySummaryResponse converte um resumo diário para a resposta da API
func ToDailySummaryResponse(d *summary.Daily) DailySummaryResponse {
	details := make([]MechanicDetailResponse, 0, len(d.MechanicDetails))
	for _, md := range d.MechanicDetails {
		details = append(details, MechanicDetailResponse{Name: md.Name, Amount: md.Amount})
	}

	return DailySummaryResponse{
		Date:                  d.Date,
		Sales:                 ToSaleListResponse(d.Sales),
		Expenses:              ToExpenseListResponse(d.Expenses),
		TotalSales:            d.TotalSales,
		TotalCost:             d.TotalCost,
		TotalExpenses:         d.TotalExpenses,
		TotalMechanicPayments: d.TotalMechanicPayments,
		MechanicDetails:       details,
		Profit:                d.Profit,
		Closed:                d.Closed,
	}
}

// ToDailySummaryListResponse converte uma lista de resumos para a resposta da API
func ToDailySummaryListResponse(summaries []*summary.Daily) DailySummaryListResponse {
	items := make([]DailySummaryResponse, 0, len(summaries))
	for _, d := range summaries {
		items = append(items, ToDailySummaryResponse(d))
	}
	return DailySummaryListResponse{
		Items: items,
		Total: len(items),
	}
}

// ToMonthlySummaryResponse converte um resumo mensal para a resposta da API
func ToMonthlySummaryResponse(m *summary.Monthly) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:                 m.Month,
		TotalSales:            m.TotalSales,
		TotalCost:             m.TotalCost,
		TotalExpenses:         m.TotalExpenses,
		TotalMechanicPayments: m.TotalMechanicPayments,
		Profit:                m.Profit,
		SalesCount:            m.SalesCount,
	}
}

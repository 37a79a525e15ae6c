package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/pos-repuestos/internal/adapter/repository"
	"github.com/hugohenrick/pos-repuestos/internal/domain/expense"
	"github.com/hugohenrick/pos-repuestos/internal/domain/sale"
	"github.com/hugohenrick/pos-repuestos/internal/domain/summary"
	"github.com/hugohenrick/pos-repuestos/pkg/logger"
)

const dayLayout = "2006-01-02"

// SummaryService é o motor de agregação: deriva resumos diários e mensais
// dos logs de vendas e despesas e cuida do ciclo de fechamento de dia.
// O recorte de dia e mês usa um fuso horário explícito, configurável,
// em vez de comparação de prefixos de string.
type SummaryService struct {
	saleRepo    sale.Repository
	expenseRepo expense.Repository
	summaryRepo summary.Repository
	location    *time.Location
	logger      logger.Logger
}

// NewSummaryService cria uma nova instância de SummaryService
func NewSummaryService(saleRepo sale.Repository, expenseRepo expense.Repository, summaryRepo summary.Repository, location *time.Location, logger logger.Logger) *SummaryService {
	if location == nil {
		location = time.Local
	}
	return &SummaryService{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		summaryRepo: summaryRepo,
		location:    location,
		logger:      logger,
	}
}

// Today retorna a data de hoje no fuso configurado, no formato AAAA-MM-DD
func (s *SummaryService) Today() string {
	return time.Now().In(s.location).Format(dayLayout)
}

// DayOf retorna o dia-calendário de um instante, no fuso configurado
func (s *SummaryService) DayOf(t time.Time) string {
	return t.In(s.location).Format(dayLayout)
}

// Daily retorna o resumo financeiro de uma data. Se existe retrato congelado
// para a data, ele responde tal como foi gravado; caso contrário o resumo é
// derivado dos logs, com closed = false.
func (s *SummaryService) Daily(ctx context.Context, date string) (*summary.Daily, error) {
	if _, err := time.ParseInLocation(dayLayout, date, s.location); err != nil {
		return nil, summary.ErrInvalidDate
	}

	frozen, err := s.summaryRepo.FindByDate(ctx, date)
	if err == nil {
		return frozen, nil
	}
	if !errors.Is(err, repository.ErrSummaryNotFound) {
		return nil, fmt.Errorf("erro ao consultar resumos fechados: %w", err)
	}

	return s.compute(ctx, date)
}

// CloseDaily fecha o dia: resolve o resumo da data, marca closed = true e o
// persiste como retrato permanente, substituindo qualquer retrato anterior.
// Transição de mão única; não existe reabertura. Fechar de novo regrava o
// retrato existente em vez de recalcular, então vendas registradas depois do
// fechamento continuam invisíveis ao resumo congelado.
func (s *SummaryService) CloseDaily(ctx context.Context, date string) (*summary.Daily, error) {
	d, err := s.Daily(ctx, date)
	if err != nil {
		return nil, err
	}

	d.Closed = true

	if err := s.summaryRepo.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("erro ao fechar o dia %s: %w", date, err)
	}

	s.logger.Info("dia fechado", "date", date, "profit", d.Profit, "total_sales", d.TotalSales)

	return d, nil
}

// ClosedDays retorna todos os dias já fechados
func (s *SummaryService) ClosedDays(ctx context.Context) ([]*summary.Daily, error) {
	return s.summaryRepo.List(ctx)
}

// Monthly retorna o resumo financeiro de um mês. monthIndex é base zero
// (janeiro = 0), como chega da interface. Sempre derivado dos logs; nunca lê
// nem grava retratos de dias fechados, e a mão de obra aparece apenas como
// total corrido.
func (s *SummaryService) Monthly(ctx context.Context, year, monthIndex int) (*summary.Monthly, error) {
	if monthIndex < 0 || monthIndex > 11 {
		return nil, summary.ErrInvalidMonth
	}

	month := fmt.Sprintf("%04d-%02d", year, monthIndex+1)

	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar vendas: %w", err)
	}

	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar despesas: %w", err)
	}

	m := &summary.Monthly{Month: month}

	for _, sl := range sales {
		if s.monthOf(sl.Date) != month {
			continue
		}
		m.TotalSales += sl.TotalAmount
		m.TotalCost += sl.TotalCost
		m.TotalMechanicPayments += sl.LaborAmount()
		m.SalesCount++
	}

	for _, e := range expenses {
		if s.monthOf(e.Date) != month {
			continue
		}
		m.TotalExpenses += e.Amount
	}

	m.Profit = m.TotalSales - m.TotalCost - m.TotalExpenses - m.TotalMechanicPayments

	return m, nil
}

// compute deriva o resumo aberto de uma data filtrando e reduzindo os logs
func (s *SummaryService) compute(ctx context.Context, date string) (*summary.Daily, error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar vendas: %w", err)
	}

	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar despesas: %w", err)
	}

	d := &summary.Daily{
		Date:            date,
		Sales:           make([]*sale.Sale, 0),
		Expenses:        make([]*expense.Expense, 0),
		MechanicDetails: make([]summary.MechanicDetail, 0),
	}

	for _, sl := range sales {
		if s.DayOf(sl.Date) != date {
			continue
		}

		d.Sales = append(d.Sales, sl)
		d.TotalSales += sl.TotalAmount
		d.TotalCost += sl.TotalCost

		if sl.HasLabor() {
			s.addMechanicDetail(d, sl.MechanicLabor.MechanicName, sl.MechanicLabor.Amount)
		}
	}

	for _, e := range expenses {
		if s.DayOf(e.Date) != date {
			continue
		}
		d.Expenses = append(d.Expenses, e)
		d.TotalExpenses += e.Amount
	}

	for _, md := range d.MechanicDetails {
		d.TotalMechanicPayments += md.Amount
	}

	d.Profit = d.TotalSales - d.TotalCost - d.TotalExpenses - d.TotalMechanicPayments

	return d, nil
}

// addMechanicDetail acumula a mão de obra por mecânico, preservando a ordem
// de primeira aparição do nome no dia
func (s *SummaryService) addMechanicDetail(d *summary.Daily, name string, amount float64) {
	for i := range d.MechanicDetails {
		if d.MechanicDetails[i].Name == name {
			d.MechanicDetails[i].Amount += amount
			return
		}
	}
	d.MechanicDetails = append(d.MechanicDetails, summary.MechanicDetail{Name: name, Amount: amount})
}

func (s *SummaryService) monthOf(t time.Time) string {
	return t.In(s.location).Format("2006-01")
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/pos-repuestos/internal/adapter/repository"
	"github.com/hugohenrick/pos-repuestos/internal/domain/expense"
	"github.com/hugohenrick/pos-repuestos/internal/domain/sale"
	"github.com/hugohenrick/pos-repuestos/internal/domain/summary"
	"github.com/hugohenrick/pos-repuestos/internal/infrastructure/database"
	"github.com/hugohenrick/pos-repuestos/pkg/logger"
)

type summaryFixture struct {
	saleRepo    *repository.SaleRepository
	expenseRepo *repository.ExpenseRepository
	summaryRepo *repository.SummaryRepository
	svc         *SummaryService
}

func newSummaryFixture() *summaryFixture {
	store := database.NewMemoryStore()
	saleRepo := repository.NewSaleRepository(store)
	expenseRepo := repository.NewExpenseRepository(store)
	summaryRepo := repository.NewSummaryRepository(store)

	return &summaryFixture{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		summaryRepo: summaryRepo,
		svc:         NewSummaryService(saleRepo, expenseRepo, summaryRepo, time.Local, logger.NewNopLogger()),
	}
}

// addSale registra uma venda simples (só produto externo) com os totais dados
func (f *summaryFixture) addSale(t *testing.T, labor *sale.MechanicLabor, totalAmount, totalCost, profit float64) *sale.Sale {
	t.Helper()
	s, err := sale.NewSale(nil,
		[]sale.ExternalProduct{{Name: "Repuesto", CostPrice: totalCost, SalePrice: totalAmount}},
		labor, totalAmount, totalCost, profit)
	if err != nil {
		t.Fatalf("erro ao criar venda: %v", err)
	}
	if err := f.saleRepo.Create(context.Background(), s); err != nil {
		t.Fatalf("erro ao salvar venda: %v", err)
	}
	return s
}

func (f *summaryFixture) addExpense(t *testing.T, concept string, amount float64) *expense.Expense {
	t.Helper()
	e, err := expense.NewExpense(concept, amount)
	if err != nil {
		t.Fatalf("erro ao criar despesa: %v", err)
	}
	if err := f.expenseRepo.Create(context.Background(), e); err != nil {
		t.Fatalf("erro ao salvar despesa: %v", err)
	}
	return e
}

func TestDailySummaryTotals(t *testing.T) {
	ctx := context.Background()
	f := newSummaryFixture()

	s := f.addSale(t, nil, 450000, 300000, 150000)
	f.addExpense(t, "Almuerzo", 15000)

	day := f.svc.DayOf(s.Date)
	d, err := f.svc.Daily(ctx, day)
	if err != nil {
		t.Fatalf("erro ao gerar resumo diário: %v", err)
	}

	if d.TotalSales != 450000 {
		t.Errorf("totalSales esperado 450000, obtido %v", d.TotalSales)
	}
	if d.TotalCost != 300000 {
		t.Errorf("totalCost esperado 300000, obtido %v", d.TotalCost)
	}
	if d.TotalExpenses != 15000 {
		t.Errorf("totalExpenses esperado 15000, obtido %v", d.TotalExpenses)
	}
	if d.Profit != 450000-300000-15000 {
		t.Errorf("profit esperado 135000, obtido %v", d.Profit)
	}
	if d.Closed {
		t.Error("resumo recém-derivado deve vir com closed = false")
	}
	if len(d.Sales) != 1 || len(d.Expenses) != 1 {
		t.Errorf("resumo deve carregar as vendas e despesas do dia: %d/%d", len(d.Sales), len(d.Expenses))
	}
}

func TestDailySummaryEmptyDay(t *testing.T) {
	f := newSummaryFixture()

	d, err := f.svc.Daily(context.Background(), "2001-01-01")
	if err != nil {
		t.Fatalf("dia sem movimento não deveria falhar: %v", err)
	}
	if d.TotalSales != 0 || d.TotalExpenses != 0 || d.Profit != 0 || d.Closed {
		t.Errorf("dia sem movimento deveria zerar tudo: %+v", d)
	}
}

func TestMechanicGrouping(t *testing.T) {
	ctx := context.Background()
	f := newSummaryFixture()

	s1 := f.addSale(t, &sale.MechanicLabor{Enabled: true, MechanicName: "Juan", Amount: 20000}, 100000, 60000, 40000)
	f.addSale(t, &sale.MechanicLabor{Enabled: true, MechanicName: "Pedro", Amount: 10000}, 50000, 30000, 20000)
	f.addSale(t, &sale.MechanicLabor{Enabled: true, MechanicName: "Juan", Amount: 30000}, 80000, 50000, 30000)
	// Mão de obra desabilitada não entra em nenhum agregado
	f.addSale(t, &sale.MechanicLabor{Enabled: false, MechanicName: "Luis", Amount: 99999}, 10000, 5000, 5000)

	d, err := f.svc.Daily(ctx, f.svc.DayOf(s1.Date))
	if err != nil {
		t.Fatalf("erro ao gerar resumo diário: %v", err)
	}

	if len(d.MechanicDetails) != 2 {
		t.Fatalf("esperados 2 mecânicos, obtidos %d: %+v", len(d.MechanicDetails), d.MechanicDetails)
	}
	// Ordem de primeira aparição do nome
	if d.MechanicDetails[0].Name != "Juan" || d.MechanicDetails[0].Amount != 50000 {
		t.Errorf("primeiro detalhe esperado Juan/50000, obtido %+v", d.MechanicDetails[0])
	}
	if d.MechanicDetails[1].Name != "Pedro" || d.MechanicDetails[1].Amount != 10000 {
		t.Errorf("segundo detalhe esperado Pedro/10000, obtido %+v", d.MechanicDetails[1])
	}
	if d.TotalMechanicPayments != 60000 {
		t.Errorf("totalMechanicPayments esperado 60000, obtido %v", d.TotalMechanicPayments)
	}

	wantProfit := d.TotalSales - d.TotalCost - d.TotalExpenses - d.TotalMechanicPayments
	if d.Profit != wantProfit {
		t.Errorf("profit esperado %v, obtido %v", wantProfit, d.Profit)
	}
}

func TestSalesTotalsReconcile(t *testing.T) {
	ctx := context.Background()
	f := newSummaryFixture()

	var wantTotal float64
	days := make(map[string]bool)
	for _, amount := range []float64{100, 250.5, 399.5, 1000} {
		s := f.addSale(t, nil, amount, amount/2, amount/2)
		wantTotal += amount
		days[f.svc.DayOf(s.Date)] = true
	}

	var gotTotal float64
	for day := range days {
		d, err := f.svc.Daily(ctx, day)
		if err != nil {
			t.Fatalf("erro ao gerar resumo de %s: %v", day, err)
		}
		gotTotal += d.TotalSales
	}

	if gotTotal != wantTotal {
		t.Errorf("soma dos resumos diários (%v) diverge da soma das vendas (%v)", gotTotal, wantTotal)
	}
}

func TestCloseDailyFreezesSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newSummaryFixture()

	s1 := f.addSale(t, nil, 450000, 300000, 150000)
	day := f.svc.DayOf(s1.Date)

	closed, err := f.svc.CloseDaily(ctx, day)
	if err != nil {
		t.Fatalf("erro ao fechar o dia: %v", err)
	}
	if !closed.Closed {
		t.Error("resumo fechado deve vir com closed = true")
	}

	// Venda registrada depois do fechamento fica invisível ao retrato
	f.addSale(t, nil, 99999, 50000, 49999)

	d, err := f.svc.Daily(ctx, day)
	if err != nil {
		t.Fatalf("erro ao reler resumo: %v", err)
	}
	if !d.Closed {
		t.Error("resumo de dia fechado deve responder com closed = true")
	}
	if d.TotalSales != 450000 {
		t.Errorf("retrato congelado deveria manter totalSales 450000, obtido %v", d.TotalSales)
	}
	if len(d.Sales) != 1 {
		t.Errorf("retrato congelado deveria manter 1 venda, obtidas %d", len(d.Sales))
	}
}

func TestCloseDailyTwice(t *testing.T) {
	ctx := context.Background()
	f := newSummaryFixture()

	s1 := f.addSale(t, nil, 450000, 300000, 150000)
	day := f.svc.DayOf(s1.Date)

	first, err := f.svc.CloseDaily(ctx, day)
	if err != nil {
		t.Fatalf("erro ao fechar o dia: %v", err)
	}

	f.addSale(t, nil, 77777, 40000, 37777)

	// O segundo fechamento regrava o retrato existente; não recalcula
	second, err := f.svc.CloseDaily(ctx, day)
	if err != nil {
		t.Fatalf("erro ao fechar o dia de novo: %v", err)
	}
	if !first.Closed || !second.Closed {
		t.Error("ambos os fechamentos devem responder closed = true")
	}
	if second.TotalSales != first.TotalSales {
		t.Errorf("segundo fechamento alterou o retrato: %v != %v", second.TotalSales, first.TotalSales)
	}

	d, _ := f.svc.Daily(ctx, day)
	if d.TotalSales != 450000 {
		t.Errorf("retrato após duplo fechamento deveria manter 450000, obtido %v", d.TotalSales)
	}
}

func TestMonthlyMatchesDaily(t *testing.T) {
	ctx := context.Background()
	f := newSummaryFixture()

	s1 := f.addSale(t, &sale.MechanicLabor{Enabled: true, MechanicName: "Juan", Amount: 20000}, 100000, 60000, 20000)
	f.addSale(t, nil, 50000, 30000, 20000)
	f.addExpense(t, "Luz", 12000)

	day := f.svc.DayOf(s1.Date)
	d, err := f.svc.Daily(ctx, day)
	if err != nil {
		t.Fatalf("erro ao gerar resumo diário: %v", err)
	}

	local := s1.Date.In(time.Local)
	m, err := f.svc.Monthly(ctx, local.Year(), int(local.Month())-1)
	if err != nil {
		t.Fatalf("erro ao gerar resumo mensal: %v", err)
	}

	// Com todo o movimento em um único dia, os dois caminhos de agregação
	// têm que coincidir
	if m.TotalSales != d.TotalSales || m.TotalCost != d.TotalCost ||
		m.TotalExpenses != d.TotalExpenses || m.TotalMechanicPayments != d.TotalMechanicPayments ||
		m.Profit != d.Profit {
		t.Errorf("mensal diverge do diário:\nmensal: %+v\ndiário: %+v", m, d)
	}
	if m.SalesCount != 2 {
		t.Errorf("salesCount esperado 2, obtido %d", m.SalesCount)
	}
}

func TestMonthlyIgnoresSnapshots(t *testing.T) {
	ctx := context.Background()
	f := newSummaryFixture()

	s1 := f.addSale(t, nil, 100000, 60000, 40000)
	day := f.svc.DayOf(s1.Date)

	if _, err := f.svc.CloseDaily(ctx, day); err != nil {
		t.Fatalf("erro ao fechar o dia: %v", err)
	}

	// Venda pós-fechamento: invisível ao diário congelado, visível ao mensal
	s2 := f.addSale(t, nil, 50000, 30000, 20000)

	local := s2.Date.In(time.Local)
	m, err := f.svc.Monthly(ctx, local.Year(), int(local.Month())-1)
	if err != nil {
		t.Fatalf("erro ao gerar resumo mensal: %v", err)
	}

	if m.TotalSales != 150000 {
		t.Errorf("mensal deveria ser sempre recalculado dos logs, totalSales obtido %v", m.TotalSales)
	}

	d, _ := f.svc.Daily(ctx, day)
	if d.TotalSales != 100000 {
		t.Errorf("diário congelado deveria manter 100000, obtido %v", d.TotalSales)
	}
}

func TestDailyInvalidDate(t *testing.T) {
	f := newSummaryFixture()

	for _, date := range []string{"", "hoje", "2024-13-01", "2024-02-30", "2024-1-2", "01-02-2024"} {
		if _, err := f.svc.Daily(context.Background(), date); !errors.Is(err, summary.ErrInvalidDate) {
			t.Errorf("Daily(%q): esperado ErrInvalidDate, obtido %v", date, err)
		}
	}
}

func TestMonthlyInvalidMonth(t *testing.T) {
	f := newSummaryFixture()

	for _, month := range []int{-1, 12, 99} {
		if _, err := f.svc.Monthly(context.Background(), 2024, month); !errors.Is(err, summary.ErrInvalidMonth) {
			t.Errorf("Monthly(2024, %d): esperado ErrInvalidMonth, obtido %v", month, err)
		}
	}
}

func TestMonthlyMonthKeyFormat(t *testing.T) {
	f := newSummaryFixture()

	m, err := f.svc.Monthly(context.Background(), 2024, 0)
	if err != nil {
		t.Fatalf("erro ao gerar resumo mensal: %v", err)
	}
	// Índice base zero vira mês 1-based com zero à esquerda
	if m.Month != "2024-01" {
		t.Errorf("chave do mês esperada 2024-01, obtida %q", m.Month)
	}
}

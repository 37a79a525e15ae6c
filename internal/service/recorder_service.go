package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pos-repuestos/internal/adapter/repository"
	"github.com/hugohenrick/pos-repuestos/internal/domain/expense"
	"github.com/hugohenrick/pos-repuestos/internal/domain/product"
	"github.com/hugohenrick/pos-repuestos/internal/domain/sale"
	"github.com/hugohenrick/pos-repuestos/pkg/logger"
)

// TransactionRecorder registra vendas e despesas. É o único caminho pelo
// qual o estoque diminui: cada item de catálogo de uma venda gera uma baixa
// no produto correspondente antes de a venda entrar no log.
type TransactionRecorder struct {
	productRepo product.Repository
	saleRepo    sale.Repository
	expenseRepo expense.Repository
	logger      logger.Logger
}

// NewTransactionRecorder cria uma nova instância de TransactionRecorder
func NewTransactionRecorder(productRepo product.Repository, saleRepo sale.Repository, expenseRepo expense.Repository, logger logger.Logger) *TransactionRecorder {
	return &TransactionRecorder{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// RecordSale registra uma venda finalizada no caixa. Os totais vêm prontos do
// caixa e são gravados como estão, nunca recalculados aqui. As baixas de
// estoque são independentes por item e incondicionais: não há transação
// cobrindo a venda inteira, e um item cuja baixa trava em zero não impede
// as demais. Produto desconhecido (removido após entrar no carrinho) é
// ignorado com aviso, já que o item carrega sua própria cópia do produto.
func (r *TransactionRecorder) RecordSale(ctx context.Context, items []sale.CartItem, externalProducts []sale.ExternalProduct, mechanicLabor *sale.MechanicLabor, totalAmount, totalCost, profit float64) (*sale.Sale, error) {
	s, err := sale.NewSale(items, externalProducts, mechanicLabor, totalAmount, totalCost, profit)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if _, err := r.productRepo.ReduceStock(ctx, item.Product.ID, item.Quantity); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				r.logger.Warn("baixa de estoque ignorada, produto não existe mais", "product_id", item.Product.ID, "product_name", item.Product.Name)
				continue
			}
			return nil, fmt.Errorf("erro ao baixar estoque do produto %s: %w", item.Product.ID, err)
		}
	}

	if err := r.saleRepo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("erro ao registrar venda: %w", err)
	}

	r.logger.Info("venda registrada", "sale_id", s.ID, "total_amount", s.TotalAmount, "items", len(s.Items))

	return s, nil
}

// RecordExpense registra uma despesa. Nenhum efeito sobre o catálogo.
func (r *TransactionRecorder) RecordExpense(ctx context.Context, concept string, amount float64) (*expense.Expense, error) {
	e, err := expense.NewExpense(concept, amount)
	if err != nil {
		return nil, err
	}

	if err := r.expenseRepo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("erro ao registrar despesa: %w", err)
	}

	r.logger.Info("despesa registrada", "expense_id", e.ID, "concept", e.Concept, "amount", e.Amount)

	return e, nil
}

package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/hugohenrick/pos-repuestos/internal/domain/expense"
	"github.com/hugohenrick/pos-repuestos/internal/infrastructure/database"
)

// ExpenseRepository implementa a interface expense.Repository sobre o store
// de registros, com o mesmo contrato de log apenas de inserção das vendas
type ExpenseRepository struct {
	store database.Store
	mu    sync.Mutex
}

// NewExpenseRepository cria uma nova instância de ExpenseRepository
func NewExpenseRepository(store database.Store) *ExpenseRepository {
	return &ExpenseRepository{
		store: store,
	}
}

// Create implementa expense.Repository.Create
func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	expenses, err := r.load()
	if err != nil {
		return err
	}

	expenses = append(expenses, e)

	if err := r.store.Write(database.KeyExpenses, expenses); err != nil {
		return fmt.Errorf("erro ao gravar despesas: %w", err)
	}

	return nil
}

// List implementa expense.Repository.List
func (r *ExpenseRepository) List(ctx context.Context) ([]*expense.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *ExpenseRepository) load() ([]*expense.Expense, error) {
	expenses := make([]*expense.Expense, 0)
	if err := r.store.Read(database.KeyExpenses, &expenses); err != nil {
		return nil, fmt.Errorf("erro ao carregar despesas: %w", err)
	}
	return expenses, nil
}

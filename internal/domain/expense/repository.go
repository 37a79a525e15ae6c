package expense

import (
	"context"
)

// Repository define a interface para o log de despesas, apenas de inserção
type Repository interface {
	// Create acrescenta uma despesa ao log
	Create(ctx context.Context, e *Expense) error

	// List retorna todas as despesas, na ordem de registro
	List(ctx context.Context) ([]*Expense, error)
}

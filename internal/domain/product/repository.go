package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create persiste um novo produto no catálogo
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// List retorna o catálogo completo, na ordem de inserção
	List(ctx context.Context) ([]*Product, error)

	// Update atualiza os dados cadastrais de um produto existente
	Update(ctx context.Context, id string, name string, category Category, costPrice float64) (*Product, error)

	// AddStock adiciona unidades ao estoque de um produto
	AddStock(ctx context.Context, id string, quantity int) (*Product, error)

	// ReduceStock baixa unidades do estoque de um produto, travando em zero
	ReduceStock(ctx context.Context, id string, quantity int) (*Product, error)

	// Search busca produtos por nome ou categoria, na ordem do catálogo
	Search(ctx context.Context, query string) ([]*Product, error)

	// Delete remove um produto do catálogo
	Delete(ctx context.Context, id string) error

	// Count conta quantos produtos existem no catálogo
	Count(ctx context.Context) (int, error)
}

package sale

import (
	"context"
)

// Repository define a interface para o log de vendas. O log é apenas de
// inserção: nenhuma operação de alteração ou remoção é exposta.
type Repository interface {
	// Create acrescenta uma venda ao log
	Create(ctx context.Context, s *Sale) error

	// List retorna todas as vendas, na ordem de registro
	List(ctx context.Context) ([]*Sale, error)

	// Count conta quantas vendas existem no log
	Count(ctx context.Context) (int, error)
}

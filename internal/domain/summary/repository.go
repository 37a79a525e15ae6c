package summary

import (
	"context"
)

// Repository define a interface para os retratos de dias fechados.
// Apenas resumos fechados são persistidos; a ausência de registro para uma
// data significa que o dia segue aberto.
type Repository interface {
	// FindByDate busca o retrato congelado de uma data
	FindByDate(ctx context.Context, date string) (*Daily, error)

	// Save persiste o retrato de um dia fechado, substituindo qualquer
	// retrato anterior da mesma data
	Save(ctx context.Context, d *Daily) error

	// List retorna todos os dias fechados
	List(ctx context.Context) ([]*Daily, error)
}

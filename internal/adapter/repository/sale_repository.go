package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/hugohenrick/pos-repuestos/internal/domain/sale"
	"github.com/hugohenrick/pos-repuestos/internal/infrastructure/database"
)

// SaleRepository implementa a interface sale.Repository sobre o store de
// registros. O log de vendas é apenas de inserção: uma falha de gravação
// propaga ao chamador, nunca é engolida.
type SaleRepository struct {
	store database.Store
	mu    sync.Mutex
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(store database.Store) *SaleRepository {
	return &SaleRepository{
		store: store,
	}
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sales, err := r.load()
	if err != nil {
		return err
	}

	sales = append(sales, s)

	if err := r.store.Write(database.KeySales, sales); err != nil {
		return fmt.Errorf("erro ao gravar vendas: %w", err)
	}

	return nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context) ([]*sale.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sales, err := r.load()
	if err != nil {
		return 0, err
	}

	return len(sales), nil
}

func (r *SaleRepository) load() ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0)
	if err := r.store.Read(database.KeySales, &sales); err != nil {
		return nil, fmt.Errorf("erro ao carregar vendas: %w", err)
	}
	return sales, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hugohenrick/pos-repuestos/internal/domain/product"
	"github.com/hugohenrick/pos-repuestos/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrProductNotFound = errors.New("produto não encontrado")
)

// ProductRepository implementa a interface product.Repository sobre o store
// de registros. Cada operação lê a coleção inteira, aplica a mudança e grava
// a coleção de volta; o mutex serializa o ciclo porque o servidor HTTP
// atende requisições concorrentes.
type ProductRepository struct {
	store database.Store
	mu    sync.Mutex
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(store database.Store) *ProductRepository {
	return &ProductRepository{
		store: store,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}

	products = append(products, p)

	return r.save(products)
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, ErrProductNotFound
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, id string, name string, category product.Category, costPrice float64) (*product.Product, error) {
	return r.mutate(id, func(p *product.Product) error {
		return p.Update(name, category, costPrice)
	})
}

// AddStock implementa product.Repository.AddStock
func (r *ProductRepository) AddStock(ctx context.Context, id string, quantity int) (*product.Product, error) {
	return r.mutate(id, func(p *product.Product) error {
		return p.AddStock(quantity)
	})
}

// ReduceStock implementa product.Repository.ReduceStock
func (r *ProductRepository) ReduceStock(ctx context.Context, id string, quantity int) (*product.Product, error) {
	return r.mutate(id, func(p *product.Product) error {
		p.ReduceStock(quantity)
		return nil
	})
}

// Search implementa product.Repository.Search
func (r *ProductRepository) Search(ctx context.Context, query string) ([]*product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}

	matches := make([]*product.Product, 0)
	for _, p := range products {
		if p.Matches(query) {
			matches = append(matches, p)
		}
	}

	return matches, nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return err
	}

	remaining := make([]*product.Product, 0, len(products))
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, p)
	}

	if !found {
		return ErrProductNotFound
	}

	return r.save(remaining)
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return 0, err
	}

	return len(products), nil
}

// mutate aplica uma mudança a um produto e grava a coleção de volta.
// Nenhum estado parcial sobrevive: se a mudança falha, nada é gravado.
func (r *ProductRepository) mutate(id string, fn func(*product.Product) error) (*product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if p.ID != id {
			continue
		}

		if err := fn(p); err != nil {
			return nil, err
		}

		if err := r.save(products); err != nil {
			return nil, err
		}

		return p, nil
	}

	return nil, ErrProductNotFound
}

func (r *ProductRepository) load() ([]*product.Product, error) {
	products := make([]*product.Product, 0)
	if err := r.store.Read(database.KeyProducts, &products); err != nil {
		return nil, fmt.Errorf("erro ao carregar produtos: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) save(products []*product.Product) error {
	if err := r.store.Write(database.KeyProducts, products); err != nil {
		return fmt.Errorf("erro ao gravar produtos: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/pos-repuestos/internal/domain/product"
	"github.com/hugohenrick/pos-repuestos/internal/infrastructure/database"
)

func newProduct(t *testing.T, name string, quantity int, category product.Category, costPrice float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, quantity, category, costPrice)
	if err != nil {
		t.Fatalf("erro ao criar produto: %v", err)
	}
	return p
}

func TestProductRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(database.NewMemoryStore())

	p := newProduct(t, "Faro", 10, product.CategoryLuces, 100000)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("erro ao salvar produto: %v", err)
	}

	found, err := repo.FindByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("erro ao buscar produto: %v", err)
	}
	if found.Name != "Faro" || found.Quantity != 10 {
		t.Errorf("produto recuperado diverge: %+v", found)
	}

	if _, err := repo.FindByID(ctx, "inexistente"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("id desconhecido deveria retornar ErrProductNotFound, obtido %v", err)
	}
}

func TestProductRepositoryReduceStockClamp(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(database.NewMemoryStore())

	p := newProduct(t, "Faro", 10, product.CategoryLuces, 100000)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("erro ao salvar produto: %v", err)
	}

	updated, err := repo.ReduceStock(ctx, p.ID, 15)
	if err != nil {
		t.Fatalf("baixa acima do estoque não deveria falhar: %v", err)
	}
	if updated.Quantity != 0 {
		t.Errorf("quantidade esperada 0, obtida %d", updated.Quantity)
	}

	// A baixa persiste
	found, _ := repo.FindByID(ctx, p.ID)
	if found.Quantity != 0 {
		t.Errorf("quantidade persistida esperada 0, obtida %d", found.Quantity)
	}
}

func TestProductRepositoryMutationsOnUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(database.NewMemoryStore())

	if _, err := repo.Update(ctx, "x", "Nome", product.CategoryOtros, 10); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Update: esperado ErrProductNotFound, obtido %v", err)
	}
	if _, err := repo.AddStock(ctx, "x", 5); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("AddStock: esperado ErrProductNotFound, obtido %v", err)
	}
	if _, err := repo.ReduceStock(ctx, "x", 5); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("ReduceStock: esperado ErrProductNotFound, obtido %v", err)
	}
	if err := repo.Delete(ctx, "x"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Delete: esperado ErrProductNotFound, obtido %v", err)
	}

	// Nenhuma operação pode ter deixado estado parcial
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("erro ao contar produtos: %v", err)
	}
	if count != 0 {
		t.Errorf("catálogo deveria seguir vazio, obtidos %d", count)
	}
}

func TestProductRepositoryFailedUpdateWritesNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(database.NewMemoryStore())

	p := newProduct(t, "Faro", 10, product.CategoryLuces, 100000)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("erro ao salvar produto: %v", err)
	}

	if _, err := repo.Update(ctx, p.ID, "", product.CategoryLuces, 100000); !errors.Is(err, product.ErrEmptyName) {
		t.Fatalf("esperado ErrEmptyName, obtido %v", err)
	}

	found, _ := repo.FindByID(ctx, p.ID)
	if found.Name != "Faro" {
		t.Errorf("atualização inválida não pode ser persistida, nome obtido %q", found.Name)
	}
}

func TestProductRepositorySearch(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(database.NewMemoryStore())

	faro := newProduct(t, "Faro delantero", 1, product.CategoryLuces, 100)
	espejo := newProduct(t, "Espejo lateral", 1, product.CategoryEspejos, 200)
	bombillo := newProduct(t, "Bombillo H4", 1, product.CategoryLuces, 300)

	for _, p := range []*product.Product{faro, espejo, bombillo} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("erro ao salvar produto: %v", err)
		}
	}

	// Busca por categoria, sem diferenciar maiúsculas, na ordem do catálogo
	results, err := repo.Search(ctx, "LUCES")
	if err != nil {
		t.Fatalf("erro na busca: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("esperados 2 resultados, obtidos %d", len(results))
	}
	if results[0].ID != faro.ID || results[1].ID != bombillo.ID {
		t.Error("busca deve preservar a ordem de inserção do catálogo")
	}

	// Busca por trecho do nome
	results, _ = repo.Search(ctx, "espejo")
	if len(results) != 1 || results[0].ID != espejo.ID {
		t.Errorf("busca por nome falhou: %v", results)
	}

	// Sem correspondência
	results, _ = repo.Search(ctx, "frenos")
	if len(results) != 0 {
		t.Errorf("esperado nenhum resultado, obtidos %d", len(results))
	}
}

func TestProductRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(database.NewMemoryStore())

	p := newProduct(t, "Faro", 1, product.CategoryLuces, 100)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("erro ao salvar produto: %v", err)
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("erro ao remover produto: %v", err)
	}
	if _, err := repo.FindByID(ctx, p.ID); !errors.Is(err, ErrProductNotFound) {
		t.Error("produto removido não deveria ser encontrado")
	}
}

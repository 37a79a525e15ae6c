package database

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/hugohenrick/pos-repuestos/internal/domain/expense"
	"github.com/hugohenrick/pos-repuestos/internal/domain/product"
	"github.com/hugohenrick/pos-repuestos/internal/domain/sale"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()

	store, err := NewBoltStore(&BoltConfig{
		Path:    filepath.Join(t.TempDir(), "pos-test.db"),
		Timeout: time.Second,
	})
	if err != nil {
		t.Fatalf("erro ao abrir store de teste: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// assertJSONEqual compara dois valores pela sua forma serializada, que é o
// que de fato sobrevive no store
func assertJSONEqual(t *testing.T, want, got interface{}) {
	t.Helper()

	wantRaw, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("erro ao codificar valor esperado: %v", err)
	}
	gotRaw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("erro ao codificar valor obtido: %v", err)
	}

	if string(wantRaw) != string(gotRaw) {
		t.Errorf("valores divergem após o ciclo de persistência:\nesperado: %s\nobtido:   %s", wantRaw, gotRaw)
	}
}

func TestBoltStoreRoundTripProducts(t *testing.T) {
	store := newTestStore(t)

	p, _ := product.NewProduct("Faro delantero", 10, product.CategoryLuces, 100000)
	written := []*product.Product{p}

	if err := store.Write(KeyProducts, written); err != nil {
		t.Fatalf("erro ao gravar produtos: %v", err)
	}

	reloaded := make([]*product.Product, 0)
	if err := store.Read(KeyProducts, &reloaded); err != nil {
		t.Fatalf("erro ao ler produtos: %v", err)
	}

	if len(reloaded) != 1 {
		t.Fatalf("esperado 1 produto, obtidos %d", len(reloaded))
	}
	assertJSONEqual(t, written, reloaded)

	// Valores numéricos não podem virar string nem perder tipo
	if reloaded[0].Quantity != 10 || reloaded[0].CostPrice != 100000 {
		t.Errorf("campos numéricos divergem: %d %v", reloaded[0].Quantity, reloaded[0].CostPrice)
	}
}

func TestBoltStoreRoundTripSalesAndExpenses(t *testing.T) {
	store := newTestStore(t)

	p, _ := product.NewProduct("Espejo", 5, product.CategoryEspejos, 40000)
	s, err := sale.NewSale(
		[]sale.CartItem{{Product: *p, Quantity: 2, SalePrice: 52000}},
		[]sale.ExternalProduct{{Name: "Aceite", CostPrice: 20000, SalePrice: 30000}},
		&sale.MechanicLabor{Enabled: true, MechanicName: "Juan", Amount: 20000},
		134000, 100000, 34000,
	)
	if err != nil {
		t.Fatalf("erro ao criar venda: %v", err)
	}

	e, err := expense.NewExpense("Almuerzo", 15000)
	if err != nil {
		t.Fatalf("erro ao criar despesa: %v", err)
	}

	if err := store.Write(KeySales, []*sale.Sale{s}); err != nil {
		t.Fatalf("erro ao gravar vendas: %v", err)
	}
	if err := store.Write(KeyExpenses, []*expense.Expense{e}); err != nil {
		t.Fatalf("erro ao gravar despesas: %v", err)
	}

	reloadedSales := make([]*sale.Sale, 0)
	if err := store.Read(KeySales, &reloadedSales); err != nil {
		t.Fatalf("erro ao ler vendas: %v", err)
	}
	assertJSONEqual(t, []*sale.Sale{s}, reloadedSales)

	reloadedExpenses := make([]*expense.Expense, 0)
	if err := store.Read(KeyExpenses, &reloadedExpenses); err != nil {
		t.Fatalf("erro ao ler despesas: %v", err)
	}
	assertJSONEqual(t, []*expense.Expense{e}, reloadedExpenses)
}

func TestBoltStoreMissingKey(t *testing.T) {
	store := newTestStore(t)

	products := make([]*product.Product, 0)
	if err := store.Read("nunca-gravada", &products); err != nil {
		t.Fatalf("ler chave ausente não deveria falhar: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("chave ausente deveria deixar a coleção vazia, obtidos %d", len(products))
	}
}

func TestBoltStoreWriteReplaces(t *testing.T) {
	store := newTestStore(t)

	if err := store.Write(KeyExpenses, []string{"a", "b"}); err != nil {
		t.Fatalf("erro ao gravar: %v", err)
	}
	if err := store.Write(KeyExpenses, []string{"c"}); err != nil {
		t.Fatalf("erro ao regravar: %v", err)
	}

	var got []string
	if err := store.Read(KeyExpenses, &got); err != nil {
		t.Fatalf("erro ao ler: %v", err)
	}
	if len(got) != 1 || got[0] != "c" {
		t.Errorf("Write deveria substituir a coleção inteira, obtido %v", got)
	}
}

func TestMemoryStoreMatchesBoltBehavior(t *testing.T) {
	mem := NewMemoryStore()

	p, _ := product.NewProduct("Faro", 3, product.CategoryLuces, 100000)
	if err := mem.Write(KeyProducts, []*product.Product{p}); err != nil {
		t.Fatalf("erro ao gravar: %v", err)
	}

	reloaded := make([]*product.Product, 0)
	if err := mem.Read(KeyProducts, &reloaded); err != nil {
		t.Fatalf("erro ao ler: %v", err)
	}
	assertJSONEqual(t, []*product.Product{p}, reloaded)

	// Chave ausente se comporta como no store em arquivo
	empty := make([]*product.Product, 0)
	if err := mem.Read("nunca-gravada", &empty); err != nil {
		t.Fatalf("ler chave ausente não deveria falhar: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("chave ausente deveria deixar a coleção vazia, obtidos %d", len(empty))
	}
}

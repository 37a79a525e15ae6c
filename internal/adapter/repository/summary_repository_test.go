package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/pos-repuestos/internal/domain/summary"
	"github.com/hugohenrick/pos-repuestos/internal/infrastructure/database"
)

func TestSummaryRepositorySaveReplacesByDate(t *testing.T) {
	ctx := context.Background()
	repo := NewSummaryRepository(database.NewMemoryStore())

	if _, err := repo.FindByDate(ctx, "2024-05-01"); !errors.Is(err, ErrSummaryNotFound) {
		t.Errorf("data sem retrato deveria retornar ErrSummaryNotFound, obtido %v", err)
	}

	first := &summary.Daily{Date: "2024-05-01", TotalSales: 100, Closed: true}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("erro ao gravar retrato: %v", err)
	}

	other := &summary.Daily{Date: "2024-05-02", TotalSales: 50, Closed: true}
	if err := repo.Save(ctx, other); err != nil {
		t.Fatalf("erro ao gravar retrato: %v", err)
	}

	// Regravar a mesma data substitui o retrato anterior, sem duplicar
	replacement := &summary.Daily{Date: "2024-05-01", TotalSales: 200, Closed: true}
	if err := repo.Save(ctx, replacement); err != nil {
		t.Fatalf("erro ao regravar retrato: %v", err)
	}

	found, err := repo.FindByDate(ctx, "2024-05-01")
	if err != nil {
		t.Fatalf("erro ao buscar retrato: %v", err)
	}
	if found.TotalSales != 200 {
		t.Errorf("retrato esperado com totalSales 200, obtido %v", found.TotalSales)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("erro ao listar retratos: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("esperados 2 retratos, obtidos %d", len(all))
	}
}

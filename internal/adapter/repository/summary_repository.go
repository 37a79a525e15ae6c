package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hugohenrick/pos-repuestos/internal/domain/summary"
	"github.com/hugohenrick/pos-repuestos/internal/infrastructure/database"
)

var (
	ErrSummaryNotFound = errors.New("resumo diário não encontrado")
)

// SummaryRepository implementa a interface summary.Repository sobre o store
// de registros. Guarda apenas retratos de dias fechados; Save substitui o
// retrato anterior da mesma data, o que torna o fechamento idempotente.
type SummaryRepository struct {
	store database.Store
	mu    sync.Mutex
}

// NewSummaryRepository cria uma nova instância de SummaryRepository
func NewSummaryRepository(store database.Store) *SummaryRepository {
	return &SummaryRepository{
		store: store,
	}
}

// FindByDate implementa summary.Repository.FindByDate
func (r *SummaryRepository) FindByDate(ctx context.Context, date string) (*summary.Daily, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, s := range summaries {
		if s.Date == date {
			return s, nil
		}
	}

	return nil, ErrSummaryNotFound
}

// Save implementa summary.Repository.Save
func (r *SummaryRepository) Save(ctx context.Context, d *summary.Daily) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries, err := r.load()
	if err != nil {
		return err
	}

	replaced := make([]*summary.Daily, 0, len(summaries)+1)
	for _, s := range summaries {
		if s.Date == d.Date {
			continue
		}
		replaced = append(replaced, s)
	}
	replaced = append(replaced, d)

	if err := r.store.Write(database.KeyDailySummaries, replaced); err != nil {
		return fmt.Errorf("erro ao gravar resumos diários: %w", err)
	}

	return nil
}

// List implementa summary.Repository.List
func (r *SummaryRepository) List(ctx context.Context) ([]*summary.Daily, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *SummaryRepository) load() ([]*summary.Daily, error) {
	summaries := make([]*summary.Daily, 0)
	if err := r.store.Read(database.KeyDailySummaries, &summaries); err != nil {
		return nil, fmt.Errorf("erro ao carregar resumos diários: %w", err)
	}
	return summaries, nil
}

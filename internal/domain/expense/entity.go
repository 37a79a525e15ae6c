package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyConcept   = errors.New("descrição da despesa não pode ser vazia")
	ErrNegativeAmount = errors.New("valor da despesa não pode ser negativo")
)

// Expense representa uma despesa do dia a dia da loja. Imutável após a criação.
type Expense struct {
	ID      string    `json:"id"`
	Concept string    `json:"concept"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
}

// NewExpense cria uma nova despesa com id e data atribuídos
func NewExpense(concept string, amount float64) (*Expense, error) {
	if strings.TrimSpace(concept) == "" {
		return nil, ErrEmptyConcept
	}
	if amount < 0 {
		return nil, ErrNegativeAmount
	}

	return &Expense{
		ID:      uuid.New().String(),
		Concept: concept,
		Amount:  amount,
		Date:    time.Now(),
	}, nil
}

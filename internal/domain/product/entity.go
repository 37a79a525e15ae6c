package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("nome do produto não pode ser vazio")
	ErrNegativeQuantity  = errors.New("quantidade não pode ser negativa")
	ErrNegativeCostPrice = errors.New("preço de custo não pode ser negativo")
	ErrInvalidCategory   = errors.New("categoria inválida")
	ErrInvalidStockDelta = errors.New("quantidade de estoque deve ser maior que zero")
)

// Category representa a categoria de uma peça no catálogo
type Category string

const (
	CategoryLuces          Category = "Luces"
	CategoryEspejos        Category = "Espejos"
	CategoryAccesorios     Category = "Accesorios"
	CategoryRepuestosMotor Category = "Repuestos Motor"
	CategoryFrenos         Category = "Frenos"
	CategorySuspension     Category = "Suspensión"
	CategoryElectricos     Category = "Eléctricos"
	CategoryCarroceria     Category = "Carrocería"
	CategoryOtros          Category = "Otros"
)

// Categories lista as categorias aceitas, na ordem exibida pela interface
var Categories = []Category{
	CategoryLuces,
	CategoryEspejos,
	CategoryAccesorios,
	CategoryRepuestosMotor,
	CategoryFrenos,
	CategorySuspension,
	CategoryElectricos,
	CategoryCarroceria,
	CategoryOtros,
}

// IsValid verifica se a categoria pertence ao conjunto fechado
func (c Category) IsValid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// MarginDefault é o fator aplicado ao preço de custo para sugerir o preço
// de venda (30% de margem). Apenas sugestão para a interface, nunca imposto.
const MarginDefault = 1.3

// Product representa uma peça do catálogo com seu nível de estoque
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Category  Category  `json:"category"`
	CostPrice float64   `json:"cost_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProduct cria um novo produto com id e timestamps atribuídos
func NewProduct(name string, quantity int, category Category, costPrice float64) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if costPrice < 0 {
		return nil, ErrNegativeCostPrice
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		Name:      name,
		Quantity:  quantity,
		Category:  category,
		CostPrice: costPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados cadastrais do produto.
// ID, CreatedAt e Quantity nunca são alterados por aqui.
func (p *Product) Update(name string, category Category, costPrice float64) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if costPrice < 0 {
		return ErrNegativeCostPrice
	}
	if !category.IsValid() {
		return ErrInvalidCategory
	}

	p.Name = name
	p.Category = category
	p.CostPrice = costPrice
	p.UpdatedAt = time.Now()

	return nil
}

// AddStock adiciona unidades ao estoque
func (p *Product) AddStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidStockDelta
	}

	p.Quantity += quantity
	p.UpdatedAt = time.Now()

	return nil
}

// ReduceStock baixa unidades do estoque, travando em zero: vender além do
// estoque disponível é permitido e a diferença é absorvida silenciosamente.
// Retorna a quantidade efetivamente baixada.
func (p *Product) ReduceStock(quantity int) int {
	deducted := quantity
	if deducted > p.Quantity {
		deducted = p.Quantity
	}

	p.Quantity -= deducted
	p.UpdatedAt = time.Now()

	return deducted
}

// SuggestedSalePrice retorna o preço de venda sugerido (custo × 1.3)
func (p *Product) SuggestedSalePrice() float64 {
	return p.CostPrice * MarginDefault
}

// Matches verifica se o produto atende a uma busca por nome ou categoria,
// sem diferenciar maiúsculas de minúsculas
func (p *Product) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(string(p.Category)), q)
}

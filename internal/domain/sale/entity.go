package sale

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/pos-repuestos/internal/domain/product"
)

var (
	ErrEmptySale           = errors.New("venda deve ter ao menos um item ou produto externo")
	ErrInvalidItemQuantity = errors.New("quantidade do item deve ser maior que zero")
	ErrNegativeSalePrice   = errors.New("preço de venda não pode ser negativo")
	ErrEmptyMechanicName   = errors.New("nome do mecânico não pode ser vazio")
	ErrNegativeLaborAmount = errors.New("valor da mão de obra não pode ser negativo")
	ErrEmptyExternalName   = errors.New("nome do produto externo não pode ser vazio")
)

// CartItem é um item de venda apoiado pelo catálogo. Product é uma cópia do
// produto no momento da venda, não uma referência viva: a venda permanece
// fiel ao histórico mesmo que o produto seja editado ou removido depois.
type CartItem struct {
	Product   product.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	SalePrice float64         `json:"sale_price"`
}

// ExternalProduct é um item vendido sem lastro no catálogo: não possui id
// e não afeta estoque
type ExternalProduct struct {
	Name      string  `json:"name"`
	CostPrice float64 `json:"cost_price"`
	SalePrice float64 `json:"sale_price"`
}

// MechanicLabor é a mão de obra cobrada na venda e devida a um mecânico
// identificado por nome. Presente por inteiro ou ausente, nunca parcial.
type MechanicLabor struct {
	Enabled      bool    `json:"enabled"`
	MechanicName string  `json:"mechanic_name"`
	Amount       float64 `json:"amount"`
}

// Sale representa uma venda finalizada no caixa. TotalAmount, TotalCost e
// Profit são calculados pelo caixa no fechamento e gravados como estão:
// são um retrato congelado da economia da venda. Imutável após a criação.
type Sale struct {
	ID               string            `json:"id"`
	Items            []CartItem        `json:"items"`
	ExternalProducts []ExternalProduct `json:"external_products"`
	MechanicLabor    *MechanicLabor    `json:"mechanic_labor"`
	TotalAmount      float64           `json:"total_amount"`
	TotalCost        float64           `json:"total_cost"`
	Profit           float64           `json:"profit"`
	Date             time.Time         `json:"date"`
}

// NewSale cria uma nova venda com id e data atribuídos
func NewSale(items []CartItem, externalProducts []ExternalProduct, mechanicLabor *MechanicLabor, totalAmount, totalCost, profit float64) (*Sale, error) {
	if len(items) == 0 && len(externalProducts) == 0 {
		return nil, ErrEmptySale
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidItemQuantity
		}
		if item.SalePrice < 0 {
			return nil, ErrNegativeSalePrice
		}
	}

	for _, ext := range externalProducts {
		if strings.TrimSpace(ext.Name) == "" {
			return nil, ErrEmptyExternalName
		}
		if ext.SalePrice < 0 {
			return nil, ErrNegativeSalePrice
		}
	}

	if mechanicLabor != nil && mechanicLabor.Enabled {
		if strings.TrimSpace(mechanicLabor.MechanicName) == "" {
			return nil, ErrEmptyMechanicName
		}
		if mechanicLabor.Amount < 0 {
			return nil, ErrNegativeLaborAmount
		}
	}

	return &Sale{
		ID:               uuid.New().String(),
		Items:            items,
		ExternalProducts: externalProducts,
		MechanicLabor:    mechanicLabor,
		TotalAmount:      totalAmount,
		TotalCost:        totalCost,
		Profit:           profit,
		Date:             time.Now(),
	}, nil
}

// HasLabor verifica se a venda possui mão de obra de mecânico
func (s *Sale) HasLabor() bool {
	return s.MechanicLabor != nil && s.MechanicLabor.Enabled
}

// LaborAmount retorna o valor da mão de obra, ou zero quando ausente
func (s *Sale) LaborAmount() float64 {
	if !s.HasLabor() {
		return 0
	}
	return s.MechanicLabor.Amount
}

package dto

import (
	"time"

	"github.com/hugohenrick/pos-repuestos/internal/domain/product"
	"github.com/hugohenrick/pos-repuestos/internal/domain/sale"
)

// CartItemRequest representa um item de carrinho apoiado pelo catálogo.
// O produto inteiro viaja na requisição porque a venda guarda uma cópia do
// produto no momento da venda, não uma referência.
type CartItemRequest struct {
	Product   ProductSnapshot `json:"product" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	SalePrice float64         `json:"sale_price" binding:"gte=0"`
}

// ProductSnapshot é a cópia do produto embutida no item de venda
type ProductSnapshot struct {
	ID        string           `json:"id" binding:"required"`
	Name      string           `json:"name" binding:"required"`
	Quantity  int              `json:"quantity"`
	Category  product.Category `json:"category"`
	CostPrice float64          `json:"cost_price"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ExternalProductRequest representa um item vendido sem lastro no catálogo
type ExternalProductRequest struct {
	Name      string  `json:"name" binding:"required"`
	CostPrice float64 `json:"cost_price" binding:"gte=0"`
	SalePrice float64 `json:"sale_price" binding:"gte=0"`
}

// MechanicLaborRequest representa a mão de obra cobrada na venda
type MechanicLaborRequest struct {
	Enabled      bool    `json:"enabled"`
	MechanicName string  `json:"mechanic_name"`
	Amount       float64 `json:"amount"`
}

// SaleRequest representa a requisição de fechamento de venda no caixa.
// Os totais são calculados pelo caixa e gravados como estão.
type SaleRequest struct {
	Items            []CartItemRequest        `json:"items"`
	ExternalProducts []ExternalProductRequest `json:"external_products"`
	MechanicLabor    *MechanicLaborRequest    `json:"mechanic_labor"`
	TotalAmount      float64                  `json:"total_amount" binding:"gte=0"`
	TotalCost        float64                  `json:"total_cost" binding:"gte=0"`
	Profit           float64                  `json:"profit"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID               string                 `json:"id"`
	Items            []sale.CartItem        `json:"items"`
	ExternalProducts []sale.ExternalProduct `json:"external_products"`
	MechanicLabor    *sale.MechanicLabor    `json:"mechanic_labor"`
	TotalAmount      float64                `json:"total_amount"`
	TotalCost        float64                `json:"total_cost"`
	Profit           float64                `json:"profit"`
	Date             time.Time              `json:"date"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}

// ToCartItems converte os itens da requisição para o domínio
func (r *SaleRequest) ToCartItems() []sale.CartItem {
	items := make([]sale.CartItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, sale.CartItem{
			Product: product.Product{
				ID:        it.Product.ID,
				Name:      it.Product.Name,
				Quantity:  it.Product.Quantity,
				Category:  it.Product.Category,
				CostPrice: it.Product.CostPrice,
				CreatedAt: it.Product.CreatedAt,
				UpdatedAt: it.Product.UpdatedAt,
			},
			Quantity:  it.Quantity,
			SalePrice: it.SalePrice,
		})
	}
	return items
}

// ToExternalProducts converte os produtos externos da requisição para o domínio
func (r *SaleRequest) ToExternalProducts() []sale.ExternalProduct {
	externals := make([]sale.ExternalProduct, 0, len(r.ExternalProducts))
	for _, ext := range r.ExternalProducts {
		externals = append(externals, sale.ExternalProduct{
			Name:      ext.Name,
			CostPrice: ext.CostPrice,
			SalePrice: ext.SalePrice,
		})
	}
	return externals
}

// ToMechanicLabor converte a mão de obra da requisição para o domínio
func (r *SaleRequest) ToMechanicLabor() *sale.MechanicLabor {
	if r.MechanicLabor == nil {
		return nil
	}
	return &sale.MechanicLabor{
		Enabled:      r.MechanicLabor.Enabled,
		MechanicName: r.MechanicLabor.MechanicName,
		Amount:       r.MechanicLabor.Amount,
	}
}

// ToSaleResponse converte uma venda do domínio para a resposta da API
func ToSaleResponse(s *sale.Sale) SaleResponse {
	return SaleResponse{
		ID:               s.ID,
		Items:            s.Items,
		ExternalProducts: s.ExternalProducts,
		MechanicLabor:    s.MechanicLabor,
		TotalAmount:      s.TotalAmount,
		TotalCost:        s.TotalCost,
		Profit:           s.Profit,
		Date:             s.Date,
	}
}

// ToSaleListResponse converte uma lista de vendas para a resposta da API
func ToSaleListResponse(sales []*sale.Sale) SaleListResponse {
	items := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, ToSaleResponse(s))
	}
	return SaleListResponse{
		Items: items,
		Total: len(items),
	}
}

package dto

import (
	"time"

	"github.com/hugohenrick/pos-repuestos/internal/domain/product"
)

// ProductRequest representa a requisição de cadastro de produto
type ProductRequest struct {
	Name      string           `json:"name" binding:"required"`
	Quantity  *int             `json:"quantity" binding:"required,gte=0"`
	Category  product.Category `json:"category" binding:"required"`
	CostPrice *float64         `json:"cost_price" binding:"required,gte=0"`
}

// ProductUpdateRequest representa a requisição de atualização cadastral.
// Quantidade não entra aqui: estoque muda apenas pelas rotas de estoque.
type ProductUpdateRequest struct {
	Name      string           `json:"name" binding:"required"`
	Category  product.Category `json:"category" binding:"required"`
	CostPrice *float64         `json:"cost_price" binding:"required,gte=0"`
}

// StockRequest representa a requisição de entrada de estoque
type StockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Quantity           int              `json:"quantity"`
	Category           product.Category `json:"category"`
	CostPrice          float64          `json:"cost_price"`
	SuggestedSalePrice float64          `json:"suggested_sale_price"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ToProductResponse converte um produto do domínio para a resposta da API
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Quantity:           p.Quantity,
		Category:           p.Category,
		CostPrice:          p.CostPrice,
		SuggestedSalePrice: p.SuggestedSalePrice(),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos para a resposta da API
func ToProductListResponse(products []*product.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return ProductListResponse{
		Items: items,
		Total: len(items),
	}
}

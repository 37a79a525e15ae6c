package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-repuestos/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-repuestos/internal/adapter/repository"
	productdomain "github.com/hugohenrick/pos-repuestos/internal/domain/product"
	"github.com/hugohenrick/pos-repuestos/pkg/logger"
)

// ProductController gerencia as requisições relacionadas ao catálogo de produtos
type ProductController struct {
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create cadastra um novo produto
// @Summary Cadastrar produto
// @Description Cadastra um novo produto no catálogo
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := productdomain.NewProduct(req.Name, *req.Quantity, req.Category, *req.CostPrice)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}

	if err := c.productRepo.Create(ctx, p); err != nil {
		c.logger.Error("erro ao salvar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags products
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		c.respondRepoError(ctx, err, "erro ao buscar produto")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List retorna o catálogo completo
// @Summary Listar produtos
// @Description Retorna todos os produtos do catálogo, na ordem de cadastro
// @Tags products
// @Produce json
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.productRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// Search busca produtos por nome ou categoria
// @Summary Buscar produtos
// @Description Busca produtos por trecho do nome ou da categoria, sem diferenciar maiúsculas
// @Tags products
// @Produce json
// @Param q query string true "Texto da busca"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/search [get]
func (c *ProductController) Search(ctx *gin.Context) {
	products, err := c.productRepo.Search(ctx, ctx.Query("q"))
	if err != nil {
		c.logger.Error("erro ao buscar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// Update atualiza os dados cadastrais de um produto
// @Summary Atualizar produto
// @Description Atualiza nome, categoria e preço de custo de um produto
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param product body dto.ProductUpdateRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.productRepo.Update(ctx, ctx.Param("id"), req.Name, req.Category, *req.CostPrice)
	if err != nil {
		c.respondRepoError(ctx, err, "erro ao atualizar produto")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// AddStock adiciona unidades ao estoque de um produto
// @Summary Entrada de estoque
// @Description Adiciona unidades ao estoque de um produto
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param stock body dto.StockRequest true "Quantidade a adicionar"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/stock [post]
func (c *ProductController) AddStock(ctx *gin.Context) {
	var req dto.StockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.productRepo.AddStock(ctx, ctx.Param("id"), req.Quantity)
	if err != nil {
		c.respondRepoError(ctx, err, "erro ao adicionar estoque")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete remove um produto do catálogo
// @Summary Remover produto
// @Description Remove um produto do catálogo; vendas antigas seguem íntegras porque guardam cópia do produto
// @Tags products
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.productRepo.Delete(ctx, ctx.Param("id")); err != nil {
		c.respondRepoError(ctx, err, "erro ao remover produto")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto removido", nil))
}

// respondRepoError mapeia erros do domínio e do repositório para HTTP
func (c *ProductController) respondRepoError(ctx *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
	case errors.Is(err, productdomain.ErrEmptyName),
		errors.Is(err, productdomain.ErrNegativeCostPrice),
		errors.Is(err, productdomain.ErrInvalidCategory),
		errors.Is(err, productdomain.ErrInvalidStockDelta):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, msg, err.Error()))
	default:
		c.logger.Error(msg, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, msg, err.Error()))
	}
}

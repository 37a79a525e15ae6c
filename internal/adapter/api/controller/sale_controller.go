package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-repuestos/internal/adapter/api/dto"
	saledomain "github.com/hugohenrick/pos-repuestos/internal/domain/sale"
	"github.com/hugohenrick/pos-repuestos/internal/service"
	"github.com/hugohenrick/pos-repuestos/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	recorder  *service.TransactionRecorder
	saleRepo  saledomain.Repository
	summaries *service.SummaryService
	logger    logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(recorder *service.TransactionRecorder, saleRepo saledomain.Repository, summaries *service.SummaryService, logger logger.Logger) *SaleController {
	return &SaleController{
		recorder:  recorder,
		saleRepo:  saleRepo,
		summaries: summaries,
		logger:    logger,
	}
}

// Create registra uma venda fechada no caixa
// @Summary Registrar venda
// @Description Registra a venda, baixa o estoque de cada item de catálogo e acrescenta a venda ao log
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := c.recorder.RecordSale(ctx, req.ToCartItems(), req.ToExternalProducts(), req.ToMechanicLabor(), req.TotalAmount, req.TotalCost, req.Profit)
	if err != nil {
		if isSaleValidationError(err) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar venda", err.Error()))
			return
		}
		c.logger.Error("erro ao registrar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// List retorna todas as vendas registradas
// @Summary Listar vendas
// @Description Retorna o log completo de vendas, na ordem de registro
// @Tags sales
// @Produce json
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	sales, err := c.saleRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}

// ListToday retorna as vendas do dia corrente
// @Summary Listar vendas de hoje
// @Description Retorna as vendas cuja data cai no dia de hoje, no fuso configurado
// @Tags sales
// @Produce json
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/today [get]
func (c *SaleController) ListToday(ctx *gin.Context) {
	sales, err := c.saleRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	today := c.summaries.Today()
	todays := make([]*saledomain.Sale, 0)
	for _, s := range sales {
		if c.summaries.DayOf(s.Date) == today {
			todays = append(todays, s)
		}
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(todays))
}

func isSaleValidationError(err error) bool {
	return errors.Is(err, saledomain.ErrEmptySale) ||
		errors.Is(err, saledomain.ErrInvalidItemQuantity) ||
		errors.Is(err, saledomain.ErrNegativeSalePrice) ||
		errors.Is(err, saledomain.ErrEmptyMechanicName) ||
		errors.Is(err, saledomain.ErrNegativeLaborAmount) ||
		errors.Is(err, saledomain.ErrEmptyExternalName)
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-repuestos/internal/adapter/api/dto"
	expensedomain "github.com/hugohenrick/pos-repuestos/internal/domain/expense"
	"github.com/hugohenrick/pos-repuestos/internal/service"
	"github.com/hugohenrick/pos-repuestos/pkg/logger"
)

// ExpenseController gerencia as requisições relacionadas a despesas
type ExpenseController struct {
	recorder    *service.TransactionRecorder
	expenseRepo expensedomain.Repository
	summaries   *service.SummaryService
	logger      logger.Logger
}

// NewExpenseController cria uma nova instância de ExpenseController
func NewExpenseController(recorder *service.TransactionRecorder, expenseRepo expensedomain.Repository, summaries *service.SummaryService, logger logger.Logger) *ExpenseController {
	return &ExpenseController{
		recorder:    recorder,
		expenseRepo: expenseRepo,
		summaries:   summaries,
		logger:      logger,
	}
}

// Create registra uma nova despesa
// @Summary Registrar despesa
// @Description Registra uma despesa no log; nenhum efeito sobre o catálogo
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	e, err := c.recorder.RecordExpense(ctx, req.Concept, *req.Amount)
	if err != nil {
		if errors.Is(err, expensedomain.ErrEmptyConcept) || errors.Is(err, expensedomain.ErrNegativeAmount) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar despesa", err.Error()))
			return
		}
		c.logger.Error("erro ao registrar despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(e))
}

// List retorna todas as despesas registradas
// @Summary Listar despesas
// @Description Retorna o log completo de despesas, na ordem de registro
// @Tags expenses
// @Produce json
// @Success 200 {object} dto.ExpenseListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [get]
func (c *ExpenseController) List(ctx *gin.Context) {
	expenses, err := c.expenseRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar despesas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar despesas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// ListToday retorna as despesas do dia corrente
// @Summary Listar despesas de hoje
// @Description Retorna as despesas cuja data cai no dia de hoje, no fuso configurado
// @Tags expenses
// @Produce json
// @Success 200 {object} dto.ExpenseListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/today [get]
func (c *ExpenseController) ListToday(ctx *gin.Context) {
	expenses, err := c.expenseRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar despesas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar despesas", err.Error()))
		return
	}

	today := c.summaries.Today()
	todays := make([]*expensedomain.Expense, 0)
	for _, e := range expenses {
		if c.summaries.DayOf(e.Date) == today {
			todays = append(todays, e)
		}
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(todays))
}

package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-repuestos/internal/adapter/api/dto"
	summarydomain "github.com/hugohenrick/pos-repuestos/internal/domain/summary"
	"github.com/hugohenrick/pos-repuestos/internal/service"
	"github.com/hugohenrick/pos-repuestos/pkg/logger"
)

// SummaryController gerencia as requisições de resumos financeiros
type SummaryController struct {
	summaries *service.SummaryService
	logger    logger.Logger
}

// NewSummaryController cria uma nova instância de SummaryController
func NewSummaryController(summaries *service.SummaryService, logger logger.Logger) *SummaryController {
	return &SummaryController{
		summaries: summaries,
		logger:    logger,
	}
}

// Daily retorna o resumo financeiro de uma data
// @Summary Resumo diário
// @Description Retorna o resumo da data; se o dia já foi fechado, responde o retrato congelado
// @Tags summaries
// @Produce json
// @Param date path string true "Data no formato AAAA-MM-DD"
// @Success 200 {object} dto.DailySummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /summaries/daily/{date} [get]
func (c *SummaryController) Daily(ctx *gin.Context) {
	d, err := c.summaries.Daily(ctx, ctx.Param("date"))
	if err != nil {
		c.respondSummaryError(ctx, err, "erro ao gerar resumo diário")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySummaryResponse(d))
}

// CloseDaily fecha o dia e congela seu resumo
// @Summary Fechar o dia
// @Description Fecha o dia: o resumo é congelado e passa a responder por aquela data; não há reabertura
// @Tags summaries
// @Produce json
// @Param date path string true "Data no formato AAAA-MM-DD"
// @Success 200 {object} dto.DailySummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /summaries/daily/{date}/close [post]
func (c *SummaryController) CloseDaily(ctx *gin.Context) {
	d, err := c.summaries.CloseDaily(ctx, ctx.Param("date"))
	if err != nil {
		c.respondSummaryError(ctx, err, "erro ao fechar o dia")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySummaryResponse(d))
}

// ListClosed retorna todos os dias fechados
// @Summary Listar dias fechados
// @Description Retorna os retratos de todos os dias já fechados
// @Tags summaries
// @Produce json
// @Success 200 {object} dto.DailySummaryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /summaries/daily [get]
func (c *SummaryController) ListClosed(ctx *gin.Context) {
	summaries, err := c.summaries.ClosedDays(ctx)
	if err != nil {
		c.logger.Error("erro ao listar dias fechados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar dias fechados", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySummaryListResponse(summaries))
}

// Monthly retorna o resumo financeiro de um mês
// @Summary Resumo mensal
// @Description Retorna o resumo do mês, sempre recalculado a partir dos logs
// @Tags summaries
// @Produce json
// @Param year query int true "Ano (AAAA)"
// @Param month query int true "Mês (1 a 12)"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /summaries/monthly [get]
func (c *SummaryController) Monthly(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ano inválido", ctx.Query("year")))
		return
	}

	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "mês inválido", ctx.Query("month")))
		return
	}

	// O motor de agregação trabalha com índice de mês base zero
	m, err := c.summaries.Monthly(ctx, year, month-1)
	if err != nil {
		c.respondSummaryError(ctx, err, "erro ao gerar resumo mensal")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(m))
}

func (c *SummaryController) respondSummaryError(ctx *gin.Context, err error, msg string) {
	if errors.Is(err, summarydomain.ErrInvalidDate) || errors.Is(err, summarydomain.ErrInvalidMonth) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, msg, err.Error()))
		return
	}
	c.logger.Error(msg, "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, msg, err.Error()))
}

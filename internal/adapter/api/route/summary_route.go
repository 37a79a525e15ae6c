package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-repuestos/internal/adapter/api/controller"
)

// RegisterSummaryRoutes registra as rotas de resumos financeiros
func RegisterSummaryRoutes(r *gin.RouterGroup, summaryController *controller.SummaryController) {
	summaries := r.Group("/summaries")
	{
		summaries.GET("/daily", summaryController.ListClosed)
		summaries.GET("/daily/:date", summaryController.Daily)
		summaries.POST("/daily/:date/close", summaryController.CloseDaily)
		summaries.GET("/monthly", summaryController.Monthly)
	}
}

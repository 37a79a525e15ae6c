package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-repuestos/internal/adapter/api/controller"
)

// RegisterExpenseRoutes registra as rotas do módulo de despesas
func RegisterExpenseRoutes(r *gin.RouterGroup, expenseController *controller.ExpenseController) {
	expenses := r.Group("/expenses")
	{
		expenses.POST("", expenseController.Create)
		expenses.GET("", expenseController.List)
		expenses.GET("/today", expenseController.ListToday)
	}
}

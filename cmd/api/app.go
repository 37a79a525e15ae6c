package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-repuestos/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-repuestos/internal/adapter/api/route"
	"github.com/hugohenrick/pos-repuestos/internal/adapter/repository"
	"github.com/hugohenrick/pos-repuestos/internal/infrastructure/database"
	"github.com/hugohenrick/pos-repuestos/internal/service"
	"github.com/hugohenrick/pos-repuestos/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	store  *database.BoltStore
	logger logger.Logger
	port   string
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	// Configurar logger
	l, err := logger.NewLogger(getEnv("LOG_MODE", "development"))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar logger: %w", err)
	}

	// Abrir o banco de dados embutido
	store, err := database.NewBoltStore(database.NewBoltConfigFromEnv())
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir banco de dados: %w", err)
	}

	// Fuso horário do recorte de dia dos resumos
	location := time.Local
	if tz := os.Getenv("POS_TIMEZONE"); tz != "" {
		location, err = time.LoadLocation(tz)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("fuso horário inválido %q: %w", tz, err)
		}
	}

	// Criar repositórios
	productRepo := repository.NewProductRepository(store)
	saleRepo := repository.NewSaleRepository(store)
	expenseRepo := repository.NewExpenseRepository(store)
	summaryRepo := repository.NewSummaryRepository(store)

	// Criar serviços
	recorder := service.NewTransactionRecorder(productRepo, saleRepo, expenseRepo, l)
	summaries := service.NewSummaryService(saleRepo, expenseRepo, summaryRepo, location, l)

	// Criar controllers
	productController := controller.NewProductController(productRepo, l)
	saleController := controller.NewSaleController(recorder, saleRepo, summaries, l)
	expenseController := controller.NewExpenseController(recorder, expenseRepo, summaries, l)
	summaryController := controller.NewSummaryController(summaries, l)

	// Configurar router
	gin.SetMode(getEnv("GIN_MODE", gin.DebugMode))
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// CORS liberado para a interface local
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Rotas da API
	api := router.Group("/api/v1")
	route.RegisterProductRoutes(api, productController)
	route.RegisterSaleRoutes(api, saleController)
	route.RegisterExpenseRoutes(api, expenseController)
	route.RegisterSummaryRoutes(api, summaryController)

	return &App{
		router: router,
		store:  store,
		logger: l,
		port:   getEnv("PORT", "8080"),
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	a.logger.Info("servidor iniciado", "port", a.port)
	return a.router.Run(":" + a.port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.store != nil {
		a.store.Close()
	}
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

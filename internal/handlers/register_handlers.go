package handlers

import (
	"net/http"

	"github.com/SscSPs/money_tracker/cmd/docs"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/SscSPs/money_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Every API route requires a bearer token issued by the identity provider.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	RegisterAPIRoutes(v1, services)

	setupSwaggerRoutes(r, cfg)
}

// RegisterAPIRoutes mounts the resource routes on an already authenticated group.
func RegisterAPIRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerBankAccountRoutes(rg, services.BankAccount)
	registerCounterpartyRoutes(rg, "/source-of-incomes", domain.KindIncome, "source of income", services.Counterparty)
	registerCounterpartyRoutes(rg, "/categories", domain.KindExpense, "category", services.Counterparty)
	registerTransactionRoutes(rg, "/incomes", "mark-as-received", domain.KindIncome, "income", services.Transaction)
	registerTransactionRoutes(rg, "/expenses", "mark-as-paid", domain.KindExpense, "expense", services.Transaction)
	registerLedgerRoutes(rg, services.Ledger)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

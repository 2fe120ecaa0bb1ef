package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler serves incomes or expenses depending on kind.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	kind               domain.TransactionKind
	noun               string
}

// registerTransactionRoutes mounts CRUD plus the settlement action (mark-as-received / mark-as-paid).
func registerTransactionRoutes(rg *gin.RouterGroup, path, settleAction string, kind domain.TransactionKind, noun string, svc portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: svc, kind: kind, noun: noun}

	group := rg.Group(path)
	{
		group.POST("", h.createTransaction)
		group.GET("", h.listTransactions)
		group.GET("/:id", h.getTransaction)
		group.PUT("/:id", h.updateTransaction)
		group.DELETE("/:id", h.deleteTransaction)
		group.POST("/:id/"+settleAction, h.settleTransaction)
	}
}

// createTransaction godoc
// @Summary Create an income or an expense
// @Description Creates a single record, or every occurrence of a recurring series up to its until date.
// @Description The response carries the earliest generated record and the number generated.
// @Tags incomes, expenses
// @Accept  json
// @Produce  json
// @Param   body body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CreateTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bank account, source or category not found"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /incomes [post]
// @Router /expenses [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create "+h.noun, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, h.kind, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create "+h.noun)
		return
	}
	if len(created) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create " + h.noun})
		return
	}

	logger.Info(h.noun+" created", slog.String("transaction_id", created[0].TransactionID), slog.Int("generated", len(created)))
	c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction:    dto.ToTransactionResponse(&created[0]),
		GeneratedCount: len(created),
	})
}

// listTransactions godoc
// @Summary List incomes or expenses
// @Description Newest first by effective date, paginated with an opaque nextToken.
// @Tags incomes, expenses
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   bankAccountID query string false "Filter by bank account"
// @Param   counterpartyID query string false "Filter by source or category"
// @Param   settled query bool false "Filter by settlement state"
// @Param   search query string false "Case-insensitive match on remarks"
// @Param   recurring query bool false "true for series members only, false for one-offs only"
// @Param   from query string false "Earliest effective date (YYYY-MM-DD)"
// @Param   to query string false "Latest effective date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /incomes [get]
// @Router /expenses [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for list "+h.noun, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), userID, h.kind, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list "+h.noun+"s")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get an income or an expense
// @Tags incomes, expenses
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /incomes/{id} [get]
// @Router /expenses/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), userID, h.kind, c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve "+h.noun)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a pending income or expense
// @Description Settled records cannot be edited. With applyToFuture the edit also reaches later pending records of the same series; a new effective date only applies to the addressed record.
// @Tags incomes, expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   body body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Already settled"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /incomes/{id} [put]
// @Router /expenses/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update "+h.noun, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, h.kind, c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update "+h.noun)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a pending income or expense
// @Tags incomes, expenses
// @Param   id path string true "Transaction ID"
// @Param   applyToFuture query bool false "Also delete later pending records of the same series"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Already settled"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /incomes/{id} [delete]
// @Router /expenses/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.DeleteTransactionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, h.kind, c.Param("id"), params.ApplyToFuture); err != nil {
		respondWithError(c, logger, err, "Failed to delete "+h.noun)
		return
	}
	c.Status(http.StatusNoContent)
}

// settleTransaction godoc
// @Summary Mark an income as received or an expense as paid
// @Description Applies the amount to the bank account balance exactly once. Repeating the call returns the record unchanged.
// @Tags incomes, expenses
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   body body dto.SettleTransactionRequest false "Optional settlement date, defaults to today"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /incomes/{id}/mark-as-received [post]
// @Router /expenses/{id}/mark-as-paid [post]
func (h *transactionHandler) settleTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.SettleTransactionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for settle "+h.noun, slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	txn, err := h.transactionService.SettleTransaction(c.Request.Context(), userID, h.kind, c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to settle "+h.noun)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

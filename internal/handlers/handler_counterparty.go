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

// counterpartyHandler serves both sources of income and expense categories; kind picks which.
type counterpartyHandler struct {
	counterpartyService portssvc.CounterpartySvcFacade
	kind                domain.TransactionKind
	noun                string
}

func registerCounterpartyRoutes(rg *gin.RouterGroup, path string, kind domain.TransactionKind, noun string, svc portssvc.CounterpartySvcFacade) {
	h := &counterpartyHandler{counterpartyService: svc, kind: kind, noun: noun}

	group := rg.Group(path)
	{
		group.POST("", h.createCounterparty)
		group.GET("", h.listCounterparties)
		group.GET("/:id", h.getCounterparty)
		group.PUT("/:id", h.updateCounterparty)
		group.DELETE("/:id", h.deleteCounterparty)
	}
}

// createCounterparty godoc
// @Summary Create a source of income or an expense category
// @Tags source-of-incomes, categories
// @Accept  json
// @Produce  json
// @Param   body body dto.CreateCounterpartyRequest true "Name and description"
// @Success 201 {object} dto.CounterpartyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Name already in use"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /source-of-incomes [post]
// @Router /categories [post]
func (h *counterpartyHandler) createCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create "+h.noun, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cp, err := h.counterpartyService.CreateCounterparty(c.Request.Context(), userID, h.kind, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create "+h.noun)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCounterpartyResponse(cp))
}

// listCounterparties godoc
// @Summary List sources of income or expense categories
// @Tags source-of-incomes, categories
// @Produce  json
// @Success 200 {array} dto.CounterpartyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /source-of-incomes [get]
// @Router /categories [get]
func (h *counterpartyHandler) listCounterparties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	cps, err := h.counterpartyService.ListCounterparties(c.Request.Context(), userID, h.kind)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list "+h.noun+"s")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCounterpartyResponse(cps))
}

// getCounterparty godoc
// @Summary Get a source of income or an expense category
// @Tags source-of-incomes, categories
// @Produce  json
// @Param   id path string true "ID"
// @Success 200 {object} dto.CounterpartyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /source-of-incomes/{id} [get]
// @Router /categories/{id} [get]
func (h *counterpartyHandler) getCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	cp, err := h.counterpartyService.GetCounterparty(c.Request.Context(), userID, h.kind, c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve "+h.noun)
		return
	}
	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(cp))
}

// updateCounterparty godoc
// @Summary Rename or re-describe a source of income or an expense category
// @Tags source-of-incomes, categories
// @Accept  json
// @Produce  json
// @Param   id path string true "ID"
// @Param   body body dto.UpdateCounterpartyRequest true "Fields to change"
// @Success 200 {object} dto.CounterpartyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Name already in use"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /source-of-incomes/{id} [put]
// @Router /categories/{id} [put]
func (h *counterpartyHandler) updateCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update "+h.noun, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cp, err := h.counterpartyService.UpdateCounterparty(c.Request.Context(), userID, h.kind, c.Param("id"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update "+h.noun)
		return
	}
	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(cp))
}

// deleteCounterparty godoc
// @Summary Delete a source of income or an expense category
// @Description Refused with 422 while incomes or expenses still reference it.
// @Tags source-of-incomes, categories
// @Param   id path string true "ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 422 {object} map[string]string "Still in use"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /source-of-incomes/{id} [delete]
// @Router /categories/{id} [delete]
func (h *counterpartyHandler) deleteCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.counterpartyService.DeleteCounterparty(c.Request.Context(), userID, h.kind, c.Param("id")); err != nil {
		respondWithError(c, logger, err, "Failed to delete "+h.noun)
		return
	}
	c.Status(http.StatusNoContent)
}

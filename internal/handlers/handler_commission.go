package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarrafhub/exchange_backend/internal/apperrors"
	portssvc "github.com/sarrafhub/exchange_backend/internal/core/ports/services"
	"github.com/sarrafhub/exchange_backend/internal/dto"
	"github.com/sarrafhub/exchange_backend/internal/middleware"
)

// commissionHandler handles HTTP requests for office commission rules.
// All routes act on the authenticated office's own rules; an office can never
// see or touch another office's configuration.
type commissionHandler struct {
	commissionService portssvc.CommissionSvcFacade
}

// newCommissionHandler creates a new commissionHandler.
func newCommissionHandler(cs portssvc.CommissionSvcFacade) *commissionHandler {
	return &commissionHandler{commissionService: cs}
}

// registerCommissionRoutes registers routes related to office commission rules.
func registerCommissionRoutes(rg *gin.RouterGroup, commissionService portssvc.CommissionSvcFacade) {
	h := newCommissionHandler(commissionService)

	rules := rg.Group("/office-commissions")
	{
		rules.GET("", h.listRules)
		rules.POST("", h.upsertRule)
		rules.DELETE("/:ruleID", h.deleteRule)
	}
}

// listRules godoc
// @Summary List the authenticated office's commission rules
// @Description Retrieves all per-city commission rules configured by the calling office
// @Tags office-commissions
// @Produce json
// @Success 200 {array} dto.CommissionRuleResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /office-commissions [get]
func (h *commissionHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	officeID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rules, err := h.commissionService.ListOfficeRules(c.Request.Context(), officeID)
	if err != nil {
		logger.Error("Failed to list commission rules from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list commission rules"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCommissionRuleResponse(rules))
}

// upsertRule godoc
// @Summary Create or replace a commission rule
// @Description Sets the office's commission rate for a destination city; a second save for the same city replaces the stored rate
// @Tags office-commissions
// @Accept json
// @Produce json
// @Param rule body dto.UpsertCommissionRuleRequest true "City and rate"
// @Success 200 {object} dto.CommissionRuleResponse
// @Failure 400 {object} ErrorResponse "Rate outside [0, 10] or city too short"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /office-commissions [post]
func (h *commissionHandler) upsertRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	officeID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpsertCommissionRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for commission rule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	rule, err := h.commissionService.UpsertOfficeRule(c.Request.Context(), officeID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error saving commission rule", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to save commission rule in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save commission rule"})
		return
	}

	logger.Info("Commission rule saved", slog.String("rule_id", rule.RuleID), slog.String("city", rule.City))
	c.JSON(http.StatusOK, dto.ToCommissionRuleResponse(rule))
}

// deleteRule godoc
// @Summary Delete a commission rule
// @Description Removes a commission rule; deleting an already-absent rule also succeeds
// @Tags office-commissions
// @Produce json
// @Param ruleID path string true "Rule ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /office-commissions/{ruleID} [delete]
func (h *commissionHandler) deleteRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	officeID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ruleID := c.Param("ruleID")

	if err := h.commissionService.DeleteOfficeRule(c.Request.Context(), officeID, ruleID); err != nil {
		logger.Error("Failed to delete commission rule in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete commission rule"})
		return
	}

	c.Status(http.StatusNoContent)
}

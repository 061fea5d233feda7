package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sarrafhub/exchange_backend/internal/apperrors"
	portssvc "github.com/sarrafhub/exchange_backend/internal/core/ports/services"
	"github.com/sarrafhub/exchange_backend/internal/dto"
	"github.com/sarrafhub/exchange_backend/internal/middleware"
)

// receiptHandler handles HTTP requests for market transactions and their
// printable receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

// newReceiptHandler creates a new receiptHandler.
func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// registerMarketTransactionRoutes registers authenticated market transaction routes.
func registerMarketTransactionRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	txs := rg.Group("/market-transactions")
	{
		txs.POST("", h.createMarketTransaction)
		txs.GET("/:transactionID", h.getMarketTransaction)
		txs.GET("/:transactionID/receipt", h.getReceipt)
	}
}

// registerVerificationRoutes registers the public receipt verification route.
// It is intentionally outside the authenticated group: the QR code on a paper
// receipt must work on any phone.
func registerVerificationRoutes(r *gin.Engine, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)
	r.GET("/verify/market/:transactionID", h.verifyMarketTransaction)
}

func parseTransactionID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("transactionID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Transaction ID must be a positive integer"})
		return 0, false
	}
	return id, true
}

// createMarketTransaction godoc
// @Summary Record a completed marketplace trade
// @Description Persists a settled trade and returns it with its assigned transaction ID
// @Tags market-transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateMarketTransactionRequest true "Trade details"
// @Success 201 {object} dto.MarketTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /market-transactions [post]
func (h *receiptHandler) createMarketTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMarketTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for market transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	tx, err := h.receiptService.RecordMarketTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to record market transaction in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record market transaction"})
		return
	}

	logger.Info("Market transaction recorded", slog.Int64("transaction_id", tx.TransactionID))
	c.JSON(http.StatusCreated, dto.ToMarketTransactionResponse(tx))
}

// getMarketTransaction godoc
// @Summary Get a market transaction by ID
// @Description Retrieves a settled trade
// @Tags market-transactions
// @Produce json
// @Param transactionID path int true "Transaction ID"
// @Success 200 {object} dto.MarketTransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /market-transactions/{transactionID} [get]
func (h *receiptHandler) getMarketTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseTransactionID(c)
	if !ok {
		return
	}

	tx, err := h.receiptService.GetMarketTransactionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		logger.Error("Failed to get market transaction from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMarketTransactionResponse(tx))
}

// getReceipt godoc
// @Summary Get the printable receipt for a trade
// @Description Returns the receipt as a thermal-printer-sized PNG, or as JSON when format=json is given
// @Tags market-transactions
// @Produce png
// @Produce json
// @Param transactionID path int true "Transaction ID"
// @Param format query string false "Response format: png (default) or json"
// @Success 200 {file} binary "PNG image"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Rendering failed"
// @Security BearerAuth
// @Router /market-transactions/{transactionID}/receipt [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseTransactionID(c)
	if !ok {
		return
	}

	if c.Query("format") == "json" {
		receipt, err := h.receiptService.PrepareMarketReceipt(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
				return
			}
			logger.Error("Failed to prepare receipt", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to prepare receipt"})
			return
		}
		c.JSON(http.StatusOK, receipt)
		return
	}

	img, err := h.receiptService.RenderMarketReceipt(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		if errors.Is(err, apperrors.ErrRender) {
			logger.Error("Receipt rendering failed", slog.Int64("transaction_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render receipt"})
			return
		}
		logger.Error("Failed to produce receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to produce receipt"})
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}

// verifyMarketTransaction godoc
// @Summary Verify a printed receipt
// @Description Recomputes the verification hash for a trade so the hash printed on a receipt can be checked
// @Tags verification
// @Produce json
// @Param transactionID path int true "Transaction ID"
// @Success 200 {object} dto.VerificationResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse
// @Router /verify/market/{transactionID} [get]
func (h *receiptHandler) verifyMarketTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseTransactionID(c)
	if !ok {
		return
	}

	result, err := h.receiptService.VerifyMarketTransaction(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		logger.Error("Failed to verify market transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to verify transaction"})
		return
	}

	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/procurement_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_app/internal/dto"
	"github.com/SscSPs/procurement_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to procurement transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	aggregateService   portssvc.AggregateSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, as portssvc.AggregateSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		aggregateService:   as,
	}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg gin.IRouter, transactionService portssvc.TransactionSvcFacade, aggregateService portssvc.AggregateSvcFacade) {
	registerValidators()
	h := newTransactionHandler(transactionService, aggregateService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/total_spent", h.totalSpent)
		transactions.GET("/:id", h.getTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Stores a procurement transaction and returns it with its assigned id.
// @Description Dates are optional RFC 3339 timestamps and are echoed with their original offset.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input or malformed date"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves every transaction in id order
// @Tags transactions
// @Produce  json
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transactions, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list transactions")
		return
	}

	logger.Debug("Transactions listed", slog.Int("count", len(transactions)))
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(transactions))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Retrieves a transaction by id
// @Tags transactions
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to get transaction"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, logger)
	if !ok {
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int64("transaction_id", id)), err, "get transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// totalSpent godoc
// @Summary Total spent
// @Description Returns the sum of TransactionValueNOK over all transactions, 0 when there are none
// @Tags transactions
// @Produce  json
// @Success 200 {number} float64
// @Failure 500 {object} map[string]string "Failed to compute total spent"
// @Router /transactions/total_spent [get]
func (h *transactionHandler) totalSpent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	total, err := h.aggregateService.TotalSpent(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "compute total spent")
		return
	}

	c.JSON(http.StatusOK, total)
}

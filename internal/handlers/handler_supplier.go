package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/procurement_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_app/internal/dto"
	"github.com/SscSPs/procurement_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// supplierHandler handles HTTP requests related to suppliers.
type supplierHandler struct {
	supplierService  portssvc.SupplierSvcFacade
	aggregateService portssvc.AggregateSvcFacade
}

func newSupplierHandler(ss portssvc.SupplierSvcFacade, as portssvc.AggregateSvcFacade) *supplierHandler {
	return &supplierHandler{
		supplierService:  ss,
		aggregateService: as,
	}
}

// RegisterSupplierRoutes registers routes related to suppliers.
func RegisterSupplierRoutes(rg gin.IRouter, supplierService portssvc.SupplierSvcFacade, aggregateService portssvc.AggregateSvcFacade) {
	h := newSupplierHandler(supplierService, aggregateService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/total_suppliers", h.totalSuppliers)
		suppliers.GET("/:id", h.getSupplier)
	}
}

// createSupplier godoc
// @Summary Create a supplier
// @Description Stores a supplier and returns it with its assigned id
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create supplier"
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create supplier")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Description Retrieves every supplier in id order
// @Tags suppliers
// @Produce  json
// @Success 200 {array} dto.SupplierResponse
// @Failure 500 {object} map[string]string "Failed to list suppliers"
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list suppliers")
		return
	}

	logger.Debug("Suppliers listed", slog.Int("count", len(suppliers)))
	c.JSON(http.StatusOK, dto.ToListSupplierResponse(suppliers))
}

// getSupplier godoc
// @Summary Get a supplier
// @Description Retrieves a supplier by id
// @Tags suppliers
// @Produce  json
// @Param   id path int true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to get supplier"
// @Router /suppliers/{id} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, logger)
	if !ok {
		return
	}

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int64("supplier_id", id)), err, "get supplier")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// totalSuppliers godoc
// @Summary Count suppliers
// @Description Returns the number of stored suppliers
// @Tags suppliers
// @Produce  json
// @Success 200 {integer} int64
// @Failure 500 {object} map[string]string "Failed to count suppliers"
// @Router /suppliers/total_suppliers [get]
func (h *supplierHandler) totalSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	count, err := h.aggregateService.TotalSuppliers(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "count suppliers")
		return
	}

	c.JSON(http.StatusOK, count)
}

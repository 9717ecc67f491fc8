package handlers

import (
	"net/http"

	"moto-backoffice/internal/services"
	"moto-backoffice/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// PartHandler holds the service dependency for inventory operations
type PartHandler struct {
	service   services.PartService
	validator *validator.Validate
}

// NewPartHandler creates a new PartHandler
func NewPartHandler(service services.PartService, validate *validator.Validate) *PartHandler {
	return &PartHandler{service: service, validator: validate}
}

// ListParts godoc
// @Summary      List inventory parts
// @Description  Returns the stock list as a filtered, sorted table view.
// @Tags         inventory
// @Produce      json
// @Param        search query string false "Free-text search"
// @Success      200 {array} object
// @Failure      500 {object} map[string]string
// @Router       /inventory [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	parts, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "parts")
		return
	}
	respondListView(c, "inventory", parts)
}

// GetPartByID godoc
// @Summary      Get an inventory part
// @Tags         inventory
// @Produce      json
// @Param        id path int true "Part ID"
// @Success      200 {object} models.Part
// @Failure      404 {object} map[string]string
// @Router       /inventory/{id} [get]
func (h *PartHandler) GetPartByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	part, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "part")
		return
	}
	c.JSON(http.StatusOK, part)
}

// GetPartByBarcode godoc
// @Summary      Look up a part by barcode
// @Description  Exact barcode match, used by the scanner at the counter.
// @Tags         inventory
// @Produce      json
// @Param        barcode path string true "Barcode"
// @Success      200 {object} models.Part
// @Failure      404 {object} map[string]string
// @Router       /inventory/barcode/{barcode} [get]
func (h *PartHandler) GetPartByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Barcode required"})
		return
	}
	part, err := h.service.GetByBarcode(c.Request.Context(), barcode)
	if err != nil {
		respondServiceError(c, err, "part")
		return
	}
	c.JSON(http.StatusOK, part)
}

// CreatePart godoc
// @Summary      Add an inventory part
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        part body dto.CreatePartRequest true "Part to add"
// @Success      201 {object} models.Part
// @Failure      400 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /inventory [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	var req dto.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "part")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePart godoc
// @Summary      Update an inventory part
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path int true "Part ID"
// @Param        part body dto.UpdatePartRequest true "Updated part"
// @Success      200 {object} models.Part
// @Failure      404 {object} map[string]string
// @Router       /inventory/{id} [put]
func (h *PartHandler) UpdatePart(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "part")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AdjustPartStock godoc
// @Summary      Adjust stock
// @Description  Applies a relative stock change, positive for receipts and negative for withdrawals.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path int true "Part ID"
// @Param        adjustment body dto.AdjustStockRequest true "Stock delta"
// @Success      200 {object} models.Part
// @Failure      404 {object} map[string]string
// @Router       /inventory/{id}/stock [patch]
func (h *PartHandler) AdjustPartStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	updated, err := h.service.AdjustStock(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "part")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePart godoc
// @Summary      Delete an inventory part
// @Tags         inventory
// @Param        id path int true "Part ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /inventory/{id} [delete]
func (h *PartHandler) DeletePart(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "part")
		return
	}
	c.Status(http.StatusNoContent)
}

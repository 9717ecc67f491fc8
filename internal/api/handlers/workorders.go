package handlers

import (
	"net/http"

	"moto-backoffice/internal/services"
	"moto-backoffice/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// WorkOrderHandler holds the service dependency for work order operations
type WorkOrderHandler struct {
	service   services.WorkOrderService
	validator *validator.Validate
}

// NewWorkOrderHandler creates a new WorkOrderHandler
func NewWorkOrderHandler(service services.WorkOrderService, validate *validator.Validate) *WorkOrderHandler {
	return &WorkOrderHandler{service: service, validator: validate}
}

// ListWorkOrders godoc
// @Summary      List work orders
// @Description  Returns the work order overview as a filtered, sorted table view. Deleted orders are included and carry the deleted status; use the category filter to narrow by status.
// @Tags         work-orders
// @Produce      json
// @Param        search   query string false "Free-text search"
// @Param        category query string false "Status filter (open, finished, paid, deleted)"
// @Param        sort     query string false "Sort key"
// @Param        dir      query string false "Sort direction (asc or desc)"
// @Param        display  query bool   false "Return per-field display values instead of raw records"
// @Success      200 {array} object
// @Failure      500 {object} map[string]string
// @Router       /work-orders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	orders, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "work orders")
		return
	}
	respondListView(c, "work-orders", orders)
}

// GetWorkOrderByID godoc
// @Summary      Get a work order
// @Description  Returns the header with every line rehydrated to its fully derived amounts.
// @Tags         work-orders
// @Produce      json
// @Param        id path int true "Work order ID"
// @Success      200 {object} models.WorkOrder
// @Failure      404 {object} map[string]string
// @Router       /work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "work order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// SaveWorkOrder godoc
// @Summary      Create or update a work order
// @Description  Validates the order, recomputes all derived amounts server side, and replaces the full line set atomically. A zero ID creates a new order.
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        order body dto.SaveWorkOrderRequest true "Order to save"
// @Success      200 {object} models.WorkOrder
// @Failure      400 {object} map[string]string
// @Router       /work-orders [post]
func (h *WorkOrderHandler) SaveWorkOrder(c *gin.Context) {
	var req dto.SaveWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "work order")
		return
	}
	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, saved)
}

// RecalculateLine godoc
// @Summary      Recalculate a single line
// @Description  Recomputes the derived amounts of one line after a single field edit, without persisting anything.
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        line body dto.RecalculateLineRequest true "Line and the edited field"
// @Success      200 {object} models.WorkOrderLine
// @Failure      400 {object} map[string]string
// @Router       /work-orders/recalculate [post]
func (h *WorkOrderHandler) RecalculateLine(c *gin.Context) {
	var req dto.RecalculateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	line, err := h.service.RecalculateLine(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "work order line")
		return
	}
	c.JSON(http.StatusOK, line)
}

// UpdateWorkOrderStatus godoc
// @Summary      Change a work order status
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id path int true "Work order ID"
// @Param        status body dto.UpdateWorkOrderStatusRequest true "New status"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /work-orders/{id}/status [patch]
func (h *WorkOrderHandler) UpdateWorkOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateWorkOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err, "work order")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteWorkOrder godoc
// @Summary      Delete a work order
// @Description  Soft delete: marks the order deleted. It stays in listings with the deleted status and remains queryable by id.
// @Tags         work-orders
// @Param        id path int true "Work order ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /work-orders/{id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "work order")
		return
	}
	c.Status(http.StatusNoContent)
}

// PrintWorkOrder godoc
// @Summary      Invoice print view
// @Description  Renders the order as an invoice with all amounts formatted as fixed two-decimal strings.
// @Tags         work-orders
// @Produce      json
// @Param        id path int true "Work order ID"
// @Success      200 {object} dto.WorkOrderPrintView
// @Failure      404 {object} map[string]string
// @Router       /work-orders/{id}/print [get]
func (h *WorkOrderHandler) PrintWorkOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	view, err := h.service.PrintView(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "work order")
		return
	}
	c.JSON(http.StatusOK, view)
}

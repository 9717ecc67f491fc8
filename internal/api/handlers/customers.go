package handlers

import (
	"net/http"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/services"
	"moto-backoffice/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CustomerHandler holds the service dependency for customer operations
type CustomerHandler struct {
	service   services.CustomerService
	validator *validator.Validate
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(service services.CustomerService, validate *validator.Validate) *CustomerHandler {
	return &CustomerHandler{service: service, validator: validate}
}

// ListCustomers godoc
// @Summary      List customers
// @Description  Returns the customer register as a filtered, sorted table view. Supports search, category, filter[field] and sort/dir parameters.
// @Tags         customers
// @Produce      json
// @Param        search query string false "Free-text search"
// @Param        sort   query string false "Sort key"
// @Param        dir    query string false "Sort direction (asc or desc)"
// @Success      200 {array} object
// @Failure      500 {object} map[string]string
// @Router       /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "customers")
		return
	}
	respondListView(c, "customers", customers)
}

// SearchCustomers godoc
// @Summary      Search customers
// @Description  Case-insensitive contains search over name, phone and email.
// @Tags         customers
// @Produce      json
// @Param        q query string false "Search term"
// @Success      200 {array} models.Customer
// @Failure      500 {object} map[string]string
// @Router       /customers/search [get]
func (h *CustomerHandler) SearchCustomers(c *gin.Context) {
	customers, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, err, "customers")
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomerByID godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id path int true "Customer ID"
// @Success      200 {object} models.Customer
// @Failure      404 {object} map[string]string
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer godoc
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer body dto.CreateCustomerRequest true "Customer to register"
// @Success      201 {object} models.Customer
// @Failure      400 {object} map[string]string
// @Router       /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
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
		respondServiceError(c, err, "customer")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCustomer godoc
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path int true "Customer ID"
// @Param        customer body dto.UpdateCustomerRequest true "Updated customer"
// @Success      200 {object} models.Customer
// @Failure      404 {object} map[string]string
// @Router       /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateCustomerRequest
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
		respondServiceError(c, err, "customer")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCustomer godoc
// @Summary      Delete a customer
// @Tags         customers
// @Param        id path int true "Customer ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "customer")
		return
	}
	c.Status(http.StatusNoContent)
}

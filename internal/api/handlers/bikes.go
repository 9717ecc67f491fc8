package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/services"
	"moto-backoffice/internal/transport/dto"
	"moto-backoffice/internal/vehicle"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BikeHandler holds the service dependencies for bike operations
type BikeHandler struct {
	service   services.BikeService
	lookup    services.VehicleLookupService
	validator *validator.Validate
}

// NewBikeHandler creates a new BikeHandler
func NewBikeHandler(service services.BikeService, lookup services.VehicleLookupService, validate *validator.Validate) *BikeHandler {
	return &BikeHandler{service: service, lookup: lookup, validator: validate}
}

// ListBikes godoc
// @Summary      List bikes
// @Description  Returns the bike register as a filtered, sorted table view.
// @Tags         bikes
// @Produce      json
// @Param        search query string false "Free-text search"
// @Param        customer_id query int false "Only bikes of this customer"
// @Success      200 {array} object
// @Failure      500 {object} map[string]string
// @Router       /bikes [get]
func (h *BikeHandler) ListBikes(c *gin.Context) {
	ctx := c.Request.Context()

	var bikes []models.Bike
	var err error
	if rawCustomer := c.Query("customer_id"); rawCustomer != "" {
		customerID, parseErr := strconv.ParseInt(rawCustomer, 10, 64)
		if parseErr != nil || customerID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id parameter"})
			return
		}
		bikes, err = h.service.GetByCustomer(ctx, customerID)
	} else {
		bikes, err = h.service.GetAll(ctx)
	}
	if err != nil {
		respondServiceError(c, err, "bikes")
		return
	}
	respondListView(c, "bikes", bikes)
}

// SearchBikes godoc
// @Summary      Search bikes
// @Description  Case-insensitive contains search over plate, VIN, make and model.
// @Tags         bikes
// @Produce      json
// @Param        q query string false "Search term"
// @Success      200 {array} models.Bike
// @Failure      500 {object} map[string]string
// @Router       /bikes/search [get]
func (h *BikeHandler) SearchBikes(c *gin.Context) {
	bikes, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, err, "bikes")
		return
	}
	if bikes == nil {
		bikes = []models.Bike{}
	}
	c.JSON(http.StatusOK, bikes)
}

// GetBikeByID godoc
// @Summary      Get a bike
// @Tags         bikes
// @Produce      json
// @Param        id path int true "Bike ID"
// @Success      200 {object} models.Bike
// @Failure      404 {object} map[string]string
// @Router       /bikes/{id} [get]
func (h *BikeHandler) GetBikeByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	bike, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "bike")
		return
	}
	c.JSON(http.StatusOK, bike)
}

// CreateBike godoc
// @Summary      Register a bike
// @Tags         bikes
// @Accept       json
// @Produce      json
// @Param        bike body dto.CreateBikeRequest true "Bike to register"
// @Success      201 {object} models.Bike
// @Failure      400 {object} map[string]string
// @Router       /bikes [post]
func (h *BikeHandler) CreateBike(c *gin.Context) {
	var req dto.CreateBikeRequest
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
		respondServiceError(c, err, "bike")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBike godoc
// @Summary      Update a bike
// @Tags         bikes
// @Accept       json
// @Produce      json
// @Param        id path int true "Bike ID"
// @Param        bike body dto.UpdateBikeRequest true "Updated bike"
// @Success      200 {object} models.Bike
// @Failure      404 {object} map[string]string
// @Router       /bikes/{id} [put]
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateBikeRequest
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
		respondServiceError(c, err, "bike")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBike godoc
// @Summary      Delete a bike
// @Tags         bikes
// @Param        id path int true "Bike ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /bikes/{id} [delete]
func (h *BikeHandler) DeleteBike(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "bike")
		return
	}
	c.Status(http.StatusNoContent)
}

// LookupVehicle godoc
// @Summary      Look up a license plate
// @Description  Resolves a plate against the national vehicle registry so the bike form can be prefilled.
// @Tags         bikes
// @Accept       json
// @Produce      json
// @Param        plate body dto.LookupVehicleRequest true "Plate to look up"
// @Success      200 {object} dto.VehicleInfo
// @Failure      404 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /bikes/lookup [post]
func (h *BikeHandler) LookupVehicle(c *gin.Context) {
	var req dto.LookupVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	info, err := h.lookup.Lookup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No vehicle registered for plate"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Vehicle registry unavailable"})
		return
	}
	c.JSON(http.StatusOK, info)
}

package handlers

import (
	"net/http"

	"moto-backoffice/internal/services"
	"moto-backoffice/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// TodoHandler holds the service dependency for the to-do tracker
type TodoHandler struct {
	service   services.TodoService
	validator *validator.Validate
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(service services.TodoService, validate *validator.Validate) *TodoHandler {
	return &TodoHandler{service: service, validator: validate}
}

// ListTodos godoc
// @Summary      List tracker entries
// @Description  Returns the tracker as a filtered, sorted table view with customer and bike labels joined in.
// @Tags         todos
// @Produce      json
// @Param        search   query string false "Free-text search"
// @Param        category query string false "Status filter (todo, waiting, completed)"
// @Success      200 {array} object
// @Failure      500 {object} map[string]string
// @Router       /todos [get]
func (h *TodoHandler) ListTodos(c *gin.Context) {
	entries, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "todo entries")
		return
	}
	respondListView(c, "todos", entries)
}

// GetTodoByID godoc
// @Summary      Get a tracker entry
// @Tags         todos
// @Produce      json
// @Param        id path int true "Entry ID"
// @Success      200 {object} models.TodoEntry
// @Failure      404 {object} map[string]string
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetTodoByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	entry, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "todo entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CreateTodo godoc
// @Summary      Create a tracker entry
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        entry body dto.CreateTodoRequest true "Entry to create"
// @Success      201 {object} models.TodoEntry
// @Failure      400 {object} map[string]string
// @Router       /todos [post]
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req dto.CreateTodoRequest
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
		respondServiceError(c, err, "todo entry")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateTodo godoc
// @Summary      Update a tracker entry
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id path int true "Entry ID"
// @Param        entry body dto.UpdateTodoRequest true "Updated entry"
// @Success      200 {object} models.TodoEntry
// @Failure      404 {object} map[string]string
// @Router       /todos/{id} [put]
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
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
		respondServiceError(c, err, "todo entry")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTodo godoc
// @Summary      Delete a tracker entry
// @Tags         todos
// @Param        id path int true "Entry ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /todos/{id} [delete]
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "todo entry")
		return
	}
	c.Status(http.StatusNoContent)
}

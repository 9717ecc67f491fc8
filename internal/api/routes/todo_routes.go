package routes

import (
	"moto-backoffice/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterTodoRoutes registers all routes related to the to-do tracker
func RegisterTodoRoutes(rg *gin.RouterGroup, h handlers.TodoHandlerInterface, authMiddleware gin.HandlerFunc) {
	todos := rg.Group("/todos")
	todos.Use(authMiddleware)
	{
		todos.GET("/", h.ListTodos)
		todos.GET("/:id", h.GetTodoByID)
		todos.POST("/", h.CreateTodo)
		todos.PUT("/:id", h.UpdateTodo)
		todos.DELETE("/:id", h.DeleteTodo)
	}
}

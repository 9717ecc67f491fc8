package routes

import (
	"moto-backoffice/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterWorkOrderRoutes registers all routes related to work orders
func RegisterWorkOrderRoutes(rg *gin.RouterGroup, h handlers.WorkOrderHandlerInterface, authMiddleware gin.HandlerFunc) {
	orders := rg.Group("/work-orders")
	orders.Use(authMiddleware)
	{
		orders.GET("/", h.ListWorkOrders)
		orders.GET("/:id", h.GetWorkOrderByID)
		orders.GET("/:id/print", h.PrintWorkOrder)
		orders.POST("/", h.SaveWorkOrder)
		orders.POST("/recalculate", h.RecalculateLine)
		orders.PATCH("/:id/status", h.UpdateWorkOrderStatus)
		orders.DELETE("/:id", h.DeleteWorkOrder)
	}
}

package routes

import (
	"moto-backoffice/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCustomerRoutes registers all routes related to customers
func RegisterCustomerRoutes(rg *gin.RouterGroup, h handlers.CustomerHandlerInterface, authMiddleware gin.HandlerFunc) {
	customers := rg.Group("/customers")
	customers.Use(authMiddleware)
	{
		customers.GET("/", h.ListCustomers)
		customers.GET("/search", h.SearchCustomers)
		customers.GET("/:id", h.GetCustomerByID)
		customers.POST("/", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}
}

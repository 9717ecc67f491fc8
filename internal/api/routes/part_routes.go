package routes

import (
	"moto-backoffice/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterPartRoutes registers all routes related to the parts inventory
func RegisterPartRoutes(rg *gin.RouterGroup, h handlers.PartHandlerInterface, authMiddleware gin.HandlerFunc) {
	parts := rg.Group("/inventory")
	parts.Use(authMiddleware)
	{
		parts.GET("/", h.ListParts)
		parts.GET("/:id", h.GetPartByID)
		parts.GET("/barcode/:barcode", h.GetPartByBarcode)
		parts.POST("/", h.CreatePart)
		parts.PUT("/:id", h.UpdatePart)
		parts.PATCH("/:id/stock", h.AdjustPartStock)
		parts.DELETE("/:id", h.DeletePart)
	}
}

package routes

import (
	"moto-backoffice/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBikeRoutes registers all routes related to bikes
func RegisterBikeRoutes(rg *gin.RouterGroup, h handlers.BikeHandlerInterface, authMiddleware gin.HandlerFunc) {
	bikes := rg.Group("/bikes")
	bikes.Use(authMiddleware)
	{
		bikes.GET("/", h.ListBikes)
		bikes.GET("/search", h.SearchBikes)
		bikes.GET("/:id", h.GetBikeByID)
		bikes.POST("/", h.CreateBike)
		bikes.POST("/lookup", h.LookupVehicle)
		bikes.PUT("/:id", h.UpdateBike)
		bikes.DELETE("/:id", h.DeleteBike)
	}
}

package routes

import (
	"moto-backoffice/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the account and login routes
func RegisterAuthRoutes(rg *gin.RouterGroup, h handlers.UserHandlerInterface) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

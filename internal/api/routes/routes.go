package routes

import (
	"moto-backoffice/internal/api/handlers"
	"moto-backoffice/internal/api/middleware"
	"moto-backoffice/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	apiV1 := router.Group("/api/v1")

	// Create handlers
	userHandler := handlers.NewUserHandler(app.UserService, app.Validator)
	customerHandler := handlers.NewCustomerHandler(app.CustomerService, app.Validator)
	bikeHandler := handlers.NewBikeHandler(app.BikeService, app.VehicleLookup, app.Validator)
	workOrderHandler := handlers.NewWorkOrderHandler(app.WorkOrderService, app.Validator)
	partHandler := handlers.NewPartHandler(app.PartService, app.Validator)
	todoHandler := handlers.NewTodoHandler(app.TodoService, app.Validator)

	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	RegisterAuthRoutes(apiV1, userHandler)
	RegisterCustomerRoutes(apiV1, customerHandler, authMiddleware)
	RegisterBikeRoutes(apiV1, bikeHandler, authMiddleware)
	RegisterWorkOrderRoutes(apiV1, workOrderHandler, authMiddleware)
	RegisterPartRoutes(apiV1, partHandler, authMiddleware)
	RegisterTodoRoutes(apiV1, todoHandler, authMiddleware)

	router.GET("/health", handlers.HealthCheck)

	log.Info().Msg("configuring swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

package app

import (
	"moto-backoffice/config"
	"moto-backoffice/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	CustomerService  services.CustomerService
	BikeService      services.BikeService
	WorkOrderService services.WorkOrderService
	PartService      services.PartService
	TodoService      services.TodoService
	UserService      services.UserService
	VehicleLookup    services.VehicleLookupService
}

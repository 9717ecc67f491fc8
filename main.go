package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"moto-backoffice/config"
	"moto-backoffice/internal/app"
	"moto-backoffice/internal/database"
	"moto-backoffice/internal/server"
	"moto-backoffice/internal/services"
	"moto-backoffice/internal/storage/postgres"
	"moto-backoffice/internal/vehicle"

	_ "moto-backoffice/docs" // Generated swagger docs

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Moto Back-Office API
// @version         1.0
// @description     Back-office service for a motorcycle repair shop: customers, bikes, work orders, inventory and a to-do tracker.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if err := database.EnsureSchema(context.Background(), dbPool); err != nil {
		log.Fatal().Err(err).Msg("failed to apply database schema")
	}

	customerRepo := postgres.NewCustomerRepo(dbPool)
	bikeRepo := postgres.NewBikeRepo(dbPool)
	orderRepo := postgres.NewWorkOrderRepo(dbPool)
	partRepo := postgres.NewPartRepo(dbPool)
	todoRepo := postgres.NewTodoRepo(dbPool)
	userRepo := postgres.NewUserRepo(dbPool)

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validator.New(),

		CustomerService:  services.NewCustomerService(customerRepo),
		BikeService:      services.NewBikeService(bikeRepo),
		WorkOrderService: services.NewWorkOrderService(orderRepo, customerRepo, bikeRepo),
		PartService:      services.NewPartService(partRepo),
		TodoService:      services.NewTodoService(todoRepo),
		UserService:      services.NewUserService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration),
		VehicleLookup:    vehicle.NewClient(cfg.Vegvesen.BaseURL, cfg.Vegvesen.APIKey, redisClient, cfg.Vegvesen.CacheTTL),
	}

	srv := server.NewServer(application)

	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
}

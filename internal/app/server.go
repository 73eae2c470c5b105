// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"fleet-rental-service/internal/config"
	"fleet-rental-service/internal/db"
	rentalHandler "fleet-rental-service/internal/handlers/rental"
	vehicleHandler "fleet-rental-service/internal/handlers/vehicle"
	"fleet-rental-service/internal/middleware"
	"fleet-rental-service/internal/repository/postgres"
	"fleet-rental-service/internal/repository/rediscache"
	"fleet-rental-service/internal/service/fleet"
	"fleet-rental-service/internal/usecase"

	"fleet-rental-service/internal/domain/customer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := postgres.Connect(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// ----- Repositories -----
	vehicleRepo := rediscache.NewVehicleRepository(
		postgres.NewVehicleRepository(pool),
		redisClient,
		s.cfg.VehicleCacheTTL,
		logger,
	)
	customerRepo := postgres.NewCustomerRepository(pool)
	rentalRepo := postgres.NewRentalRepository(pool)
	unitOfWork := postgres.NewUnitOfWork(pool)
	customerFactory := customer.NewDefaultFactory()

	// ----- Services -----
	rentalService := fleet.NewRentalService(vehicleRepo, customerRepo, rentalRepo, logger)

	// ----- Use cases -----
	createVehicle := usecase.NewCreateVehicle(rentalService, unitOfWork)
	listAvailable := usecase.NewListAvailableVehicles(vehicleRepo)
	rentVehicle := usecase.NewRentVehicle(customerRepo, customerFactory, rentalService, unitOfWork)
	returnVehicle := usecase.NewReturnVehicle(rentalService, vehicleRepo, unitOfWork)

	// ----- Handlers -----
	vehicleHandlerInst := vehicleHandler.NewVehicleHandler(createVehicle, listAvailable)
	rentalHandlerInst := rentalHandler.NewRentalHandler(rentVehicle, returnVehicle)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(logger),
	)

	// ----- Router -----
	handlers := &Handlers{
		VehicleHandler: vehicleHandlerInst,
		RentalHandler:  rentalHandlerInst,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}

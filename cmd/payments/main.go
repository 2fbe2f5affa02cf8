package main

import (
	"context"
	"log"
	"time"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/config"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/database"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/health"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/logger"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/middleware"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/nsq"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/retry"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/server"
	"github.com/Phuti24/Singleton-Payment-API/services/payments"
	"github.com/Phuti24/Singleton-Payment-API/services/payments/gateway"
	"github.com/Phuti24/Singleton-Payment-API/services/payments/handler"
	"github.com/Phuti24/Singleton-Payment-API/services/payments/repository"
	"github.com/Phuti24/Singleton-Payment-API/services/payments/usecase"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

func main() {
	configPath := "config/payments.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.InitAppLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	shutdown := server.NewShutdownManager()
	healthService := health.NewService(configs.App)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()

	// Initialize SQL store
	var sqlClient *database.SQLClient
	err = retry.New("database", database.ConnectRetryConfig()).Execute(startupCtx, func(context.Context) error {
		var err error
		sqlClient, err = database.NewSQLClient(configs.Database)
		return err
	})
	if err != nil {
		logger.Fatal("Failed to open transaction store",
			logger.String("driver", configs.Database.Driver),
			logger.Err(err))
	}
	shutdown.Register("database", func(context.Context) error { return sqlClient.Close() })
	healthService.AddChecker("database", sqlClient)

	// Initialize repository
	transactionRepo := repository.NewTransactionRepository(sqlClient.GetDB())
	if err := transactionRepo.CreateTable(startupCtx); err != nil {
		logger.Fatal("Failed to create transactions table", logger.Err(err))
	}

	// Initialize Redis client for rate limiting
	var redisClient *redis.Client
	if configs.Redis.Enabled() {
		var rc *database.RedisClient
		err := retry.NewWithDefaults("redis").Execute(startupCtx, func(context.Context) error {
			var err error
			rc, err = database.NewRedisClient(configs.Redis)
			return err
		})
		if err != nil {
			logger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		redisClient = rc.GetClient()
		shutdown.Register("redis", func(context.Context) error { return rc.Close() })
		healthService.AddChecker("redis", rc)
	} else {
		logger.Info("REDIS_HOST not set, rate limiting disabled")
	}

	// Initialize gateways
	if configs.Paystack.SecretKey == "" {
		logger.Warn("PAYSTACK_SECRET_KEY is empty, gateway calls will be rejected")
	}
	paymentGW := gateway.NewPaystackClient(configs.Paystack)

	var eventGW payments.EventGW
	if configs.NSQ.Address != "" {
		var producer *nsq.Producer
		err := retry.NewWithDefaults("nsq").Execute(startupCtx, func(context.Context) error {
			var err error
			producer, err = nsq.NewProducer(configs.NSQ.Address)
			return err
		})
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdown.Register("nsq", func(context.Context) error {
			producer.Stop()
			return nil
		})
		healthService.AddChecker("nsq", producer)
		eventGW = gateway.NewEventGW(producer)
	} else {
		eventGW = gateway.NewNoopEventGW()
	}

	// Initialize usecase
	paymentUC := usecase.NewPaymentUC(configs, transactionRepo, paymentGW, eventGW)

	// Initialize Echo server
	e := echo.New()
	e.Debug = configs.App.Debug
	e.Use(middleware.RequestID())
	e.Use(logger.EchoMiddleware(appLogger))
	e.Use(middleware.PanicRecovery(appLogger))

	health.RegisterEndpoints(e, healthService)
	handler.NewHandler(paymentUC, configs, redisClient).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		logger.Error("Shutdown completed with errors", logger.Err(err))
	}
}

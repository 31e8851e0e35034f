// Farm management API server.
//
// @title        Farm Management API
// @version      1.0
// @description  REST API for dairy farm operations: livestock, milk
// @description  production, sales, products, finance, and customer orders.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/farmops/farm-api/docs"
	"github.com/farmops/farm-api/internal/api"
	"github.com/farmops/farm-api/internal/api/handler"
	"github.com/farmops/farm-api/internal/core/service"
	"github.com/farmops/farm-api/internal/infrastructure/config"
	mongodb "github.com/farmops/farm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/farmops/farm-api/internal/infrastructure/db/redis"
	"github.com/farmops/farm-api/internal/infrastructure/queue"
	"github.com/farmops/farm-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Repositories ---
	managerRepo := mongodb.NewManagerRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	animalRepo := mongodb.NewAnimalRepository(db)
	milkRepo := mongodb.NewMilkRepository(db)
	reportRepo := mongodb.NewHealthReportRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	financeRepo := mongodb.NewFinanceRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	orderEventRepo := mongodb.NewOrderEventRepository(db)

	if err := ensureIndexes(ctx,
		managerRepo, employeeRepo, animalRepo, milkRepo,
		reportRepo, saleRepo, productRepo, financeRepo, orderRepo,
	); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Services ---
	tokens, err := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token service init failed")
	}

	limiter := redisdb.NewLoginLimiter(rdb, cfg.LoginMaxFailures, cfg.LoginWindow)
	authService := service.NewAuthService(managerRepo, employeeRepo, tokens, limiter, log)

	orderEventService := service.NewOrderEventService(orderEventRepo, log)
	dispatcher := queue.NewDispatcher(cfg.OrderWorkers, orderEventService, log)
	dispatcher.Start(ctx)

	employeeService := service.NewEmployeeService(employeeRepo, log)
	animalService := service.NewAnimalService(animalRepo, log)
	milkService := service.NewMilkService(milkRepo, log)
	reportService := service.NewHealthReportService(reportRepo, log)
	saleService := service.NewSaleService(saleRepo, log)
	productService := service.NewProductService(productRepo, log)
	financeService := service.NewFinanceService(financeRepo, log)
	orderService := service.NewOrderService(orderRepo, productRepo, dispatcher, log)
	dashboardService := service.NewDashboardService(animalRepo, employeeRepo, milkRepo, orderRepo, log)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Tokens:      tokens,
		Credentials: mongodb.NewCredentialStore(db),

		Auth:         handler.NewAuthHandler(authService),
		Employees:    handler.NewEmployeeHandler(employeeService),
		Animals:      handler.NewAnimalHandler(animalService),
		Milk:         handler.NewMilkHandler(milkService),
		HealthReport: handler.NewHealthReportHandler(reportService),
		Sales:        handler.NewSaleHandler(saleService),
		Products:     handler.NewProductHandler(productService),
		Orders:       handler.NewOrderHandler(orderService),
		Finance:      handler.NewFinanceHandler(financeService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Readiness:    handler.NewReadinessHandler(db, rdb),

		Log: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

func ensureIndexes(ctx context.Context, repos ...indexer) error {
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

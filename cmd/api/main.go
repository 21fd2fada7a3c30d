package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"wallet/internal/domain/usecase/catalog"
	"wallet/internal/domain/usecase/currency"
	"wallet/internal/domain/usecase/ledger"
	userUseCase "wallet/internal/domain/usecase/user"

	"wallet/internal/infrastructure/adapter/api/handler"
	"wallet/internal/infrastructure/adapter/api/routes"
	"wallet/internal/infrastructure/adapter/database"
	"wallet/internal/infrastructure/adapter/exchange"
	"wallet/internal/infrastructure/adapter/logger"
	"wallet/internal/infrastructure/adapter/repository"
	timeProvider "wallet/internal/infrastructure/adapter/time"
	"wallet/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer appLogger.Flush()

	dbPort, err := strconv.Atoi(cfg.Database.Port)
	if err != nil {
		appLogger.Error("Invalid database port", map[string]any{
			"port": cfg.Database.Port,
		})
		os.Exit(1)
	}

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            dbPort,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := database.Migrate(dbManager.DB(), appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	productRepo := repository.NewProductRepository(dbManager.DB(), appLogger)
	ledgerRepo := repository.NewLedgerRepository(dbManager.DB(), tp, appLogger)

	// Use cases
	userService := userUseCase.NewService(userRepo, tp, appLogger)
	catalogService := catalog.NewService(productRepo, tp, appLogger)
	ledgerService := ledger.NewService(ledgerRepo, userRepo, productRepo, appLogger)

	rateProvider := exchange.NewHTTPRateProvider(
		cfg.Currency.APIKey,
		cfg.Currency.APIURL,
		cfg.Currency.Timeout,
		tp,
		appLogger,
	)
	converter := currency.NewConverter(rateProvider, appLogger)

	// HTTP layer
	router := routes.SetupRouter(routes.Handlers{
		User:    handler.NewUserHandler(userService, appLogger),
		Wallet:  handler.NewWalletHandler(ledgerService, converter, appLogger),
		Product: handler.NewProductHandler(catalogService, ledgerService, appLogger),
		Health:  handler.NewHealthHandler(),
	}, userService, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/thedrumepic/med/internal/auth"
	"github.com/thedrumepic/med/internal/handler"
	"github.com/thedrumepic/med/internal/repositories"
	"github.com/thedrumepic/med/internal/router"
	"github.com/thedrumepic/med/internal/service"
	"github.com/thedrumepic/med/pkg/config"
	"github.com/thedrumepic/med/pkg/database"
	"github.com/thedrumepic/med/pkg/flags"
	"github.com/thedrumepic/med/pkg/logger"
	"github.com/thedrumepic/med/pkg/shutdownsetup"
)

func main() {
	// Parse command-line flags
	flagConfig := flags.Parse()

	if err := flagConfig.Validate(); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		return
	}

	cfg, cfgErr := config.Load(".env")

	appLogger := logger.New(logger.Config{
		Level:        logger.LogLevel(cfg.LogLevel),
		Format:       cfg.LogFormat,
		Output:       cfg.LogOutput,
		EnableCaller: cfg.LogEnableCaller,
		Environment:  cfg.Environment,
	})

	if cfgErr != nil {
		appLogger.Fatal("Failed to load configuration", "error", cfgErr)
	}

	appLogger.Info("Starting Ferma Medovik application",
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel)

	dbConfig := database.DefaultConfig()
	dbConfig.URL = cfg.MongoURL
	dbConfig.DBName = cfg.DBName
	dbConfig.ConnectTimeout = cfg.MongoConnectTimeout

	// Establish database connection
	db, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to establish database connection", "error", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			appLogger.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := db.HealthCheck(context.Background()); err != nil {
		appLogger.Error("Database health check failed", "error", err)
	} else {
		appLogger.Info("Database health check passed")
	}

	// Admin credentials come from the environment; a plain password is
	// accepted for development and hashed at startup.
	guardConfig := auth.Config{
		Username:     cfg.AdminUsername,
		PasswordHash: cfg.AdminPasswordHash,
		Salt:         cfg.AdminPasswordSalt,
	}
	if guardConfig.PasswordHash == "" && cfg.AdminPassword != "" {
		guardConfig.PasswordHash = auth.HashPassword(cfg.AdminPasswordSalt, cfg.AdminPassword)
	}
	guard := auth.NewGuard(guardConfig, appLogger)

	// Initialize repositories with logger and database connection
	categoryRepo := repositories.NewCategoryRepository(appLogger, db)
	productRepo := repositories.NewProductRepository(appLogger, db)
	orderRepo := repositories.NewOrderRepository(appLogger, db)
	promocodeRepo := repositories.NewPromocodeRepository(appLogger, db)

	// Initialize services with logger
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	productService := service.NewProductService(productRepo, appLogger)
	orderService := service.NewOrderService(orderRepo, promocodeRepo, appLogger)
	promocodeService := service.NewPromocodeService(promocodeRepo, appLogger)
	seedService := service.NewSeedService(categoryRepo, productRepo, appLogger)

	// Initialize handlers with logger
	adminHandler := handler.NewAdminHandler(guard, seedService, appLogger)
	categoryHandler := handler.NewCategoryHandler(categoryService, appLogger)
	productHandler := handler.NewProductHandler(productService, appLogger)
	orderHandler := handler.NewOrderHandler(orderService, appLogger)
	promocodeHandler := handler.NewPromocodeHandler(promocodeService, appLogger)

	mux := router.NewRouter(adminHandler, categoryHandler, productHandler, orderHandler, promocodeHandler, guard, appLogger)

	httpHandler := appLogger.HTTPMiddleware(mux)

	port := flagConfig.Port
	if port == "" {
		port = cfg.Port
	}
	host := cfg.Host

	server := &http.Server{
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		server.Addr = host + ":" + port

		go func() {
			appLogger.Info("Starting HTTP server",
				"host", host,
				"port", port,
				"address", server.Addr)

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLogger.Error("Server error", "error", err)
				serverErrors <- err
			}
		}()

		select {
		case err := <-serverErrors:
			if strings.Contains(err.Error(), "address already in use") && i < maxRetries-1 {
				portNum := 8080 + i + 1
				port = fmt.Sprintf("%d", portNum)
				appLogger.Warn("Port already in use, trying alternative port",
					"current_port", server.Addr,
					"next_port", port)
				continue
			} else {
				appLogger.Error("Failed to start server after retries", "error", err)
				return
			}
		case <-time.After(200 * time.Millisecond):
			appLogger.Info("Server started successfully", "port", port)
		}

		break
	}

	select {
	case err := <-serverErrors:
		appLogger.Error("Could not start server", "error", err)
		return
	default:
		shutdownsetup.SetupGracefulShutdown(server, appLogger)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"margin-tracker/internal/tracker/config"
	delivery "margin-tracker/internal/tracker/delivery/http"
	_ "margin-tracker/internal/tracker/docs"
	"margin-tracker/internal/tracker/repository"
	"margin-tracker/internal/tracker/service"
	"margin-tracker/pkg/logger"
	"margin-tracker/pkg/postgres"
	"margin-tracker/pkg/redis"
	"margin-tracker/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the margin tracker service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Margin Tracker Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize Telegram notifier
	var notifier telegram.Notifier
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	positionRepo := repository.NewPositionRepository(db.DB)
	dailyUpdateRepo := repository.NewDailyUpdateRepository(db.DB)
	riskAlertRepo := repository.NewRiskAlertRepository(db.DB)
	alertConfigRepo := repository.NewAlertConfigurationRepository(db.DB)
	triggeredRepo := repository.NewTriggeredAlertRepository(db.DB)
	marketRepo := repository.NewMarketDataRepository(cfg, appLogger)

	// Initialize services
	riskAlertSvc := service.NewRiskAlertService()
	positionSvc := service.NewPositionService(positionRepo, riskAlertRepo, appLogger)
	dailyUpdateSvc := service.NewDailyUpdateService(positionRepo, dailyUpdateRepo, riskAlertRepo, riskAlertSvc, appLogger)
	engine := service.NewAlertEngineService(alertConfigRepo, triggeredRepo, marketRepo, redisClient, notifier, cfg.Tracker.AlertResendInterval, appLogger)
	unifiedSvc := service.NewUnifiedAlertService(triggeredRepo, positionRepo, riskAlertRepo, engine)
	monitorSvc := service.NewMonitorService(cfg, positionRepo, marketRepo, dailyUpdateSvc, engine, redisClient, appLogger)

	if err := engine.SeedDefaults(ctx); err != nil {
		appLogger.Error("Failed to seed default alert configurations", logger.ErrorField(err))
	}

	// Start background monitor
	go func() {
		if err := monitorSvc.Start(ctx); err != nil {
			appLogger.Error("Monitor failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")

	positionHandler := delivery.NewPositionHandler(positionSvc, dailyUpdateSvc, marketRepo, appLogger)
	positionHandler.RegisterRoutes(apiV1.Group("/positions"))

	alertsGroup := apiV1.Group("/alerts")
	unifiedHandler := delivery.NewUnifiedAlertHandler(unifiedSvc, appLogger)
	unifiedHandler.RegisterRoutes(alertsGroup.Group("/unified"))

	alertHandler := delivery.NewAlertHandler(engine, appLogger)
	alertHandler.RegisterRoutes(alertsGroup)

	marketHandler := delivery.NewMarketHandler(marketRepo, appLogger)
	marketHandler.RegisterRoutes(apiV1.Group("/market"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Margin Tracker API
// @version 1.0
// @description Margin position tracking and alert service.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "tracker-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-tracker.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing tracker-service CLI: %s\n", err)
		os.Exit(1)
	}
}

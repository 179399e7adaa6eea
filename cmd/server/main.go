package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "moneyman/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"moneyman/internal/auth"
	"moneyman/internal/cache"
	"moneyman/internal/config"
	"moneyman/internal/db"
	"moneyman/internal/handler"
	"moneyman/internal/jobs"
	"moneyman/internal/model"
	"moneyman/internal/repository"
	"moneyman/internal/router"
	"moneyman/internal/service"
)

// @title Money Manager API
// @version 1.0
// @description Personal finance tracker API with session-cookie auth, transaction CRUD, month-end rollover, and PDF reports.
// @host localhost:3001
// @BasePath /
// @schemes http
func main() {
	// Load .env for local development (ignore errors in production/docker).
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Transaction{},
	); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	txnRepo := repository.NewTransactionRepository(gormDB)

	// Services
	sessions := auth.NewSessionService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, sessions)
	txnService := service.NewTransactionService(txnRepo, cacheClient, time.Now)
	rolloverService := service.NewRolloverService(userRepo, txnRepo, cacheClient, logger)
	reportService := service.NewReportService(txnRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	txnHandler := handler.NewTransactionHandler(txnService)
	reportHandler := handler.NewReportHandler(reportService, logger)

	e := echo.New()
	router.Register(e, cfg, authHandler, txnHandler, reportHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Month-end rollover runs outside the request path.
	scheduler := jobs.NewRolloverScheduler(rolloverService, logger, time.Now)
	go scheduler.Start(ctx)

	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info("server starting", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := db.Close(gormDB); err != nil {
		logger.Error("database close", zap.Error(err))
	}
}

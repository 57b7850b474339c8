package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pavelkurin/contracts-backend/internal/config"
	"github.com/pavelkurin/contracts-backend/internal/db"
	httpHandlers "github.com/pavelkurin/contracts-backend/internal/http/handlers"
	httpRouter "github.com/pavelkurin/contracts-backend/internal/http/router"
	"github.com/pavelkurin/contracts-backend/internal/logger"
	"github.com/pavelkurin/contracts-backend/internal/repository"
	"github.com/pavelkurin/contracts-backend/internal/service"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)

	// Репозитории.
	profileRepo := repository.NewProfileRepository(dbConn)
	contractRepo := repository.NewContractRepository(dbConn)
	jobRepo := repository.NewJobRepository(dbConn)
	paymentRepo := repository.NewPaymentRepository(dbConn)
	reportRepo := repository.NewReportRepository(dbConn)

	// Сервисы.
	authService := service.NewAuthService(profileRepo, tokenManager)
	contractService := service.NewContractService(contractRepo)
	jobService := service.NewJobService(jobRepo)
	paymentService := service.NewPaymentService(paymentRepo, cfg.DepositRate)
	reportService := service.NewReportService(reportRepo)
	seedService := service.NewSeedService(profileRepo, contractRepo, jobRepo)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	contractHandler := httpHandlers.NewContractHandler(contractService)
	jobHandler := httpHandlers.NewJobHandler(jobService, paymentService)
	balanceHandler := httpHandlers.NewBalanceHandler(paymentService)
	adminHandler := httpHandlers.NewAdminHandler(reportService)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)
	seedHandler := httpHandlers.NewSeedHandler(seedService)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, contractHandler, jobHandler, balanceHandler, adminHandler, healthHandler, seedHandler, tokenManager, profileRepo)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}

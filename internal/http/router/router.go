package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pavelkurin/contracts-backend/internal/config"
	"github.com/pavelkurin/contracts-backend/internal/http/handlers"
	"github.com/pavelkurin/contracts-backend/internal/http/middleware"
	"github.com/pavelkurin/contracts-backend/internal/models"
	"github.com/pavelkurin/contracts-backend/internal/service"
)

// SetupRouter собирает маршруты и цепочки middleware.
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	contractHandler *handlers.ContractHandler,
	jobHandler *handlers.JobHandler,
	balanceHandler *handlers.BalanceHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
	seedHandler *handlers.SeedHandler,
	tokenManager *service.TokenManager,
	profiles middleware.ProfileResolver,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	if seedHandler != nil && cfg.Env == "development" {
		api.POST("/seed", seedHandler.Seed)
	}

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		authGroup.POST("/login", authHandler.Login)
	}

	// Все остальные маршруты требуют резолва профиля.
	protected := api.Group("/")
	protected.Use(middleware.ProfileResolution(tokenManager, profiles))
	{
		// Стороны контрактов: клиенты и исполнители.
		parties := protected.Group("/")
		parties.Use(middleware.RequireProfileType(models.ProfileTypeClient, models.ProfileTypeContractor))
		{
			parties.GET("/contracts", contractHandler.ListContracts)
			parties.GET("/contracts/:id", middleware.UUIDValidator("id"), contractHandler.GetContract)
			parties.GET("/jobs/unpaid", jobHandler.ListUnpaid)
		}

		// Движение денег инициируют только клиенты.
		clients := protected.Group("/")
		clients.Use(middleware.RequireProfileType(models.ProfileTypeClient))
		{
			clients.POST("/jobs/:job_id/pay", middleware.UUIDValidator("job_id"), jobHandler.Pay)
			clients.POST("/balances/deposit/:userId", middleware.UUIDValidator("userId"), balanceHandler.Deposit)
		}

		// Отчёты доступны только администраторам.
		admin := protected.Group("/admin")
		admin.Use(middleware.RequireProfileType(models.ProfileTypeAdmin))
		{
			admin.GET("/best-profession", adminHandler.BestProfession)
			admin.GET("/best-clients", adminHandler.BestClients)
		}
	}

	return r
}

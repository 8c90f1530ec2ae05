package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellestudio/salon-agenda/internal/audit"
	"github.com/bellestudio/salon-agenda/internal/cache"
	"github.com/bellestudio/salon-agenda/internal/config"
	"github.com/bellestudio/salon-agenda/internal/handlers"
	infraRepo "github.com/bellestudio/salon-agenda/internal/infra/repository"
	"github.com/bellestudio/salon-agenda/internal/middleware"
	ucAppointment "github.com/bellestudio/salon-agenda/internal/usecase/appointment"
	ucPayment "github.com/bellestudio/salon-agenda/internal/usecase/payment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	catalogCache, err := cache.NewCatalogCache(cfg.RedisURL)
	if err != nil {
		log.Printf("catalog cache disabled: %v", err)
		catalogCache, _ = cache.NewCatalogCache("")
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(repo, auditDispatcher)
	updateUC := ucAppointment.NewUpdateAppointment(repo, auditDispatcher)
	transitionUC := ucAppointment.NewTransitionStatus(repo, auditDispatcher)
	toggleUC := ucAppointment.NewToggleCancel(repo, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(repo)

	registerPaymentUC := ucPayment.NewRegisterPayment(repo, auditDispatcher)
	updatePaymentUC := ucPayment.NewUpdatePayment(repo, auditDispatcher)
	cancelPaymentUC := ucPayment.NewCancelPayment(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db, catalogCache)
	serviceHandler := handlers.NewServiceHandler(db, catalogCache)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		updateUC,
		transitionUC,
		toggleUC,
		listUC,
		repo,
	)

	paymentHandler := handlers.NewPaymentHandler(
		registerPaymentUC,
		updatePaymentUC,
		cancelPaymentUC,
		repo,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// REFERENCE DATA
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)

			secured.GET("/professionals", professionalHandler.List)
			secured.POST("/professionals", professionalHandler.Create)
			secured.PUT("/professionals/:id", professionalHandler.Update)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/appointments/:id/toggle-cancel", appointmentHandler.ToggleCancel)

			// ------------------------------
			// PAYMENTS
			// ------------------------------
			secured.GET("/payments", paymentHandler.List)
			secured.POST("/payments", paymentHandler.Create)
			secured.PUT("/payments/:id", paymentHandler.Update)
			secured.PATCH("/payments/:id/cancel", paymentHandler.Cancel)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

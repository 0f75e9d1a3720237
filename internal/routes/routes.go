package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	"github.com/BruksfildServices01/booking-api/internal/cache"
	"github.com/BruksfildServices01/booking-api/internal/config"
	"github.com/BruksfildServices01/booking-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/booking-api/internal/infra/repository"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	ucBooking "github.com/BruksfildServices01/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var slotCache ucBooking.SlotCache
	if rdb != nil {
		slotCache = cache.NewSlotCache(rdb, cfg.SlotCacheTTL)
	}

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	getSlotsUC := ucBooking.NewGetAvailableSlots(scheduleRepo, slotCache)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		scheduleRepo,
		slotCache,
		auditDispatcher,
	)

	updateStatusUC := ucBooking.NewUpdateAppointmentStatus(
		scheduleRepo,
		slotCache,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	businessHandler := handlers.NewBusinessHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, slotCache)
	customerHandler := handlers.NewCustomerHandler(db)
	workingDaysHandler := handlers.NewWorkingDaysHandler(db, slotCache)
	absenceHandler := handlers.NewAbsenceHandler(db, slotCache, auditDispatcher)

	slotsHandler := handlers.NewSlotsHandler(db, getSlotsUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		updateStatusUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// OBSERVABILIDADE
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/business", businessHandler.GetMeBusiness)
			secured.PATCH("/me/business", businessHandler.UpdateMeBusiness)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/working-days", workingDaysHandler.Get)
			secured.PUT("/me/working-days", workingDaysHandler.Update)

			secured.GET("/me/customers", customerHandler.List)

			secured.GET("/me/absences", absenceHandler.List)
			secured.POST("/me/absences", absenceHandler.Create)

			// ------------------------------
			// AGENDA (núcleo)
			// ------------------------------
			secured.GET("/slots", slotsHandler.List)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}

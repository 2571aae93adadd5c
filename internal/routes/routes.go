package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/salon-scheduler/internal/usecase/availability"
	ucLinkrequest "github.com/BruksfildServices01/salon-scheduler/internal/usecase/linkrequest"
	ucTimeblock "github.com/BruksfildServices01/salon-scheduler/internal/usecase/timeblock"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availabilityCache := cache.New(cfg)
	avatarStore := media.NewAvatarStore(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(repo, auditDispatcher, availabilityCache)
	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(repo, auditDispatcher, availabilityCache)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(repo, auditDispatcher, availabilityCache)
	checkInUC := ucAppointment.NewCheckInAppointment(repo, auditDispatcher)
	softDeleteUC := ucAppointment.NewSoftDeleteAppointment(repo, auditDispatcher, availabilityCache)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(repo)
	listForProfessionalUC := ucAppointment.NewListAppointmentsForProfessional(repo)
	listForCustomerUC := ucAppointment.NewListAppointmentsForCustomer(repo)
	listAllUC := ucAppointment.NewListAppointments(repo)

	manageAvailabilityUC := ucAvailability.NewManageAvailability(repo, availabilityCache)
	computeAvailabilityUC := ucAvailability.NewComputeAvailability(repo, availabilityCache, cfg)

	timeBlockRegistry := ucTimeblock.NewRegistry(repo, auditDispatcher, availabilityCache)

	linkRequestWorkflow := ucLinkrequest.NewWorkflow(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	salonHandler := handlers.NewSalonHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db, avatarStore)
	serviceHandler := handlers.NewServiceHandler(db)
	customerHandler := handlers.NewCustomerHandler(db, repo)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		rescheduleAppointmentUC,
		updateStatusUC,
		checkInUC,
		softDeleteUC,
		listByDateUC,
		listForProfessionalUC,
		listForCustomerUC,
		listAllUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(db, manageAvailabilityUC, computeAvailabilityUC)
	timeBlockHandler := handlers.NewTimeBlockHandler(timeBlockRegistry)
	linkRequestHandler := handlers.NewLinkRequestHandler(linkRequestWorkflow)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, createAppointmentUC, computeAvailabilityUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (página de reserva)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetSalon)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/bookings", publicHandler.Book)
			publicAPI.GET("/:slug/bookings/:ref", publicHandler.Lookup)
		}

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/salon", salonHandler.Get)
			secured.PATCH("/me/salon", salonHandler.Update)

			// ------------------------------
			// PROFESSIONALS
			// ------------------------------
			secured.GET("/me/professionals", professionalHandler.List)
			secured.POST("/me/professionals", professionalHandler.Create)
			secured.GET("/me/professionals/:id", professionalHandler.GetByID)
			secured.PATCH("/me/professionals/:id", professionalHandler.Update)
			secured.DELETE("/me/professionals/:id", professionalHandler.Deactivate)
			secured.POST("/me/professionals/:id/avatar", professionalHandler.UploadAvatar)
			secured.GET("/me/professionals/:id/appointments", appointmentHandler.ListByProfessional)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.GET("/me/services/:id", serviceHandler.GetByID)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.SoftDelete)

			// ------------------------------
			// CUSTOMERS
			// ------------------------------
			secured.GET("/me/customers", customerHandler.List)
			secured.POST("/me/customers", customerHandler.Create)
			secured.GET("/me/customers/:id", customerHandler.GetByID)
			secured.PATCH("/me/customers/:id", customerHandler.Update)
			secured.GET("/me/customers/:id/appointments", appointmentHandler.ListByCustomer)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/all", appointmentHandler.ListAll)
			secured.GET("/me/appointments/:id", appointmentHandler.GetByID)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Reschedule)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/me/appointments/:id/check-in", appointmentHandler.CheckIn)
			secured.DELETE("/me/appointments/:id", appointmentHandler.SoftDelete)

			// ------------------------------
			// AVAILABILITY
			// ------------------------------
			secured.GET("/me/availability", availabilityHandler.GetAll)
			secured.GET("/me/availability/day/:weekday", availabilityHandler.GetByDay)
			secured.PUT("/me/availability", availabilityHandler.SaveSlot)
			secured.DELETE("/me/availability", availabilityHandler.ClearAll)
			secured.GET("/me/availability/slots", availabilityHandler.Compute)

			// ------------------------------
			// TIME BLOCKS
			// ------------------------------
			secured.GET("/me/time-blocks", timeBlockHandler.List)
			secured.POST("/me/time-blocks", timeBlockHandler.Create)
			secured.GET("/me/time-blocks/:id", timeBlockHandler.GetByID)
			secured.PATCH("/me/time-blocks/:id", timeBlockHandler.Update)
			secured.DELETE("/me/time-blocks/:id", timeBlockHandler.Delete)

			// ------------------------------
			// LINK REQUESTS
			// ------------------------------
			secured.POST("/me/link-requests", linkRequestHandler.Propose)
			secured.GET("/me/link-requests", linkRequestHandler.Pending)
			secured.GET("/me/link-requests/mine", linkRequestHandler.Mine)
			secured.PATCH("/me/link-requests/:id/accept", linkRequestHandler.Accept)
			secured.PATCH("/me/link-requests/:id/reject", linkRequestHandler.Reject)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/config"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/happypaws-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/middleware"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
	ucAccount "github.com/BruksfildServices01/happypaws-scheduler/internal/usecase/account"
	ucAppointment "github.com/BruksfildServices01/happypaws-scheduler/internal/usecase/appointment"
)

// Dependencies are the process-wide singletons the routes are built on.
type Dependencies struct {
	DB      *gorm.DB
	Config  *config.Config
	Clock   timezone.Clock
	Audit   audit.Sink
	Limiter middleware.Limiter
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(deps.DB)
	accountRepo := infraRepo.NewAccountGormRepository(deps.DB)
	tokens := auth.NewTokenIssuer(deps.Config.JWTSecret, deps.Config.JWTTTL, deps.Clock)

	auditSink := deps.Audit
	if auditSink == nil {
		auditSink = audit.Discard{}
	}

	limiter := deps.Limiter
	if limiter == nil {
		limiter = middleware.NewMemoryLimiter(deps.Config.BookingRateLimit, deps.Config.BookingRateWindow, nil)
	}
	bookingLimit := middleware.RateLimit(limiter, "booking")

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditSink)
	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(appointmentRepo, auditSink)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditSink, deps.Clock)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo, auditSink, deps.Clock)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listOwnerAppointmentsUC := ucAppointment.NewListOwnerAppointments(appointmentRepo, deps.Clock)
	listBookedTimesUC := ucAppointment.NewListBookedTimes(appointmentRepo)

	adminListUC := ucAppointment.NewAdminListAppointments(appointmentRepo)
	adminUpdateUC := ucAppointment.NewAdminUpdateAppointment(appointmentRepo, auditSink, deps.Clock)
	adminDeleteUC := ucAppointment.NewAdminDeleteAppointment(appointmentRepo, auditSink)

	// ======================================================
	// USE CASES: ACCOUNTS
	// ======================================================
	registerUC := ucAccount.NewRegister(accountRepo, tokens, auditSink, deps.Clock)
	loginUC := ucAccount.NewLogin(accountRepo, tokens)
	profileUC := ucAccount.NewGetProfile(accountRepo)
	createPetUC := ucAccount.NewCreatePet(accountRepo, auditSink)
	listPetsUC := ucAccount.NewListPets(accountRepo)
	deleteUserUC := ucAccount.NewDeleteUser(accountRepo, auditSink)
	deletePetUC := ucAccount.NewDeletePet(accountRepo, auditSink)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	meHandler := handlers.NewMeHandler(profileUC)
	petHandler := handlers.NewPetHandler(createPetUC, listPetsUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		getAppointmentUC,
		listOwnerAppointmentsUC,
		listBookedTimesUC,
	)

	adminAppointmentHandler := handlers.NewAdminAppointmentHandler(
		adminListUC,
		listOwnerAppointmentsUC,
		getAppointmentUC,
		adminUpdateUC,
		adminDeleteUC,
		completeAppointmentUC,
	)

	adminAccountHandler := handlers.NewAdminAccountHandler(deleteUserUC, deletePetUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(deps.DB))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

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
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/pets", petHandler.Create)
			secured.GET("/pets", petHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			appointments := secured.Group("/appointments")
			appointments.Use(middleware.RequireCapability(auth.CapBookAppointments))
			{
				appointments.POST("", bookingLimit, appointmentHandler.Create)
				appointments.GET("", appointmentHandler.ListUpcoming)
				appointments.GET("/history", appointmentHandler.ListHistory)
				appointments.GET("/reminders", appointmentHandler.ListReminders)
				appointments.GET("/times/:date", appointmentHandler.BookedTimes)
				appointments.GET("/:id", appointmentHandler.Get)
				appointments.PATCH("/:id", bookingLimit, appointmentHandler.Reschedule)
				appointments.PATCH("/:id/cancel", appointmentHandler.Cancel)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			{
				adminAppointments := admin.Group("/appointments")
				adminAppointments.Use(middleware.RequireCapability(auth.CapManageAnyAppointment))
				{
					adminAppointments.GET("", adminAppointmentHandler.List)
					adminAppointments.GET("/by-date/:date", adminAppointmentHandler.ListByDate)
					adminAppointments.GET("/users/:userID/history", adminAppointmentHandler.UserHistory)
					adminAppointments.GET("/users/:userID/active", adminAppointmentHandler.UserActive)
					adminAppointments.GET("/:id", adminAppointmentHandler.Get)
					adminAppointments.PATCH("/:id", adminAppointmentHandler.Update)
					adminAppointments.DELETE("/:id", adminAppointmentHandler.Delete)
					adminAppointments.PATCH("/:id/complete",
						middleware.RequireCapability(auth.CapCompleteAppointments),
						adminAppointmentHandler.Complete,
					)
				}

				accounts := admin.Group("")
				accounts.Use(middleware.RequireCapability(auth.CapManageAccounts))
				{
					accounts.DELETE("/users/:id", adminAccountHandler.DeleteUser)
					accounts.DELETE("/pets/:id", adminAccountHandler.DeletePet)
				}

				admin.GET("/audit-logs",
					middleware.RequireCapability(auth.CapReadAudit),
					auditLogsHandler.List,
				)
			}
		}
	}
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/slot-exchange/internal/audit"
	"github.com/BruksfildServices01/slot-exchange/internal/config"
	"github.com/BruksfildServices01/slot-exchange/internal/domain/exchange"
	"github.com/BruksfildServices01/slot-exchange/internal/handlers"
	"github.com/BruksfildServices01/slot-exchange/internal/infra/queue"
	infraRepo "github.com/BruksfildServices01/slot-exchange/internal/infra/repository"
	"github.com/BruksfildServices01/slot-exchange/internal/middleware"
	"github.com/BruksfildServices01/slot-exchange/internal/timezone"
	ucBooking "github.com/BruksfildServices01/slot-exchange/internal/usecase/booking"
	ucExchange "github.com/BruksfildServices01/slot-exchange/internal/usecase/exchange"
	ucReminder "github.com/BruksfildServices01/slot-exchange/internal/usecase/reminder"
)

// Infra carries the process-wide collaborators built in main. Nil fields
// fall back to in-process defaults.
type Infra struct {
	Log       *zap.Logger
	Clock     timezone.Clock
	Policies  exchange.PolicyStore
	Reminders ucReminder.Enqueuer
	Events    queue.Publisher
	Audit     *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {
	if infra.Log == nil {
		infra.Log = zap.NewNop()
	}
	if infra.Clock == nil {
		infra.Clock = timezone.SystemClock{}
	}
	if infra.Policies == nil {
		infra.Policies = infraRepo.NewPolicyGormRepository(db)
	}
	if infra.Events == nil {
		infra.Events = queue.NopPublisher{}
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.Recovery(infra.Log))
	r.Use(middleware.RequestLogger(infra.Log))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	exchangeRepo := infraRepo.NewExchangeGormRepository(db)
	reminderRepo := infraRepo.NewReminderGormRepository(db)

	// ======================================================
	// USE CASES - EXCHANGES
	// ======================================================
	scheduleRemindersUC := ucReminder.NewScheduleReminders(
		reminderRepo,
		infra.Reminders,
		infra.Clock,
		infra.Log,
	)

	executeExchangeUC := ucExchange.NewExecuteExchange(
		exchangeRepo,
		scheduleRemindersUC,
		ucExchange.NewCleanupDuplicates(exchangeRepo, infra.Log),
		infra.Events,
		infra.Clock,
		infra.Audit,
		infra.Log,
	)

	createExchangeUC := ucExchange.NewCreateExchange(
		exchangeRepo,
		infra.Policies,
		infra.Clock,
		infra.Audit,
	)

	updateExchangeUC := ucExchange.NewUpdateExchange(
		exchangeRepo,
		infra.Policies,
		executeExchangeUC,
		infra.Audit,
	)

	// ======================================================
	// USE CASES - BOOKINGS
	// ======================================================
	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		infra.Events,
		infra.Clock,
		infra.Audit,
		infra.Log,
	)

	resolveCancellationUC := ucBooking.NewResolveCancellation(
		bookingRepo,
		infra.Events,
		infra.Clock,
		infra.Audit,
		infra.Log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	exchangeHandler := handlers.NewExchangeHandler(
		createExchangeUC,
		updateExchangeUC,
		ucExchange.NewGetExchange(exchangeRepo),
		ucExchange.NewListExchanges(exchangeRepo),
		infra.Log,
	)

	bookingHandler := handlers.NewBookingHandler(
		cancelBookingUC,
		resolveCancellationUC,
		infra.Log,
	)

	meHandler := handlers.NewMeHandler()
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/me", meHandler.GetMe)

		// ------------------------------
		// EXCHANGES
		// ------------------------------
		api.POST("/exchanges", exchangeHandler.Create)
		api.GET("/exchanges", exchangeHandler.List)
		api.GET("/exchanges/:id", exchangeHandler.Get)
		api.PATCH("/exchanges/:id", exchangeHandler.Update)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.POST("/bookings/:id/cancel", bookingHandler.Cancel)
		api.PATCH("/bookings/:id/cancel", bookingHandler.ResolveCancellation)

		api.GET("/audit-logs", middleware.RequireProvider(), auditLogsHandler.List)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/openpitch/field-booking/internal/audit"
	"github.com/openpitch/field-booking/internal/config"
	"github.com/openpitch/field-booking/internal/domain/access"
	"github.com/openpitch/field-booking/internal/events"
	"github.com/openpitch/field-booking/internal/handlers"
	infraRepo "github.com/openpitch/field-booking/internal/infra/repository"
	"github.com/openpitch/field-booking/internal/middleware"
	"github.com/openpitch/field-booking/internal/storage"
	ucBooking "github.com/openpitch/field-booking/internal/usecase/booking"
	ucField "github.com/openpitch/field-booking/internal/usecase/field"
)

type Deps struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Pictures *storage.PictureStore
	Events   *events.Publisher
	Log      *zap.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)
	fieldRepo := infraRepo.NewFieldGormRepository(deps.DB)

	auditLogger := audit.New(deps.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, deps.Log)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, deps.Events)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, auditDispatcher, deps.Events)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	listFieldBookingsUC := ucBooking.NewListFieldBookings(bookingRepo)

	// ======================================================
	// USE CASES — FIELDS
	// ======================================================
	listFieldsUC := ucField.NewListFields(fieldRepo)
	getFieldUC := ucField.NewGetField(fieldRepo, bookingRepo)
	createFieldUC := ucField.NewCreateField(fieldRepo, auditDispatcher)
	updateFieldUC := ucField.NewUpdateField(fieldRepo, auditDispatcher)
	deleteFieldUC := ucField.NewDeleteField(fieldRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.DB, cfg)
	meHandler := handlers.NewMeHandler(deps.DB)
	userHandler := handlers.NewUserHandler(deps.DB, auditDispatcher)

	fieldHandler := handlers.NewFieldHandler(
		listFieldsUC,
		getFieldUC,
		createFieldUC,
		updateFieldUC,
		deleteFieldUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		getBookingUC,
		updateBookingUC,
		deleteBookingUC,
		listBookingsUC,
		listFieldBookingsUC,
	)

	pictureHandler := handlers.NewPictureHandler(deps.DB, deps.Pictures, auditDispatcher, cfg)

	rateLimit := middleware.RateLimit(cfg, deps.Redis)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC READS
		// ------------------------------
		public := api.Group("/")
		public.Use(middleware.OptionalAuth(cfg))
		{
			public.GET("/fields", fieldHandler.List)
			public.GET("/fields/:id", fieldHandler.Get)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.PATCH("/users/:id/role",
				middleware.RequireRole(access.RoleAdmin),
				userHandler.SetRole,
			)

			// ------------------------------
			// FIELDS
			// ------------------------------
			secured.POST("/fields", rateLimit, fieldHandler.Create)
			secured.PATCH("/fields/:id", rateLimit, fieldHandler.Update)
			secured.DELETE("/fields/:id", rateLimit, fieldHandler.Delete)
			secured.POST("/fields/:id/picture", rateLimit, pictureHandler.Upload)
			secured.GET("/fields/:id/bookings", bookingHandler.ListForField)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.POST("/bookings", rateLimit, bookingHandler.Create)
			secured.PATCH("/bookings/:id", rateLimit, bookingHandler.Update)
			secured.DELETE("/bookings/:id", rateLimit, bookingHandler.Delete)
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonhub/salon-booking-api/internal/audit"
	"github.com/salonhub/salon-booking-api/internal/config"
	"github.com/salonhub/salon-booking-api/internal/handlers"
	infraRepo "github.com/salonhub/salon-booking-api/internal/infra/repository"
	"github.com/salonhub/salon-booking-api/internal/middleware"
	ucAppointment "github.com/salonhub/salon-booking-api/internal/usecase/appointment"
	ucPricing "github.com/salonhub/salon-booking-api/internal/usecase/pricing"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	pricingRepo := infraRepo.NewPricingGormRepository(db)
	accounts := infraRepo.NewAccountDirectory(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createUserAppointmentUC := ucAppointment.NewCreateUserAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	createStaffAppointmentUC := ucAppointment.NewCreateStaffAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	setAppointmentStatusUC := ucAppointment.NewSetAppointmentStatus(
		appointmentRepo,
		auditDispatcher,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	listShopAppointmentsUC := ucAppointment.NewListShopAppointments(
		appointmentRepo,
	)

	// ======================================================
	// USE CASES — PRICING
	// ======================================================
	resolvePriceUC := ucPricing.NewResolvePrice(pricingRepo)
	addVariablePricingUC := ucPricing.NewAddVariablePricing(pricingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, accounts)
	shopHandler := handlers.NewShopHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	locationHandler := handlers.NewLocationHandler(db)

	serviceHandler := handlers.NewServiceHandler(
		db,
		resolvePriceUC,
		addVariablePricingUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUserAppointmentUC,
		createStaffAppointmentUC,
		setAppointmentStatusUC,
		getAppointmentUC,
		listShopAppointmentsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (public)
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register-shop-owner", authHandler.RegisterShopOwner)
		api.POST("/auth/register-user", authHandler.RegisterUser)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/services/categories", serviceHandler.ListCategories)
		api.GET("/services/shop/:shopId", serviceHandler.ListByShop)
		api.GET("/services/:id/price", serviceHandler.GetPrice)
		api.GET("/locations/states", locationHandler.ListStates)
		api.GET("/locations/states/:stateId/districts", locationHandler.ListDistricts)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/change-password", authHandler.ChangePassword)

			// ------------------------------
			// SUPERADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRoles("superadmin"))
			{
				admin.POST("/shops", shopHandler.Register)
				admin.PATCH("/shops/:id/approve", shopHandler.Approve)

				admin.POST("/services/categories", serviceHandler.CreateCategory)
				admin.PATCH("/services/categories/:id", serviceHandler.UpdateCategory)

				admin.POST("/locations/states", locationHandler.CreateState)
				admin.POST("/locations/states/:stateId/districts", locationHandler.CreateDistrict)
			}

			secured.GET("/shops/:id", shopHandler.Get)

			// ------------------------------
			// SHOP OWNER
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireRoles("shopowner"))
			{
				owner.POST("/staff", staffHandler.Create)
				owner.GET("/staff", staffHandler.List)
				owner.PATCH("/staff/:id/reset-password", staffHandler.ResetPassword)
				owner.PATCH("/staff/:id/working-days", staffHandler.UpdateWorkingDays)
				owner.PATCH("/staff/:id/unavailable-dates", staffHandler.UpdateUnavailableDates)

				owner.POST("/services", serviceHandler.Create)
				owner.PATCH("/services/:id", serviceHandler.Update)
				owner.DELETE("/services/:id", serviceHandler.Delete)
				owner.POST("/services/:id/variable-pricing", serviceHandler.AddVariablePricing)

				owner.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments/user",
				middleware.RequireRoles("user"),
				appointmentHandler.CreateUser,
			)

			secured.POST("/appointments/staff",
				middleware.RequireRoles("staff", "shopowner"),
				appointmentHandler.CreateStaff,
			)

			secured.PUT("/appointments/:id/status",
				middleware.RequireRoles("staff", "shopowner"),
				appointmentHandler.SetStatus,
			)

			secured.GET("/appointments/shop/:shopId",
				middleware.RequireRoles("staff", "shopowner"),
				appointmentHandler.ListByShop,
			)

			secured.GET("/appointments/:id", appointmentHandler.Get)
		}
	}
}

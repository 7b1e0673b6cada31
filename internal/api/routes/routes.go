package routes

import (
	"partner-crm-backend/internal/api/handlers"
	"partner-crm-backend/internal/api/middleware"
	"partner-crm-backend/internal/auth"
	"partner-crm-backend/internal/config"
	"partner-crm-backend/internal/repository"
	"partner-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Timeout(cfg.RequestTimeout()))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	personRepo := repository.NewPersonRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	geographyRepo := repository.NewGeographyRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, geographyRepo, validator)
	personService := service.NewPersonService(personRepo, organizationRepo, validator)
	meetingService := service.NewMeetingService(meetingRepo, organizationRepo, personRepo, validator)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService, personService, meetingService)
	personHandler := handlers.NewPersonHandler(personService)
	meetingHandler := handlers.NewMeetingHandler(meetingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/search-similar", organizationHandler.SearchSimilarOrganizations)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
			organizations.GET("/:id/people", organizationHandler.GetOrganizationPeople)
			organizations.GET("/:id/meetings", organizationHandler.GetOrganizationMeetings)
		}

		// People routes
		people := v1.Group("/people")
		{
			people.GET("", personHandler.ListPeople)
			people.POST("", personHandler.CreatePerson)
			people.GET("/:id", personHandler.GetPerson)
			people.PUT("/:id", personHandler.UpdatePerson)
			people.DELETE("/:id", personHandler.DeletePerson)
		}

		// Meeting routes
		meetings := v1.Group("/meetings")
		{
			meetings.GET("", meetingHandler.ListMeetings)
			meetings.POST("", meetingHandler.CreateMeeting)
			meetings.GET("/upcoming", meetingHandler.GetUpcomingMeetings)
			meetings.GET("/follow-ups", meetingHandler.GetFollowUps)
			meetings.GET("/:id", meetingHandler.GetMeeting)
			meetings.PUT("/:id", meetingHandler.UpdateMeeting)
			meetings.DELETE("/:id", meetingHandler.DeleteMeeting)
			meetings.POST("/:id/attachments", meetingHandler.AddAttachment)
			meetings.DELETE("/attachments/:id", meetingHandler.DeleteAttachment)
		}

		// Geography routes
		v1.GET("/regions", organizationHandler.GetRegions)
		v1.GET("/regions/:id/chapters", organizationHandler.GetChaptersByRegion)
		v1.GET("/chapters/:id/counties", organizationHandler.GetCountiesByChapter)

		// Dashboard routes
		v1.GET("/dashboard/stats", organizationHandler.GetDashboardStats)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

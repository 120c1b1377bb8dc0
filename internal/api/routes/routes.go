package routes

import (
	"duty-roster-backend/internal/api/handlers"
	"duty-roster-backend/internal/api/middleware"
	"duty-roster-backend/internal/config"
	"duty-roster-backend/internal/roster"
	"duty-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// redisClient is nil when snapshot fan-out stays in process.
func SetupRoutes(db *gorm.DB, redisClient *redis.Client, coordinator *roster.Coordinator, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize services
	gate := service.NewEditGate(cfg.EditPasscode)
	rosterService := service.NewRosterService(coordinator, gate, validator.New())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient, coordinator)
	rosterHandler := handlers.NewRosterHandler(rosterService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterRosterRoutes(router.Group("/api/v1"), rosterHandler)

	return router
}

// RegisterRosterRoutes mounts the roster API under the given group
func RegisterRosterRoutes(v1 *gin.RouterGroup, h *handlers.RosterHandler) {
	r := v1.Group("/roster")
	{
		r.GET("/cycle", h.GetCycle)
		r.GET("/stats", h.GetStatistics)
		r.GET("/status", h.GetStatus)

		days := r.Group("/days/:date")
		{
			days.GET("", h.GetDay)
			days.POST("/assignments", h.Assign)
			days.DELETE("/assignments", h.ClearDate)
			days.DELETE("/assignments/:staffId", h.Unassign)
			days.POST("/toggle", h.Toggle)
			days.PUT("/note", h.SetNote)
		}

		staff := r.Group("/staff")
		{
			staff.GET("", h.ListStaff)
			staff.POST("", h.CreateStaff)
			staff.PUT("/:id", h.UpdateStaff)
			staff.DELETE("/:id", h.DeleteStaff)
		}

		r.GET("/lock", h.GetLockState)
		r.POST("/lock", h.Lock)
		r.POST("/unlock", h.Unlock)
	}
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"duty-roster-backend/internal/roster"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// SyncStatusReporter reports the roster synchronisation state
type SyncStatusReporter interface {
	Status() roster.StatusReport
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db     *gorm.DB
	redis  *redis.Client
	roster SyncStatusReporter
}

// NewHealthHandler creates a new health handler. redisClient and reporter may be nil.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, reporter SyncStatusReporter) *HealthHandler {
	return &HealthHandler{
		db:     db,
		redis:  redisClient,
		roster: reporter,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database and Redis connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  make(map[string]string),
	}

	for name, err := range h.checkDependencies(c.Request.Context()) {
		if err != nil {
			response.Status = "unhealthy"
			response.Services[name] = "error: " + err.Error()
			continue
		}
		response.Services[name] = "healthy"
	}
	if h.roster != nil {
		response.Services["roster"] = string(h.roster.Status().Status)
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Ready once dependencies respond and the stored roster has been loaded
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := make(map[string]string)

	for name, err := range h.checkDependencies(c.Request.Context()) {
		if err != nil {
			ready = false
			services[name] = "not ready: " + err.Error()
			continue
		}
		services[name] = "ready"
	}

	if h.roster != nil {
		report := h.roster.Status()
		switch {
		case !report.Synced:
			ready = false
			services["roster"] = "not ready: " + string(report.Status)
			if report.Error != "" {
				services["roster"] += ": " + report.Error
			}
		case report.Status == roster.StatusError:
			// write failures are surfaced to editors but do not take the API out of rotation
			services["roster"] = "degraded: " + report.Error
		default:
			services["roster"] = "ready"
		}
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) checkDependencies(ctx context.Context) map[string]error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	results := make(map[string]error)

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	results["database"] = err

	if h.redis != nil {
		results["redis"] = h.redis.Ping(ctx).Err()
	}
	return results
}

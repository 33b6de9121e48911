package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/nfse-api/internal/models"
	"github.com/sirupsen/logrus"
)

// Version is reported by the health endpoints
const Version = "1.0.0"

// HealthChecker reports per-dependency health. The service container
// implements it.
type HealthChecker interface {
	Health() map[string]interface{}
}

// HealthHandler handles health check requests
type HealthHandler struct {
	checker   HealthChecker
	logger    *logrus.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checker HealthChecker, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		checker:   checker,
		logger:    logger,
		startTime: time.Now(),
	}
}

// GetHealth handles general health check
// @Summary Health check
// @Description Get the health status of the API and its dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *gin.Context) {
	servicesHealth := h.checker.Health()
	now := time.Now()

	status := models.StatusHealthy
	response := models.HealthResponse{
		Timestamp: now,
		Version:   Version,
		Services:  make(map[string]models.ServiceInfo),
		Uptime:    time.Since(h.startTime).String(),
	}

	for name, serviceHealth := range servicesHealth {
		healthMap, ok := serviceHealth.(map[string]interface{})
		if !ok {
			continue
		}

		info := models.ServiceInfo{LastCheck: now}
		if s, ok := healthMap["status"].(string); ok {
			info.Status = s
		}
		if e, ok := healthMap["error"].(string); ok {
			info.Error = e
		}
		response.Services[name] = info

		// A failing cache degrades the service; a failing profile store makes
		// company builds impossible.
		if info.Status == models.StatusUnhealthy {
			if name == "mongo" {
				status = models.StatusUnhealthy
			} else if status == models.StatusHealthy {
				status = models.StatusDegraded
			}
		}
	}
	response.Status = status

	httpStatus := http.StatusOK
	if status == models.StatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, response)
}

// GetReadiness handles readiness probe
// @Summary Readiness check
// @Description Check if the API is ready to serve requests
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) GetReadiness(c *gin.Context) {
	servicesHealth := h.checker.Health()

	ready := true
	issues := make([]string, 0)

	for _, name := range []string{"mongo", "dps"} {
		if healthMap, ok := servicesHealth[name].(map[string]interface{}); ok {
			if healthMap["status"] == models.StatusUnhealthy {
				ready = false
				issues = append(issues, name+" is unhealthy")
			}
		}
	}

	response := gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  servicesHealth,
	}
	if len(issues) > 0 {
		response["issues"] = issues
	}

	httpStatus := http.StatusOK
	if !ready {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, response)
}

// GetLiveness handles liveness probe
// @Summary Liveness check
// @Description Check if the API is alive and responding
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
		"uptime":    time.Since(h.startTime).String(),
		"version":   Version,
	})
}

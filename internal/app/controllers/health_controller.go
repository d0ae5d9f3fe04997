package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eduhub/internal/pkg/logger"
)

// Pinger reports whether a backing store is reachable
type Pinger func(ctx context.Context) error

// HealthController serves liveness and readiness probes
type HealthController struct {
	checks map[string]Pinger
}

// NewHealthController creates a HealthController over the named store checks
func NewHealthController(checks map[string]Pinger) *HealthController {
	return &HealthController{checks: checks}
}

// Ping answers the liveness probe
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (hc *HealthController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
}

// Health pings every store; any failure answers 503
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	stores := gin.H{}
	for name, ping := range hc.checks {
		if err := ping(ctx); err != nil {
			logger.Warn().Err(err).Str("store", name).Msg("Health check failed")
			stores[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		stores[name] = "ok"
	}

	c.JSON(status, gin.H{"status": http.StatusText(status), "stores": stores})
}

package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/erp/erpapi/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Version is the API version reported by the system endpoints.
var Version = "1.0.0"

// SystemHandler serves health and system information.
type SystemHandler struct {
	name        string
	environment string
	ping        func(context.Context) error
	startTime   time.Time
	log         *zap.Logger
}

// NewSystemHandler creates a SystemHandler. ping checks the database.
func NewSystemHandler(name, environment string, ping func(context.Context) error, log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		name:        name,
		environment: environment,
		ping:        ping,
		startTime:   time.Now(),
		log:         log,
	}
}

// SystemInfoResponse describes the running service.
type SystemInfoResponse struct {
	Name        string `json:"name" example:"erp-api"`
	Version     string `json:"version" example:"1.0.0"`
	Environment string `json:"environment" example:"development"`
	GoVersion   string `json:"go_version" example:"go1.25.5"`
	Uptime      string `json:"uptime" example:"1h30m45s"`
}

// Health answers 200 when the database responds and 503 otherwise.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unhealthy", Database: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Database: "ok"})
}

// Info answers name, version and uptime.
func (h *SystemHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, SystemInfoResponse{
		Name:        h.name,
		Version:     Version,
		Environment: h.environment,
		GoVersion:   runtime.Version(),
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Register adds the system routes to rg.
func (h *SystemHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/system/info/", h.Info)
}

package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumni/internal/app/models/dto"
	"github.com/yigit/alumni/internal/pkg/logger"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus is the body of the health endpoint
type HealthStatus struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}

// HealthController serves liveness checks
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Health reports service and database status
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=HealthStatus}
// @Failure 503 {object} dto.APIResponse{data=HealthStatus}
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Health check: database unreachable")
		resp := dto.NewSuccessResponse(HealthStatus{Status: "degraded", Database: "down"})
		resp.Success = false
		ctx.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	respondOK(ctx, HealthStatus{Status: "ok", Database: "up"})
}

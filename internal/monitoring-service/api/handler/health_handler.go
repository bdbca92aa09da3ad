package handler

import (
	"Endpoint_Monitoring_Service/internal/monitoring-service/api/dto/response"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler interface {
	Health() gin.HandlerFunc
}

type healthHandler struct {
	logger Logger
	db     Pinger
}

func (h *healthHandler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.LoggingError(c, err, "database is not reachable", zapcore.WarnLevel)
			c.JSON(http.StatusServiceUnavailable, response.HealthResponse{
				Status: StatusDown,
			})
			return
		}
		c.JSON(http.StatusOK, response.HealthResponse{
			Status: StatusUp,
		})
	}
}

func NewHealthHandler(logger Logger, db Pinger) HealthHandler {
	return &healthHandler{
		logger: logger,
		db:     db,
	}
}

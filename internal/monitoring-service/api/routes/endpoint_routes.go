package routes

import (
	"Endpoint_Monitoring_Service/internal/monitoring-service/api/handler"
	"Endpoint_Monitoring_Service/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func AddEndpointRoutes(r *gin.Engine, handler handler.EndpointHandler, m middleware.AuthMiddleware) {
	endpointRoutes := r.Group("/api/endpoints", m.RequireUser())
	endpointRoutes.GET("", handler.GetEndpoints())
	endpointRoutes.POST("", handler.CreateEndpoint())
	endpointRoutes.GET("/:id", handler.GetEndpoint())
	endpointRoutes.PUT("/:id", handler.UpdateEndpoint())
	endpointRoutes.DELETE("/:id", handler.DeleteEndpoint())
	endpointRoutes.GET("/:id/results", handler.GetLatestResults())
	endpointRoutes.GET("/:id/results/export", handler.ExportResultsToExcelFile())
	endpointRoutes.GET("/:id/uptime", handler.GetEndpointUptimePercentage())
}

func AddHealthRoutes(r *gin.Engine, handler handler.HealthHandler) {
	r.GET("/api/health", handler.Health())
}

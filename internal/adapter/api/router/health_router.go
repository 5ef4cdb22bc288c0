package router

import (
	"github.com/labstack/echo/v4"

	"mirnito/internal/adapter/api/handler"
	"mirnito/internal/infrastructure/metrics"
)

func SetupHealthRouter(e *echo.Echo, healthHandler *handler.HealthHandler) {
	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/metrics", metrics.Handler())
}

package app

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sastrawinata/kalenda/internal/middleware"
	"github.com/sastrawinata/kalenda/internal/plugins/convertapi"
)

// RegisterRoutes sets up all application routes. It registers public routes
// directly and delegates to each plugin's route registration function.
//
// This is the single place where all routes are aggregated. When a new
// plugin is added, its routes are registered here.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// Health check endpoint for Docker health monitoring. Redis is optional
	// infrastructure, so its absence does not fail the check.
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- API Routes ---
	// REST API for browser widgets and external clients, rate limited per IP.
	api := e.Group("/api/v1",
		middleware.RateLimit(a.Config.RateLimit.MaxRequests, a.Config.RateLimit.Window),
	)

	convertPlugin := convertapi.New(a.Redis, a.Config)
	convertPlugin.RegisterRoutes(api)
}

package convertapi

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes adds the conversion API endpoints to the given group.
// The group is expected to be /api/v1 with rate limiting already applied.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/convert", h.Convert)
	g.GET("/convert/boundaries", h.Boundaries)
	g.GET("/calendars", h.ListCalendars)
}

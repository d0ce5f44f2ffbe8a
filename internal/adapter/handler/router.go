package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devpulse-team/devpulse/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg           *config.Config
	reportHandler *Report
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, reportHandler *Report) *Router {
	return &Router{
		cfg:           cfg,
		reportHandler: reportHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")
	rt.setupReportRoutes(v1)
}

func (rt *Router) setupReportRoutes(g *echo.Group) {
	reports := g.Group("/reports")
	reports.GET("/latest", rt.reportHandler.Latest)

	transcripts := g.Group("/transcripts")
	transcripts.POST("/analyze", rt.reportHandler.AnalyzeTranscript)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}

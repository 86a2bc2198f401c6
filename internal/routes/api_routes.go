package routes

import (
	"github.com/DiegoCorrea07/CoreMVC/internal/api"
	"github.com/DiegoCorrea07/CoreMVC/internal/metrics"
	"github.com/DiegoCorrea07/CoreMVC/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies) {

	covSvc := deps.Services.Coverage

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))
		v1.Use(middleware.RateLimitMiddleware)

		v1.Route("/coverage", func(cov chi.Router) {
			cov.Get("/dashboard", api.CoverageDashboardHandler(covSvc))
			cov.Get("/routes/{event_route_id}", api.RouteDetailHandler(covSvc))
			cov.Get("/routes/{event_route_id}/alerts", api.RouteAlertsHandler(covSvc))
		})
	})
}

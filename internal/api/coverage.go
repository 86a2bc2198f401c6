package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DiegoCorrea07/CoreMVC/internal/services"

	"github.com/go-chi/chi/v5"
)

// CoverageDashboardHandler handles GET /api/v1/coverage/dashboard.
// Query parameters: event_id (optional), status (optional, case-insensitive
// status label), page (default 1), limit (default 10). Malformed parameters
// are rejected before any computation runs.
func CoverageDashboardHandler(covSvc *services.CoverageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var eventID *int64
		if qs := r.URL.Query().Get("event_id"); qs != "" {
			id, err := strconv.ParseInt(qs, 10, 64)
			if err != nil {
				respondWithError(w, initTime, http.StatusBadRequest, "Invalid event_id parameter")
				return
			}
			eventID = &id
		}

		page := 1
		if qs := r.URL.Query().Get("page"); qs != "" {
			p, err := strconv.Atoi(qs)
			if err != nil || p < 1 {
				respondWithError(w, initTime, http.StatusBadRequest, "Invalid page parameter")
				return
			}
			page = p
		}

		limit := 10
		if qs := r.URL.Query().Get("limit"); qs != "" {
			l, err := strconv.Atoi(qs)
			if err != nil || l < 1 {
				respondWithError(w, initTime, http.StatusBadRequest, "Invalid limit parameter")
				return
			}
			limit = l
		}

		statusFilter := r.URL.Query().Get("status")

		dto, err := covSvc.CalculateCoverage(r.Context(), eventID, statusFilter, page, limit)
		if err != nil {
			respondWithError(w, initTime, http.StatusInternalServerError, err.Error())
			return
		}

		respondWithSuccess(w, initTime, "Coverage dashboard computed", dto)
	}
}

// RouteDetailHandler handles GET /api/v1/coverage/routes/{event_route_id}.
func RouteDetailHandler(covSvc *services.CoverageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventRouteID, err := strconv.ParseInt(chi.URLParam(r, "event_route_id"), 10, 64)
		if err != nil {
			respondWithError(w, initTime, http.StatusBadRequest, "Invalid event_route_id parameter")
			return
		}

		dto, err := covSvc.GetRouteDetail(r.Context(), eventRouteID)
		if errors.Is(err, services.ErrEventRouteNotFound) {
			respondWithError(w, initTime, http.StatusNotFound, "Event route not found")
			return
		}
		if err != nil {
			respondWithError(w, initTime, http.StatusInternalServerError, err.Error())
			return
		}

		respondWithSuccess(w, initTime, "Route detail fetched", dto)
	}
}

// RouteAlertsHandler handles GET /api/v1/coverage/routes/{event_route_id}/alerts.
func RouteAlertsHandler(covSvc *services.CoverageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventRouteID, err := strconv.ParseInt(chi.URLParam(r, "event_route_id"), 10, 64)
		if err != nil {
			respondWithError(w, initTime, http.StatusBadRequest, "Invalid event_route_id parameter")
			return
		}

		alerts, err := covSvc.GetRouteAlerts(r.Context(), eventRouteID)
		if errors.Is(err, services.ErrEventRouteNotFound) {
			respondWithError(w, initTime, http.StatusNotFound, "Event route not found")
			return
		}
		if err != nil {
			respondWithError(w, initTime, http.StatusInternalServerError, err.Error())
			return
		}

		respondWithSuccess(w, initTime, "Alerts fetched", alerts)
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DiegoCorrea07/CoreMVC/internal/common"
	"github.com/DiegoCorrea07/CoreMVC/internal/constants"
	"github.com/DiegoCorrea07/CoreMVC/internal/logging"
	"github.com/DiegoCorrea07/CoreMVC/internal/metrics"
	"github.com/DiegoCorrea07/CoreMVC/internal/models/dtos"
	"github.com/DiegoCorrea07/CoreMVC/internal/models/entities"
	gormModels "github.com/DiegoCorrea07/CoreMVC/internal/models/gorm"
)

// ErrEventRouteNotFound signals that a requested event-route id has no
// matching row, as opposed to one that exists with zero demand or capacity.
var ErrEventRouteNotFound = errors.New("event route not found")

// CoverageReader supplies event-route reference data and aggregated flight
// capacity.
type CoverageReader interface {
	ListCoverage(ctx context.Context, eventID *int64) ([]entities.EventRouteCoverageRow, error)
	GetDetail(ctx context.Context, eventRouteID int64) (*entities.EventRouteDetailRow, error)
	CapacityByWeekday(ctx context.Context, eventRouteID int64, from, to time.Time) (map[int]int, error)
}

// SnapshotRepository persists coverage snapshots.
type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *gormModels.RealCoverage) error
	GetLatestForEventRoute(ctx context.Context, eventRouteID int64) (*gormModels.RealCoverage, error)
}

// AlertRepository persists coverage alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *gormModels.CoverageAlert) error
	ListForEventRoute(ctx context.Context, eventRouteID int64) ([]gormModels.CoverageAlert, error)
}

// CoverageService computes flight-capacity coverage against estimated
// demand, records snapshots and alerts for displayed dashboard rows, and
// builds the per-route detail view.
type CoverageService struct {
	routes       CoverageReader
	snapshots    SnapshotRepository
	alerts       AlertRepository
	cache        common.CacheInterface
	metrics      *metrics.MetricsRegistry
	recordOnView bool
}

func NewCoverageService(
	routes CoverageReader,
	snapshots SnapshotRepository,
	alerts AlertRepository,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
	recordOnView bool,
) *CoverageService {
	return &CoverageService{
		routes:       routes,
		snapshots:    snapshots,
		alerts:       alerts,
		cache:        cache,
		metrics:      metricsReg,
		recordOnView: recordOnView,
	}
}

// CalculateCoverage computes coverage for every event-route in scope,
// filters by status, paginates, and persists a snapshot (plus alert when
// coverage is inadequate) for each row of the returned page. A nil eventID
// means all event-routes across all events.
func (svc *CoverageService) CalculateCoverage(ctx context.Context, eventID *int64, statusFilter string, page, limit int) (*dtos.DashboardDto, error) {

	rows, err := svc.routes.ListCoverage(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event route coverage: %w", err)
	}

	computedAt := time.Now()
	records := make([]dtos.RouteCoverage, 0, len(rows))
	for _, row := range rows {
		pct := 100.0
		if row.EstimatedDemand > 0 {
			pct = float64(row.RealCapacity) / row.EstimatedDemand * 100
		}
		pct = common.Round2(pct)

		records = append(records, dtos.RouteCoverage{
			ID:              row.ID,
			RouteName:       row.Origin + "-" + row.Destination,
			EventName:       row.EventName,
			EstimatedDemand: row.EstimatedDemand,
			RealCapacity:    float64(row.RealCapacity),
			CoveragePct:     pct,
			Status:          string(StatusForPercentage(pct)),
			ComputedAt:      computedAt.Format(time.RFC3339),
		})
	}

	if svc.metrics != nil {
		svc.metrics.CoverageComputationsTotal.Add(float64(len(records)))
	}

	filtered := records
	if statusFilter != "" {
		filtered = make([]dtos.RouteCoverage, 0, len(records))
		for _, rec := range records {
			if strings.EqualFold(rec.Status, statusFilter) {
				filtered = append(filtered, rec)
			}
		}
	}

	summary := summarize(filtered)

	totalItems := len(filtered)
	totalPages := (totalItems + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * limit
	end := start + limit
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}
	pageRows := filtered[start:end]

	// Snapshot and alert writes are tied to what was actually displayed,
	// not to everything computed.
	if svc.recordOnView {
		svc.recordDisplayedRows(ctx, pageRows)
	}

	return &dtos.DashboardDto{
		Rows:       pageRows,
		Summary:    summary,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}, nil
}

func summarize(records []dtos.RouteCoverage) dtos.SummaryMetrics {
	total := len(records)
	summary := dtos.SummaryMetrics{TotalRoutes: total}
	if total == 0 {
		return summary
	}

	var covered, partial, critical int
	for _, rec := range records {
		switch constants.CoverageStatus(rec.Status) {
		case constants.StatusCovered:
			covered++
		case constants.StatusPartial:
			partial++
		case constants.StatusCritical:
			critical++
		}
	}

	summary.CoveredPct = common.Round2(float64(covered) / float64(total) * 100)
	summary.PartialPct = common.Round2(float64(partial) / float64(total) * 100)
	summary.CriticalPct = common.Round2(float64(critical) / float64(total) * 100)
	return summary
}

// recordDisplayedRows persists one snapshot per displayed row. A failed
// write is logged and counted but never aborts the remaining rows; the
// dashboard response is the primary deliverable, the writes a side effect.
func (svc *CoverageService) recordDisplayedRows(ctx context.Context, pageRows []dtos.RouteCoverage) {
	for _, rec := range pageRows {
		if err := svc.recordRow(ctx, rec); err != nil {
			logging.WithEventRoute(rec.ID, rec.RouteName).Errorw(
				"coverage snapshot write failed",
				"error", err.Error(),
			)
			if svc.metrics != nil {
				svc.metrics.SnapshotFailuresTotal.Inc()
			}
		}
	}
}

// recordRow writes the snapshot first; the alert references the id the
// insert assigned, so the order is fixed.
func (svc *CoverageService) recordRow(ctx context.Context, rec dtos.RouteCoverage) error {
	snapshot := &gormModels.RealCoverage{
		EventRouteID: rec.ID,
		RealCapacity: int(rec.RealCapacity),
		CoveragePct:  rec.CoveragePct,
		Status:       rec.Status,
		ComputedAt:   time.Now(),
	}
	if err := svc.snapshots.Create(ctx, snapshot); err != nil {
		return err
	}
	if svc.metrics != nil {
		svc.metrics.SnapshotsWrittenTotal.Inc()
	}

	var kind constants.AlertKind
	var severity string
	switch constants.CoverageStatus(rec.Status) {
	case constants.StatusCritical:
		kind, severity = constants.AlertKindRed, "CRÍTICA"
	case constants.StatusPartial:
		kind, severity = constants.AlertKindYellow, "PARCIAL"
	default:
		// Full coverage never raises an alert.
		return nil
	}

	alert := &gormModels.CoverageAlert{
		CoverageID:  snapshot.ID,
		Kind:        string(kind),
		Description: alertDescription(rec, severity),
		GeneratedAt: time.Now(),
	}
	if err := svc.alerts.Create(ctx, alert); err != nil {
		return err
	}
	if svc.metrics != nil {
		svc.metrics.AlertsGeneratedTotal.WithLabelValues(string(kind)).Inc()
	}
	return nil
}

func alertDescription(rec dtos.RouteCoverage, severity string) string {
	return fmt.Sprintf("La cobertura para la ruta '%s' en el evento '%s' es %s (%.2f%%). Demanda: %s, Capacidad: %s.",
		rec.RouteName,
		rec.EventName,
		severity,
		rec.CoveragePct,
		common.FormatAmount(rec.EstimatedDemand),
		common.FormatAmount(rec.RealCapacity),
	)
}

// GetRouteDetail builds the detail view for one event-route: top-line
// figures from the most recent persisted snapshot and a per-weekday
// capacity distribution over the event window.
func (svc *CoverageService) GetRouteDetail(ctx context.Context, eventRouteID int64) (*dtos.RouteDetailDto, error) {

	detail, err := svc.lookupDetail(ctx, eventRouteID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrEventRouteNotFound
	}

	latest, err := svc.snapshots.GetLatestForEventRoute(ctx, eventRouteID)
	if err != nil {
		return nil, err
	}

	// A route with no snapshot history shows no historical figures, even
	// when flights exist.
	offeredCapacity := 0.0
	coveragePct := 0.0
	status := string(constants.StatusNoData)
	if latest != nil {
		offeredCapacity = float64(latest.RealCapacity)
		coveragePct = latest.CoveragePct
		status = latest.Status
	}

	from := common.StartOfDay(detail.EventStart)
	to := common.EndOfDay(detail.EventEnd)
	weekly, err := svc.routes.CapacityByWeekday(ctx, eventRouteID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate weekday capacity: %w", err)
	}

	daily := make([]dtos.DailyCoverage, 0, len(constants.WeekdayNames))
	for dow, name := range constants.WeekdayNames {
		dayPct := 0.0
		if detail.EstimatedDemand > 0 {
			dayPct = common.Round2(float64(weekly[dow]) / detail.EstimatedDemand * 100)
		}
		daily = append(daily, dtos.DailyCoverage{Day: name, Coverage: dayPct})
	}

	return &dtos.RouteDetailDto{
		ID:              detail.ID,
		RouteName:       detail.Origin + " - " + detail.Destination,
		Status:          status,
		EventName:       detail.EventName,
		EventStartDate:  detail.EventStart.Format("2006-01-02"),
		EventEndDate:    detail.EventEnd.Format("2006-01-02"),
		EstimatedDemand: detail.EstimatedDemand,
		OfferedCapacity: offeredCapacity,
		CoveragePct:     coveragePct,
		DailyCoverage:   daily,
	}, nil
}

// GetRouteAlerts lists every alert raised for an event-route's snapshots.
func (svc *CoverageService) GetRouteAlerts(ctx context.Context, eventRouteID int64) ([]dtos.AlertDto, error) {

	detail, err := svc.lookupDetail(ctx, eventRouteID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrEventRouteNotFound
	}

	alerts, err := svc.alerts.ListForEventRoute(ctx, eventRouteID)
	if err != nil {
		return nil, err
	}

	result := make([]dtos.AlertDto, 0, len(alerts))
	for _, alert := range alerts {
		result = append(result, dtos.AlertDto{
			ID:          alert.ID,
			CoverageID:  alert.CoverageID,
			Kind:        alert.Kind,
			Description: alert.Description,
			GeneratedAt: alert.GeneratedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

// lookupDetail reads the event-route reference row through the cache.
// Event-routes are reference data owned elsewhere, so a short TTL is safe.
func (svc *CoverageService) lookupDetail(ctx context.Context, eventRouteID int64) (*entities.EventRouteDetailRow, error) {
	if svc.cache == nil {
		return svc.routes.GetDetail(ctx, eventRouteID)
	}

	key := fmt.Sprintf("%s%d", constants.CachePrefixEventRoute, eventRouteID)
	val, err := svc.cache.GetOrSet(key, 5*time.Minute, func() (any, error) {
		return svc.routes.GetDetail(ctx, eventRouteID)
	})
	if err != nil {
		return nil, err
	}

	if detail, ok := val.(*entities.EventRouteDetailRow); ok {
		return detail, nil
	}
	// Cache backends that round-trip through JSON lose the concrete type;
	// fall back to a direct read.
	return svc.routes.GetDetail(ctx, eventRouteID)
}

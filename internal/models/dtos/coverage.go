package dtos

// JSON keys keep the original dashboard client contract, which mixes
// Spanish field names on the dashboard rows with English ones on the
// detail view.

// RouteCoverage is one computed dashboard row.
type RouteCoverage struct {
	ID              int64   `json:"id"`
	RouteName       string  `json:"nombre_ruta"`
	EventName       string  `json:"nombre_evento"`
	EstimatedDemand float64 `json:"demanda_estimada"`
	RealCapacity    float64 `json:"capacidad_real"`
	CoveragePct     float64 `json:"porcentaje_cobertura"`
	Status          string  `json:"estado_cobertura"`
	ComputedAt      string  `json:"fecha_calculo"`
}

// SummaryMetrics describes the filtered set the page was sliced from.
type SummaryMetrics struct {
	CoveredPct  float64 `json:"cubiertas"`
	PartialPct  float64 `json:"parciales"`
	CriticalPct float64 `json:"criticas"`
	TotalRoutes int     `json:"total_routes"`
}

// DashboardDto is the paged dashboard payload.
type DashboardDto struct {
	Rows       []RouteCoverage `json:"dashboard_data"`
	Summary    SummaryMetrics  `json:"summary_metrics"`
	TotalPages int             `json:"total_pages"`
	TotalItems int             `json:"total_items"`
}

// DailyCoverage is one weekday bucket of the detail view. All seven days
// are always present, Sunday first.
type DailyCoverage struct {
	Day      string  `json:"day"`
	Coverage float64 `json:"coverage"`
}

// RouteDetailDto is the single-route detail payload. Top-line figures come
// from the most recent persisted snapshot, not a fresh computation.
type RouteDetailDto struct {
	ID              int64           `json:"id"`
	RouteName       string          `json:"route_name"`
	Status          string          `json:"status"`
	EventName       string          `json:"event_name"`
	EventStartDate  string          `json:"event_start_date"`
	EventEndDate    string          `json:"event_end_date"`
	EstimatedDemand float64         `json:"demanda_estimada"`
	OfferedCapacity float64         `json:"capacidad_ofrecida"`
	CoveragePct     float64         `json:"porcentaje_cobertura"`
	DailyCoverage   []DailyCoverage `json:"daily_coverage"`
}

// AlertDto is one persisted coverage alert.
type AlertDto struct {
	ID          int64  `json:"id"`
	CoverageID  int64  `json:"cobertura_id"`
	Kind        string `json:"tipo_alerta"`
	Description string `json:"descripcion"`
	GeneratedAt string `json:"fecha_generacion"`
}

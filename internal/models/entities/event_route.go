package entities

import "time"

// EventRouteCoverageRow is one event-route with its offered capacity already
// aggregated, as returned by the dashboard listing queries.
type EventRouteCoverageRow struct {
	ID              int64   `db:"id"`
	EstimatedDemand float64 `db:"demanda_estimada"`
	Origin          string  `db:"origen"`
	Destination     string  `db:"destino"`
	EventName       string  `db:"nombre_evento"`
	RealCapacity    int     `db:"capacidad_real"`
}

// EventRouteDetailRow carries the denormalized route and event data needed
// for the detail view, including the event window bounding flight queries.
type EventRouteDetailRow struct {
	ID              int64     `db:"id"`
	EstimatedDemand float64   `db:"demanda_estimada"`
	Origin          string    `db:"origen"`
	Destination     string    `db:"destino"`
	EventName       string    `db:"nombre_evento"`
	EventStart      time.Time `db:"fecha_inicio"`
	EventEnd        time.Time `db:"fecha_fin"`
}

// WeekdayCapacityRow is one day-of-week capacity bucket (0=Sunday..6=Saturday).
type WeekdayCapacityRow struct {
	DayOfWeek int `db:"day_of_week"`
	Capacity  int `db:"capacidad"`
}

package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/DiegoCorrea07/CoreMVC/internal/constants"
	"github.com/DiegoCorrea07/CoreMVC/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// EventRouteRepository reads event-route reference data and aggregated
// flight capacity. All methods are read-only.
type EventRouteRepository struct {
	db *sqlx.DB
}

func NewEventRouteRepository(db *sqlx.DB) *EventRouteRepository {
	return &EventRouteRepository{db}
}

// ListCoverage returns every event-route in scope with its offered capacity
// summed. A nil eventID widens the scope to all events. Routes without any
// flights come back with capacity 0. Rows are scanned one at a time so a
// global scope does not materialize the whole result set inside the driver.
func (r *EventRouteRepository) ListCoverage(ctx context.Context, eventID *int64) ([]entities.EventRouteCoverageRow, error) {

	var rows *sqlx.Rows
	var err error

	if eventID != nil {
		rows, err = r.db.QueryxContext(ctx, constants.ListEventRouteCoverageByEvent, *eventID)
	} else {
		rows, err = r.db.QueryxContext(ctx, constants.ListEventRouteCoverage)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entities.EventRouteCoverageRow
	for rows.Next() {
		var row entities.EventRouteCoverageRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetDetail fetches one event-route with its route and event denormalized.
// Returns (nil, nil) when the id does not exist.
func (r *EventRouteRepository) GetDetail(ctx context.Context, eventRouteID int64) (*entities.EventRouteDetailRow, error) {

	var row entities.EventRouteDetailRow

	err := r.db.QueryRowxContext(ctx, constants.GetEventRouteDetail, eventRouteID).StructScan(&row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// CapacityByWeekday sums offered capacity per departure day of week for one
// event-route, restricted to departures inside [from, to]. Days without
// flights are absent from the map; callers fill the missing buckets.
func (r *EventRouteRepository) CapacityByWeekday(ctx context.Context, eventRouteID int64, from, to time.Time) (map[int]int, error) {

	rows, err := r.db.QueryxContext(ctx, constants.CapacityByWeekday, eventRouteID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	capacities := make(map[int]int)
	for rows.Next() {
		var row entities.WeekdayCapacityRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		capacities[row.DayOfWeek] = row.Capacity
	}
	return capacities, rows.Err()
}

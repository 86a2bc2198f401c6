package services

import (
	"math"

	"github.com/DiegoCorrea07/CoreMVC/internal/constants"
)

// statusBand is one half-open percentage range [min, max) mapped to a
// coverage status label.
type statusBand struct {
	min    float64
	max    float64
	status constants.CoverageStatus
}

// statusBands are evaluated in order; the first matching band wins. The
// bands are disjoint and cover every non-negative percentage.
var statusBands = []statusBand{
	{min: 0, max: 70, status: constants.StatusCritical},
	{min: 70, max: 100, status: constants.StatusPartial},
	{min: 100, max: math.Inf(1), status: constants.StatusCovered},
}

// StatusForPercentage maps a coverage percentage to its status label.
func StatusForPercentage(pct float64) constants.CoverageStatus {
	for _, band := range statusBands {
		if pct >= band.min && pct < band.max {
			return band.status
		}
	}
	return constants.StatusCovered
}

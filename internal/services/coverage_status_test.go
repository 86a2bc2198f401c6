package services

import (
	"testing"

	"github.com/DiegoCorrea07/CoreMVC/internal/constants"
)

func TestStatusForPercentage_Boundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want constants.CoverageStatus
	}{
		{0, constants.StatusCritical},
		{35.5, constants.StatusCritical},
		{69.99, constants.StatusCritical},
		{70.00, constants.StatusPartial},
		{85, constants.StatusPartial},
		{99.99, constants.StatusPartial},
		{100.00, constants.StatusCovered},
		{150, constants.StatusCovered},
		{1200.75, constants.StatusCovered},
	}

	for _, c := range cases {
		if got := StatusForPercentage(c.pct); got != c.want {
			t.Errorf("StatusForPercentage(%v) = %q, want %q", c.pct, got, c.want)
		}
	}
}

func TestStatusForPercentage_EveryPercentageHasExactlyOneBand(t *testing.T) {
	for pct := 0.0; pct <= 200.0; pct += 0.25 {
		matches := 0
		for _, band := range statusBands {
			if pct >= band.min && pct < band.max {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("percentage %v matched %d bands, want exactly 1", pct, matches)
		}
	}
}

package common

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// Round2 rounds to two decimal places. All percentages stored or returned
// by the coverage engine pass through here so repeated computations agree.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders a demand or capacity figure without trailing zeros,
// matching the dashboard's numeric display.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StartOfDay returns t truncated to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
// Event dates carry no time component, so the query window has to widen
// to whole days.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Package forecast matches a target instant against a sequence of
// time-bucketed forecast periods.
package forecast

import (
	"time"

	"classweather.app/models"
)

// ClosestPeriod returns the period whose start time minimizes the absolute
// distance to target. Both sides are normalized to UTC before comparison, so
// the timezone each instant was expressed in does not affect the result.
// Period order is treated as arbitrary: every entry is scanned. On an exact
// tie the earlier-indexed period wins. Periods with unparseable start times
// are skipped; the second return value is false when no period matched.
func ClosestPeriod(periods []models.ForecastPeriod, target time.Time) (*models.ForecastPeriod, bool) {
	targetUTC := target.UTC()

	var closest *models.ForecastPeriod
	var smallest time.Duration

	for i := range periods {
		start, err := time.Parse(time.RFC3339, periods[i].StartTime)
		if err != nil {
			continue
		}

		diff := start.UTC().Sub(targetUTC)
		if diff < 0 {
			diff = -diff
		}

		if closest == nil || diff < smallest {
			closest = &periods[i]
			smallest = diff
		}
	}

	return closest, closest != nil
}

// Package schedule computes the next concrete occurrence of a weekly
// recurring meeting pattern in a fixed local timezone.
package schedule

import (
	"time"

	"classweather.app/models"
)

var weekdays = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
	"Sunday":    time.Sunday,
}

// NextOccurrence returns the earliest future occurrence across all meetings
// relative to now. The returned instant carries now's location. A meeting
// whose time on the current day has already passed (or is exactly now) rolls
// over to the same weekday next week, so the result is always strictly after
// now. Unrecognized weekday labels are skipped. The second return value is
// false when no candidate occurrence exists.
func NextOccurrence(meetings []models.WeeklyMeeting, now time.Time) (time.Time, bool) {
	var next time.Time
	found := false

	for _, meeting := range meetings {
		for _, day := range meeting.Days {
			weekday, ok := weekdays[day]
			if !ok {
				continue
			}

			offset := (int(weekday) - int(now.Weekday()) + 7) % 7

			candidate := time.Date(now.Year(), now.Month(), now.Day(),
				meeting.Hour, meeting.Minute, 0, 0, now.Location())
			if offset == 0 && !candidate.After(now) {
				offset = 7
			}
			candidate = candidate.AddDate(0, 0, offset)

			if !found || candidate.Before(next) {
				next = candidate
				found = true
			}
		}
	}

	return next, found
}

// TruncateToHour zeroes the minutes, seconds and sub-seconds of t while
// preserving its wall-clock date, hour and location. Used to derive the
// forecast lookup bucket from a resolved meeting instant.
func TruncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classweather.app/models"
)

func chicago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	return loc
}

func TestNextOccurrence_SameDayBeforeMeeting(t *testing.T) {
	loc := chicago(t)
	// 2024-03-06 is a Wednesday
	now := time.Date(2024, 3, 6, 10, 0, 0, 0, loc)

	meetings := []models.WeeklyMeeting{
		{Days: []string{"Wednesday"}, Hour: 14, Minute: 0},
	}

	next, found := NextOccurrence(meetings, now)
	require.True(t, found)
	assert.Equal(t, time.Date(2024, 3, 6, 14, 0, 0, 0, loc), next)
}

func TestNextOccurrence_SameDayAfterMeeting(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2024, 3, 6, 15, 0, 0, 0, loc)

	meetings := []models.WeeklyMeeting{
		{Days: []string{"Wednesday"}, Hour: 14, Minute: 0},
	}

	next, found := NextOccurrence(meetings, now)
	require.True(t, found)
	assert.Equal(t, time.Date(2024, 3, 13, 14, 0, 0, 0, loc), next, "meeting already passed today, expected next week")
}

func TestNextOccurrence_ExactlyNowRollsOver(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2024, 3, 6, 14, 0, 0, 0, loc)

	meetings := []models.WeeklyMeeting{
		{Days: []string{"Wednesday"}, Hour: 14, Minute: 0},
	}

	next, found := NextOccurrence(meetings, now)
	require.True(t, found)
	assert.Equal(t, time.Date(2024, 3, 13, 14, 0, 0, 0, loc), next, "a meeting starting exactly now is not upcoming")
}

func TestNextOccurrence_NeverReturnsPast(t *testing.T) {
	loc := chicago(t)
	meetings := []models.WeeklyMeeting{
		{Days: []string{"Monday", "Wednesday", "Friday"}, Hour: 11, Minute: 0},
		{Days: []string{"Tuesday", "Thursday"}, Hour: 9, Minute: 30},
	}

	// sweep a full week of "now" values at odd times
	start := time.Date(2024, 3, 4, 0, 17, 0, 0, loc)
	for i := 0; i < 7*24; i++ {
		now := start.Add(time.Duration(i) * time.Hour)
		next, found := NextOccurrence(meetings, now)
		require.True(t, found)
		assert.True(t, next.After(now), "next occurrence %v must be after now %v", next, now)
	}
}

func TestNextOccurrence_PicksEarliestAcrossDays(t *testing.T) {
	loc := chicago(t)
	// Wednesday morning; Friday 9:00 comes before next Monday 11:00
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, loc)

	meetings := []models.WeeklyMeeting{
		{Days: []string{"Monday"}, Hour: 11, Minute: 0},
		{Days: []string{"Friday"}, Hour: 9, Minute: 0},
	}

	next, found := NextOccurrence(meetings, now)
	require.True(t, found)
	assert.Equal(t, time.Date(2024, 3, 8, 9, 0, 0, 0, loc), next)
}

func TestNextOccurrence_EmptyMeetings(t *testing.T) {
	now := time.Date(2024, 3, 6, 10, 0, 0, 0, chicago(t))

	_, found := NextOccurrence(nil, now)
	assert.False(t, found)

	_, found = NextOccurrence([]models.WeeklyMeeting{}, now)
	assert.False(t, found)
}

func TestNextOccurrence_MeetingWithoutDays(t *testing.T) {
	now := time.Date(2024, 3, 6, 10, 0, 0, 0, chicago(t))

	meetings := []models.WeeklyMeeting{{Hour: 14, Minute: 0}}
	_, found := NextOccurrence(meetings, now)
	assert.False(t, found)
}

func TestNextOccurrence_UnknownDayLabelsSkipped(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2024, 3, 6, 10, 0, 0, 0, loc)

	meetings := []models.WeeklyMeeting{
		{Days: []string{"Funday", "", "Wednesday"}, Hour: 14, Minute: 0},
	}

	next, found := NextOccurrence(meetings, now)
	require.True(t, found)
	assert.Equal(t, time.Date(2024, 3, 6, 14, 0, 0, 0, loc), next)

	meetings = []models.WeeklyMeeting{{Days: []string{"Funday"}, Hour: 14, Minute: 0}}
	_, found = NextOccurrence(meetings, now)
	assert.False(t, found, "only unrecognized labels means no occurrence")
}

func TestNextOccurrence_ZeroesSeconds(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2024, 3, 6, 10, 42, 31, 999, loc)

	meetings := []models.WeeklyMeeting{
		{Days: []string{"Thursday"}, Hour: 8, Minute: 15},
	}

	next, found := NextOccurrence(meetings, now)
	require.True(t, found)
	assert.Equal(t, time.Date(2024, 3, 7, 8, 15, 0, 0, loc), next)
}

func TestNextOccurrence_AcrossDSTTransition(t *testing.T) {
	loc := chicago(t)
	// US DST starts 2024-03-10; Friday 2024-03-08 is still CST (-06:00),
	// the following Monday is CDT (-05:00)
	now := time.Date(2024, 3, 8, 12, 0, 0, 0, loc)

	meetings := []models.WeeklyMeeting{
		{Days: []string{"Monday"}, Hour: 9, Minute: 0},
	}

	next, found := NextOccurrence(meetings, now)
	require.True(t, found)
	assert.Equal(t, time.Date(2024, 3, 11, 9, 0, 0, 0, loc), next)

	_, offset := next.Zone()
	assert.Equal(t, -5*60*60, offset, "occurrence after the transition must be in daylight time")
	assert.Equal(t, 9, next.Hour(), "wall-clock meeting hour is preserved across the transition")
}

func TestTruncateToHour(t *testing.T) {
	loc := chicago(t)
	meeting := time.Date(2024, 3, 6, 11, 30, 45, 123, loc)

	bucket := TruncateToHour(meeting)
	assert.Equal(t, time.Date(2024, 3, 6, 11, 0, 0, 0, loc), bucket)
	assert.Equal(t, loc, bucket.Location())
}

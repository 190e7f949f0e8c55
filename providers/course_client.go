package providers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"classweather.app/config"
	"classweather.app/errors"
	"classweather.app/models"
)

// dayCodes maps the single-character day-of-week tokens used by the course
// microservice to full weekday names.
var dayCodes = map[rune]string{
	'M': "Monday",
	'T': "Tuesday",
	'W': "Wednesday",
	'R': "Thursday",
	'F': "Friday",
	'S': "Saturday",
	'U': "Sunday",
}

// CourseClient fetches weekly meeting schedules from the course microservice
type CourseClient struct {
	baseURL string
	client  *http.Client
}

// NewCourseClient creates a new course microservice client
func NewCourseClient(config *config.CoursesConfig) *CourseClient {
	return &CourseClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// GetSchedule retrieves the weekly meeting pattern for a course. A non-200
// status means the course does not exist. A payload with an error field or
// without usable days and start time yields an empty schedule.
func (c *CourseClient) GetSchedule(subject, number string) ([]models.WeeklyMeeting, error) {
	url := fmt.Sprintf("%s/%s/%s/", c.baseURL, subject, number)

	resp, err := c.client.Get(url)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to get course data", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewNotFoundError("course not found")
	}

	// keys in the payload contain spaces ("Days of Week", "Start Time"),
	// so a tagged struct cannot represent them
	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode course data", err)
	}

	return convertSchedule(payload), nil
}

// convertSchedule converts the microservice payload into the WeeklyMeeting
// model: day codes become full weekday names and 12-hour start times become
// 24-hour. Unusable payloads yield an empty schedule rather than an error.
func convertSchedule(payload map[string]interface{}) []models.WeeklyMeeting {
	if _, hasError := payload["error"]; hasError {
		return nil
	}

	codes, _ := payload["Days of Week"].(string)
	startTime, _ := payload["Start Time"].(string)

	var days []string
	for _, code := range codes {
		if day, ok := dayCodes[code]; ok {
			days = append(days, day)
		}
	}

	hour, minute, ok := parseStartTime(startTime)
	if len(days) == 0 || !ok {
		return nil
	}

	return []models.WeeklyMeeting{
		{Days: days, Hour: hour, Minute: minute},
	}
}

// parseStartTime accepts "H:MM AM/PM" 12-hour form or "HH:MM" 24-hour form
func parseStartTime(s string) (hour, minute int, ok bool) {
	if s == "" {
		return 0, 0, false
	}

	if strings.Contains(s, " AM") || strings.Contains(s, " PM") {
		t, err := time.Parse("3:04 PM", s)
		if err != nil {
			return 0, 0, false
		}
		return t.Hour(), t.Minute(), true
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}

// Package models defines data structures used throughout the application
package models

// WeeklyMeeting represents one recurring class session pattern: the weekdays
// it meets on and its start time of day in 24-hour form
type WeeklyMeeting struct {
	Days   []string `json:"days"`
	Hour   int      `json:"hour"`
	Minute int      `json:"minute"`
}

// ForecastPeriod represents one time-bucketed entry of an hourly forecast
type ForecastPeriod struct {
	Number          int    `json:"number"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Temperature     int    `json:"temperature"`
	TemperatureUnit string `json:"temperatureUnit"`
	ShortForecast   string `json:"shortForecast"`
}

// CourseWeather is the composed response for a course and the value stored in
// the cache. Temperature holds either an integer degree value or the
// "forecast unavailable" sentinel string when the weather lookup degrades.
type CourseWeather struct {
	Course            string      `json:"course"`
	NextCourseMeeting string      `json:"nextCourseMeeting"`
	ForecastTime      string      `json:"forecastTime"`
	Temperature       interface{} `json:"temperature"`
	ShortForecast     string      `json:"shortForecast"`
}

// WeatherRequest represents the POST /weather request body
type WeatherRequest struct {
	Course string `json:"course" binding:"required"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

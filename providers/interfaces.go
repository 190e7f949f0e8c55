package providers

import (
	"classweather.app/models"
	"classweather.app/providers/cache"
)

// CourseScheduleProvider defines the interface for course schedule lookups
type CourseScheduleProvider interface {
	GetSchedule(subject, number string) ([]models.WeeklyMeeting, error)
}

// ForecastProvider defines the interface for hourly weather forecast lookups
type ForecastProvider interface {
	GetHourlyForecast() ([]models.ForecastPeriod, error)
}

// CacheInterface is an alias to avoid circular imports
type CacheInterface = cache.CacheInterface

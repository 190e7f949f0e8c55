package service

import (
	"log/slog"
	"time"
	"unicode"

	"classweather.app/errors"
	"classweather.app/forecast"
	"classweather.app/models"
	"classweather.app/providers"
	"classweather.app/schedule"
)

// ForecastUnavailable is the sentinel used for temperature and short forecast
// when the weather lookup degrades.
const ForecastUnavailable = "forecast unavailable"

const timeLayout = "2006-01-02 15:04:05"

// CourseWeatherService answers what the weather will be at the next scheduled
// meeting of a course. Results are memoized per normalized course key for the
// process lifetime.
type CourseWeatherService struct {
	courses   providers.CourseScheduleProvider
	forecasts providers.ForecastProvider
	cache     providers.CacheInterface
	location  *time.Location
	now       func() time.Time
}

// NewCourseWeatherService creates a new course weather service. The location
// is the fixed local timezone meeting times are computed in.
func NewCourseWeatherService(
	courses providers.CourseScheduleProvider,
	forecasts providers.ForecastProvider,
	cache providers.CacheInterface,
	location *time.Location,
) *CourseWeatherService {
	return &CourseWeatherService{
		courses:   courses,
		forecasts: forecasts,
		cache:     cache,
		location:  location,
		now:       time.Now,
	}
}

// WithClock overrides the service's clock, for deterministic tests
func (s *CourseWeatherService) WithClock(now func() time.Time) *CourseWeatherService {
	s.now = now
	return s
}

// GetCourseWeather resolves the next meeting of the given course and the
// forecast closest to it. Normalization failures and missing schedules are
// errors and nothing is cached for them; a failed weather lookup degrades to
// sentinel values and the degraded result is cached like any other.
func (s *CourseWeatherService) GetCourseWeather(rawCourse string) (*models.CourseWeather, error) {
	subject, number, err := NormalizeCourse(rawCourse)
	if err != nil {
		return nil, err
	}
	course := subject + " " + number

	if cached, found := s.cache.Get(course); found {
		slog.Debug("course weather served from cache", "course", course)
		return cached, nil
	}

	meetings, err := s.courses.GetSchedule(subject, number)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.location)
	nextMeeting, found := schedule.NextOccurrence(meetings, now)
	if !found {
		return nil, errors.NewNotFoundError("no upcoming meetings found for this course")
	}

	// forecast periods are hourly, so the lookup targets the top of the hour
	forecastTime := schedule.TruncateToHour(nextMeeting)

	result := &models.CourseWeather{
		Course:            course,
		NextCourseMeeting: nextMeeting.Format(timeLayout),
		ForecastTime:      forecastTime.Format(timeLayout),
		Temperature:       ForecastUnavailable,
		ShortForecast:     ForecastUnavailable,
	}

	periods, err := s.forecasts.GetHourlyForecast()
	if err != nil {
		slog.Warn("weather lookup degraded", "course", course, "error", err)
	} else if period, matched := forecast.ClosestPeriod(periods, forecastTime); matched {
		result.Temperature = period.Temperature
		result.ShortForecast = period.ShortForecast
	} else {
		slog.Warn("no usable forecast period", "course", course, "periods", len(periods))
	}

	s.cache.Set(course, result)
	slog.Info("course weather resolved", "course", course, "nextMeeting", result.NextCourseMeeting)

	return result, nil
}

// CacheSnapshot returns the full contents of the course weather cache
func (s *CourseWeatherService) CacheSnapshot() map[string]models.CourseWeather {
	return s.cache.Snapshot()
}

// NormalizeCourse splits a free-form course string into an uppercased subject
// and a three-digit number. Anything that is neither a letter nor a digit is
// discarded, so "cs340", "CS 340" and "cs-340" all normalize identically.
func NormalizeCourse(raw string) (subject, number string, err error) {
	var letters, digits []rune
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r):
			letters = append(letters, unicode.ToUpper(r))
		case unicode.IsDigit(r):
			digits = append(digits, r)
		}
	}

	if len(letters) == 0 || len(digits) != 3 {
		return "", "", errors.NewValidationError("invalid course format")
	}

	return string(letters), string(digits), nil
}

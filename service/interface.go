package service

import "classweather.app/models"

// CourseWeatherServiceInterface defines course weather operations for the API layer
type CourseWeatherServiceInterface interface {
	GetCourseWeather(rawCourse string) (*models.CourseWeather, error)
	CacheSnapshot() map[string]models.CourseWeather
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"classweather.app/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server  ServerConfig  `split_words:"true"`
	Courses CoursesConfig `split_words:"true"`
	Weather WeatherConfig `split_words:"true"`
	Cache   CacheConfig   `split_words:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"5000"`
}

// CoursesConfig contains settings for the course microservice
type CoursesConfig struct {
	BaseURL string `envconfig:"COURSES_MICROSERVICE_URL" required:"true"`
}

// WeatherConfig contains settings for the National Weather Service API and
// the fixed geographic point and local timezone forecasts are computed for
type WeatherConfig struct {
	BaseURL   string  `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weather.gov"`
	Latitude  float64 `envconfig:"WEATHER_LATITUDE" default:"40.11"`
	Longitude float64 `envconfig:"WEATHER_LONGITUDE" default:"-88.24"`
	Timezone  string  `envconfig:"LOCAL_TIMEZONE" default:"America/Chicago"`
}

// CacheConfig contains settings for the course weather cache backend
type CacheConfig struct {
	Type          string      `envconfig:"CACHE_TYPE" default:"memory"`
	EnableMetrics bool        `envconfig:"CACHE_METRICS_ENABLED" default:"true"`
	Redis         RedisConfig `split_words:"true"`
}

// RedisConfig contains Redis connection settings, used when CACHE_TYPE=redis
type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Courses.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// Validate checks course microservice configuration
func (c *CoursesConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.NewConfigurationError("COURSES_MICROSERVICE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return errors.NewConfigurationError("COURSES_MICROSERVICE_URL must start with http:// or https://", nil)
	}
	return nil
}

// Validate checks weather API configuration
func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.Latitude < -90 || w.Latitude > 90 {
		return errors.NewConfigurationError("WEATHER_LATITUDE must be between -90 and 90", nil)
	}
	if w.Longitude < -180 || w.Longitude > 180 {
		return errors.NewConfigurationError("WEATHER_LONGITUDE must be between -180 and 180", nil)
	}
	if _, err := w.Location(); err != nil {
		return errors.NewConfigurationError(
			fmt.Sprintf("LOCAL_TIMEZONE %q is not a valid IANA timezone", w.Timezone), err)
	}
	return nil
}

// Location resolves the configured local timezone
func (w *WeatherConfig) Location() (*time.Location, error) {
	return time.LoadLocation(w.Timezone)
}

// Validate checks cache configuration
func (c *CacheConfig) Validate() error {
	if c.Type != "memory" && c.Type != "redis" {
		return errors.NewConfigurationError("CACHE_TYPE must be either 'memory' or 'redis'", nil)
	}
	if c.Type == "redis" {
		if c.Redis.Addr == "" {
			return errors.NewConfigurationError("REDIS_ADDR cannot be empty", nil)
		}
		if c.Redis.DialTimeout < 1 || c.Redis.ReadTimeout < 1 || c.Redis.WriteTimeout < 1 {
			return errors.NewConfigurationError("Redis timeouts must be at least 1 second", nil)
		}
	}
	return nil
}

package app

import (
	"fmt"
	"log/slog"
	"time"

	"classweather.app/api"
	"classweather.app/config"
	"classweather.app/providers"
	"classweather.app/providers/cache"
	"classweather.app/service"
)

// Application represents the main application with all its dependencies
type Application struct {
	config *config.Config
	server *api.Server
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	location, err := app.config.Weather.Location()
	if err != nil {
		return fmt.Errorf("load local timezone: %w", err)
	}

	store, err := app.createCache()
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}

	courseClient := providers.NewCourseClient(&app.config.Courses)
	forecastProvider := providers.NewNWSProvider(&app.config.Weather)

	weatherService := service.NewCourseWeatherService(courseClient, forecastProvider, store, location)

	app.server = api.NewServer(app.config, weatherService)

	slog.Info("Services initialized successfully")
	return nil
}

// createCache builds the configured cache backend and wraps it with the
// typed course weather layer, with Prometheus instrumentation when enabled
func (app *Application) createCache() (providers.CacheInterface, error) {
	var backend cache.GenericCacheInterface

	switch app.config.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(&cache.RedisCacheConfig{
			Addr:         app.config.Cache.Redis.Addr,
			Password:     app.config.Cache.Redis.Password,
			DB:           app.config.Cache.Redis.DB,
			DialTimeout:  time.Duration(app.config.Cache.Redis.DialTimeout) * time.Second,
			ReadTimeout:  time.Duration(app.config.Cache.Redis.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(app.config.Cache.Redis.WriteTimeout) * time.Second,
		})
		if err != nil {
			return nil, err
		}
		backend = redisCache
	default:
		backend = cache.NewMemoryCache()
	}

	if app.config.Cache.EnableMetrics {
		backend = providers.NewInstrumentedCache(backend, app.config.Cache.Type)
	}

	slog.Info("Cache initialized", "type", app.config.Cache.Type, "metrics", app.config.Cache.EnableMetrics)
	return cache.NewCourseWeatherCache(backend), nil
}

// Start starts the application
func (app *Application) Start() error {
	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}

package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"classweather.app/config"
	weathererr "classweather.app/errors"
	"classweather.app/models"
	"classweather.app/service"
)

// Server represents the HTTP server and API handler
type Server struct {
	router         *gin.Engine
	config         *config.Config
	weatherService service.CourseWeatherServiceInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(config *config.Config, weatherService service.CourseWeatherServiceInterface) *Server {
	router := gin.Default()
	router.Use(requestIDMiddleware())

	server := &Server{
		router:         router,
		config:         config,
		weatherService: weatherService,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	s.router.POST("/weather", s.postWeather)
	s.router.GET("/weatherCache", s.getWeatherCache)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.ServeStaticFiles()
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) postWeather(c *gin.Context) {
	var req models.WeatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("invalid request format"))
		return
	}

	slog.Debug("Getting weather for course", "course", req.Course)
	weather, err := s.weatherService.GetCourseWeather(req.Course)
	if err != nil {
		slog.Error("Course weather error", "error", err, "course", req.Course)
		s.handleError(c, err)
		return
	}

	slog.Debug("Course weather result", "weather", weather, "course", req.Course)
	c.JSON(http.StatusOK, weather)
}

func (s *Server) getWeatherCache(c *gin.Context) {
	c.JSON(http.StatusOK, s.weatherService.CacheSnapshot())
}

// requestIDMiddleware tags every request and response with an identifier
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Set("requestID", requestID)
		c.Next()
	}
}

// handleError maps application errors to HTTP statuses. Anything unexpected
// becomes a 400 carrying the failure's message text, so no failure reaches
// the caller as a crash.
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *weathererr.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case weathererr.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case weathererr.NotFoundError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case weathererr.ExternalAPIError:
			statusCode = http.StatusServiceUnavailable
			message = "External service unavailable"
		case weathererr.ConfigurationError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		default:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		}
	} else {
		statusCode = http.StatusBadRequest
		message = err.Error()
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}

package providers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"classweather.app/config"
	"classweather.app/errors"
	"classweather.app/models"
)

// NWSProvider fetches hourly forecasts from the National Weather Service API
// for a fixed geographic point. The lookup is two-step: the points endpoint
// resolves the coordinates to an hourly-forecast resource, which is then
// fetched for its forecast periods.
type NWSProvider struct {
	baseURL   string
	latitude  float64
	longitude float64
	client    *http.Client
}

// NewNWSProvider creates a new National Weather Service forecast provider
func NewNWSProvider(config *config.WeatherConfig) *NWSProvider {
	return &NWSProvider{
		baseURL:   config.BaseURL,
		latitude:  config.Latitude,
		longitude: config.Longitude,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type pointsResponse struct {
	Properties struct {
		ForecastHourly string `json:"forecastHourly"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []models.ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

// GetHourlyForecast returns the hourly forecast periods for the configured
// point. Any failure at either step is an error; the caller decides whether
// to degrade rather than fail the request.
func (p *NWSProvider) GetHourlyForecast() ([]models.ForecastPeriod, error) {
	hourlyURL, err := p.resolveHourlyURL()
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Get(hourlyURL)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to get hourly forecast", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(
			fmt.Sprintf("forecast endpoint returned status code %d", resp.StatusCode), nil)
	}

	var forecast forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode forecast data", err)
	}

	return forecast.Properties.Periods, nil
}

func (p *NWSProvider) resolveHourlyURL() (string, error) {
	url := fmt.Sprintf("%s/points/%g,%g", p.baseURL, p.latitude, p.longitude)

	resp, err := p.client.Get(url)
	if err != nil {
		return "", errors.NewExternalAPIError("failed to resolve forecast point", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewExternalAPIError(
			fmt.Sprintf("points endpoint returned status code %d", resp.StatusCode), nil)
	}

	var points pointsResponse
	if err := json.NewDecoder(resp.Body).Decode(&points); err != nil {
		return "", errors.NewExternalAPIError("failed to decode points data", err)
	}

	if points.Properties.ForecastHourly == "" {
		return "", errors.NewExternalAPIError("points response missing hourly forecast URL", nil)
	}

	return points.Properties.ForecastHourly, nil
}

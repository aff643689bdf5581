// Package nws fetches the first forecast period for a point from the
// National Weather Service API: points/{lat},{lon} resolves a per-grid
// forecast URL, which yields the period list. A best-effort probe of the
// active-alerts endpoint flags severe weather.
package nws

import (
	"context"
	"fmt"

	"github.com/iron-24/ripper-report/internal/adapters/upstream"
	"github.com/iron-24/ripper-report/internal/domain"
)

type Client struct {
	base string
	u    *upstream.Client
}

func New(base, userAgent string) *Client {
	return &Client{base: base, u: upstream.New("nws", userAgent, 5)}
}

type pointResponse struct {
	Properties struct {
		Forecast string `json:"forecast"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []struct {
			Temperature   int    `json:"temperature"`
			ShortForecast string `json:"shortForecast"`
		} `json:"periods"`
	} `json:"properties"`
}

type alertResponse struct {
	Features []map[string]any `json:"features"`
}

// Forecast returns the first forecast period for (lat, lon). Both
// forecast steps must succeed; the alert probe may fail silently.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (domain.WeatherSummary, error) {
	var pt pointResponse
	pointURL := fmt.Sprintf("%s/points/%.4f,%.4f", c.base, lat, lon)
	if err := c.u.GetJSON(ctx, pointURL, &pt); err != nil {
		return domain.WeatherSummary{}, fmt.Errorf("nws points: %w", err)
	}
	if pt.Properties.Forecast == "" {
		return domain.WeatherSummary{}, fmt.Errorf("nws points: %w", domain.ErrNoResults)
	}

	var fc forecastResponse
	if err := c.u.GetJSON(ctx, pt.Properties.Forecast, &fc); err != nil {
		return domain.WeatherSummary{}, fmt.Errorf("nws forecast: %w", err)
	}
	periods := fc.Properties.Periods
	if len(periods) == 0 {
		return domain.WeatherSummary{}, fmt.Errorf("nws forecast: %w", domain.ErrNoResults)
	}

	w := domain.WeatherSummary{
		TempF:         periods[0].Temperature,
		ShortForecast: periods[0].ShortForecast,
		Available:     true,
	}

	var al alertResponse
	alertURL := fmt.Sprintf("%s/alerts/active?point=%.4f,%.4f", c.base, lat, lon)
	if err := c.u.GetJSON(ctx, alertURL, &al); err == nil && len(al.Features) > 0 {
		w.AlertActive = true
	}
	return w, nil
}

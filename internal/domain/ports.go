package domain

import (
	"context"
	"errors"
)

var (
	// ErrNoResults: an upstream answered but matched nothing.
	ErrNoResults = errors.New("no results")
	// ErrNoResorts: discovery found nothing and no fallback region applied.
	ErrNoResorts = errors.New("no resorts within radius")
	// ErrInvalidDates: end date before start date.
	ErrInvalidDates = errors.New("end date before start date")
)

// Geocoder resolves a free-text location to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (Location, error)
}

// POIIndex returns raw ski-area features within radiusMeters of a point.
// Elements are loosely typed payloads; mapping to Resort happens in app.
type POIIndex interface {
	SkiAreas(ctx context.Context, lat, lon, radiusMeters float64) ([]map[string]any, error)
}

// PostSource returns raw community post payloads for a search expression.
type PostSource interface {
	Search(ctx context.Context, query string, limit int) ([]map[string]any, error)
}

// ForecastSource resolves the current short forecast for a point.
type ForecastSource interface {
	Forecast(ctx context.Context, lat, lon float64) (WeatherSummary, error)
}

// Scorer turns a resort into a sentiment summary. Implementations must
// return NeutralSentiment alongside the error when the source fails, so
// callers can degrade without branching on the strategy in use.
type Scorer interface {
	Score(ctx context.Context, r Resort) (SentimentResult, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

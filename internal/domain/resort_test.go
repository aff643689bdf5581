package domain_test

import (
	"testing"
	"time"

	"github.com/iron-24/ripper-report/internal/domain"
)

func day(d int) time.Time { return time.Date(2026, 12, d, 0, 0, 0, 0, time.UTC) }

func TestTripParams_Days(t *testing.T) {
	cases := []struct {
		start, end time.Time
		want       int
	}{
		{day(20), day(21), 1},
		{day(20), day(22), 2},
		{day(20), day(20), 1}, // same-day trip still counts as one day
		{day(20), day(20).Add(36 * time.Hour), 2},
	}
	for _, c := range cases {
		p := domain.TripParams{Start: c.start, End: c.end}
		if got := p.Days(); got != c.want {
			t.Fatalf("Days(%v, %v) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestTripParams_Validate(t *testing.T) {
	p := domain.TripParams{Start: day(22), End: day(20)}
	if err := p.Validate(); err != domain.ErrInvalidDates {
		t.Fatalf("expected ErrInvalidDates, got %v", err)
	}
	p = domain.TripParams{Start: day(20), End: day(22)}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestWeatherSummary_String(t *testing.T) {
	w := domain.WeatherSummary{TempF: 28, ShortForecast: "Snow Showers", Available: true}
	if got := w.String(); got != "28°F – Snow Showers" {
		t.Fatalf("unexpected weather string: %q", got)
	}

	w.AlertActive = true
	if got := w.String(); got != "28°F – Snow Showers (active weather alert)" {
		t.Fatalf("unexpected alert string: %q", got)
	}

	if got := (domain.WeatherSummary{}).String(); got != "weather unavailable" {
		t.Fatalf("unexpected unavailable string: %q", got)
	}
}

func TestResort_SearchQuery(t *testing.T) {
	r := domain.Resort{Name: "Heavenly"}
	if r.SearchQuery() != "Heavenly" {
		t.Fatalf("expected name fallback")
	}
	r.Query = `heavenly OR "heavenly tahoe"`
	if r.SearchQuery() != `heavenly OR "heavenly tahoe"` {
		t.Fatalf("expected curated query")
	}
}

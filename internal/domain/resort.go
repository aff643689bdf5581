package domain

import (
	"fmt"
	"time"
)

// Location is a resolved free-text place query.
type Location struct {
	Query       string
	Lat, Lon    float64
	DisplayName string
}

// ResortSource marks where a discovered resort came from.
type ResortSource string

const (
	SourceOverpass ResortSource = "overpass"
	SourceFallback ResortSource = "fallback"
)

// Resort is one discovered ski area. Name is the join key for
// sentiment, weather and booking within a search result set.
type Resort struct {
	Name          string
	Lat, Lon      float64
	DistanceMiles float64
	Website       *string
	Phone         *string
	// Query is the community-post search expression for this resort.
	// Empty means "search by Name".
	Query  string
	Source ResortSource

	// Curated figures from the regional fallback table. Nil for
	// live-index resorts, which carry no pricing or terrain data.
	PassUSD     *int
	RentalUSD   *int
	AdvancedPct *int
}

// DailyCostUSD is the curated pass-plus-rental day cost, when known.
func (r Resort) DailyCostUSD() (int, bool) {
	if r.PassUSD == nil || r.RentalUSD == nil {
		return 0, false
	}
	return *r.PassUSD + *r.RentalUSD, true
}

// SearchQuery returns the post-search expression for the resort.
func (r Resort) SearchQuery() string {
	if r.Query != "" {
		return r.Query
	}
	return r.Name
}

// SentimentResult summarizes community posts about one resort.
// Score is a mean compound polarity in roughly [-1, 1].
type SentimentResult struct {
	Score       float64
	PositivePct int
	SampleCount int
	Label       string
}

// NeutralSentiment is returned when no usable posts exist or the
// post source is unreachable.
func NeutralSentiment() SentimentResult {
	return SentimentResult{Score: 0.0, PositivePct: 50, SampleCount: 0, Label: MoodLabel(0.0)}
}

// MoodLabel buckets a compound score into the display labels the
// dashboard shows next to the number.
func MoodLabel(score float64) string {
	switch {
	case score > 0.4:
		return "stoked"
	case score > 0.15:
		return "happy"
	case score > -0.15:
		return "neutral"
	case score > -0.4:
		return "meh"
	default:
		return "bummed"
	}
}

// WeatherSummary is the first forecast period for a point, or an
// unavailable marker when either upstream step failed.
type WeatherSummary struct {
	TempF         int
	ShortForecast string
	AlertActive   bool
	Available     bool
}

func (w WeatherSummary) String() string {
	if !w.Available {
		return "weather unavailable"
	}
	s := fmt.Sprintf("%d°F – %s", w.TempF, w.ShortForecast)
	if w.AlertActive {
		s += " (active weather alert)"
	}
	return s
}

// TripParams are the user-supplied trip inputs.
type TripParams struct {
	Start, End time.Time
	NeedLesson bool
	NeedRental bool
}

// Validate rejects a date range that ends before it starts.
func (p TripParams) Validate() error {
	if p.End.Before(p.Start) {
		return ErrInvalidDates
	}
	return nil
}

// Days is the trip length in whole days, rounded up, never below 1.
func (p TripParams) Days() int {
	h := p.End.Sub(p.Start).Hours()
	d := int(h / 24)
	if float64(d)*24 < h {
		d++
	}
	if d < 1 {
		d = 1
	}
	return d
}

// BookingLinks is the deterministic output of the URL generator.
type BookingLinks struct {
	LiftTicketURL    string
	LessonURL        *string
	RentalURL        *string
	PackageSearchURL string
	EstimatedTotal   int
	TripDays         int
}

// ResortPlan is one fully enriched result row.
type ResortPlan struct {
	Resort    Resort
	Sentiment SentimentResult
	Weather   WeatherSummary
	Booking   BookingLinks
}

// Plan is the result of one pipeline invocation.
type Plan struct {
	ID          string
	Location    Location
	RadiusMiles float64
	Params      TripParams
	Resorts     []ResortPlan
	GeneratedAt time.Time
}

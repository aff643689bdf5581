package app_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iron-24/ripper-report/internal/app"
	"github.com/iron-24/ripper-report/internal/domain"
)

func TestRenderReport(t *testing.T) {
	rental := "https://www.skiheavenly.com/plan-your-trip/equipment-rentals.aspx"
	plan := domain.Plan{
		ID:          "8b4f6e0a-0000-0000-0000-000000000000",
		Location:    domain.Location{Query: "Lake Tahoe, CA", DisplayName: "Lake Tahoe, California"},
		RadiusMiles: 20,
		Params: domain.TripParams{
			Start:      time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
			End:        time.Date(2026, 12, 22, 0, 0, 0, 0, time.UTC),
			NeedRental: true,
		},
		GeneratedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		Resorts: []domain.ResortPlan{
			{
				Resort:    domain.Resort{Name: "Heavenly", DistanceMiles: 12.3},
				Sentiment: domain.SentimentResult{Score: 0.412, PositivePct: 74, SampleCount: 25, Label: "stoked"},
				Weather:   domain.WeatherSummary{TempF: 28, ShortForecast: "Snow Showers", Available: true},
				Booking: domain.BookingLinks{
					LiftTicketURL:    "https://www.skiheavenly.com/plan-your-trip/lift-access/tickets.aspx",
					RentalURL:        &rental,
					PackageSearchURL: "https://www.liftopia.com/search?q=Heavenly",
					EstimatedTotal:   400,
					TripDays:         2,
				},
			},
		},
	}

	doc := app.RenderReport(plan)

	assert.Contains(t, doc, "Report ID:  8b4f6e0a")
	assert.Contains(t, doc, "Lake Tahoe, CA (Lake Tahoe, California)")
	assert.Contains(t, doc, "2026-12-20 to 2026-12-22 (2 day(s))")
	assert.Contains(t, doc, "Options:    rental")
	assert.Contains(t, doc, "1. Heavenly (12.3 mi)")
	assert.Contains(t, doc, "28°F – Snow Showers")
	assert.Contains(t, doc, "0.412 (74% positive, n=25) [stoked]")
	assert.Contains(t, doc, "Rentals:      https://www.skiheavenly.com")
	assert.Contains(t, doc, "Estimated total: $400")
	assert.NotContains(t, doc, "Lessons:")

	// live-index resorts have no curated figures, so no cost columns
	assert.NotContains(t, doc, "Day cost:")
	assert.NotContains(t, doc, "Terrain:")
}

func TestRenderReport_FallbackResortColumns(t *testing.T) {
	pass, rent, adv := 219, 55, 35
	plan := domain.Plan{
		ID:       "x",
		Location: domain.Location{Query: "Lake Tahoe, CA"},
		Params: domain.TripParams{
			Start: time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 12, 22, 0, 0, 0, 0, time.UTC),
		},
		Resorts: []domain.ResortPlan{
			{
				Resort: domain.Resort{
					Name: "Heavenly", DistanceMiles: 12.3,
					Source:  domain.SourceFallback,
					PassUSD: &pass, RentalUSD: &rent, AdvancedPct: &adv,
				},
				Sentiment: domain.NeutralSentiment(),
			},
		},
	}

	doc := app.RenderReport(plan)

	assert.Contains(t, doc, "Day cost:     $219 pass + $55 rental = $274/day")
	assert.Contains(t, doc, "Terrain:      35% advanced/expert")
}

func TestRenderReport_EmptyPlan(t *testing.T) {
	plan := domain.Plan{
		ID:       "x",
		Location: domain.Location{Query: "Nowhere"},
		Params: domain.TripParams{
			Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	doc := app.RenderReport(plan)
	assert.Contains(t, doc, "No resorts found")
	assert.Equal(t, 1, strings.Count(doc, "Options:"))
}

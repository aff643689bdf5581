package app

import (
	"fmt"
	"strings"

	"github.com/iron-24/ripper-report/internal/domain"
)

// RenderReport formats a plan as the downloadable plain-text link sheet:
// a header block, then one block per resort with its distance, weather,
// sentiment and booking links.
func RenderReport(p domain.Plan) string {
	var b strings.Builder

	b.WriteString("Ripper Report - resort link sheet\n")
	fmt.Fprintf(&b, "Report ID:  %s\n", p.ID)
	fmt.Fprintf(&b, "Generated:  %s\n", p.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "Location:   %s", p.Location.Query)
	if p.Location.DisplayName != "" && p.Location.DisplayName != p.Location.Query {
		fmt.Fprintf(&b, " (%s)", p.Location.DisplayName)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Radius:     %.1f miles\n", p.RadiusMiles)
	fmt.Fprintf(&b, "Dates:      %s to %s (%d day(s))\n",
		p.Params.Start.Format("2006-01-02"), p.Params.End.Format("2006-01-02"), p.Params.Days())
	fmt.Fprintf(&b, "Options:    %s\n", optionsLine(p.Params))
	b.WriteString(strings.Repeat("-", 60) + "\n")

	if len(p.Resorts) == 0 {
		b.WriteString("No resorts found. Try a larger radius or a different location.\n")
		return b.String()
	}

	for i, rp := range p.Resorts {
		fmt.Fprintf(&b, "%d. %s (%.1f mi)\n", i+1, rp.Resort.Name, rp.Resort.DistanceMiles)
		if total, ok := rp.Resort.DailyCostUSD(); ok {
			fmt.Fprintf(&b, "   Day cost:     $%d pass + $%d rental = $%d/day\n",
				*rp.Resort.PassUSD, *rp.Resort.RentalUSD, total)
		}
		if rp.Resort.AdvancedPct != nil {
			fmt.Fprintf(&b, "   Terrain:      %d%% advanced/expert\n", *rp.Resort.AdvancedPct)
		}
		fmt.Fprintf(&b, "   Weather:      %s\n", rp.Weather)
		fmt.Fprintf(&b, "   Sentiment:    %.3f (%d%% positive, n=%d) [%s]\n",
			rp.Sentiment.Score, rp.Sentiment.PositivePct, rp.Sentiment.SampleCount, rp.Sentiment.Label)
		fmt.Fprintf(&b, "   Lift tickets: %s\n", rp.Booking.LiftTicketURL)
		if rp.Booking.LessonURL != nil {
			fmt.Fprintf(&b, "   Lessons:      %s\n", *rp.Booking.LessonURL)
		}
		if rp.Booking.RentalURL != nil {
			fmt.Fprintf(&b, "   Rentals:      %s\n", *rp.Booking.RentalURL)
		}
		fmt.Fprintf(&b, "   Packages:     %s\n", rp.Booking.PackageSearchURL)
		fmt.Fprintf(&b, "   Estimated total: $%d\n", rp.Booking.EstimatedTotal)
		if i < len(p.Resorts)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func optionsLine(p domain.TripParams) string {
	var opts []string
	if p.NeedLesson {
		opts = append(opts, "lesson")
	}
	if p.NeedRental {
		opts = append(opts, "rental")
	}
	if len(opts) == 0 {
		return "none"
	}
	return strings.Join(opts, ", ")
}

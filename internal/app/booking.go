package app

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/iron-24/ripper-report/internal/domain"
)

// Fixed USD constants for the trip estimate. Rough planning numbers,
// not live pricing.
const (
	baseTicketUSD   = 150
	rentalPerDayUSD = 50
	lessonFlatUSD   = 120
)

// patternURL is one (pattern, template) pair. Patterns match as
// substrings of the normalized resort name. Table order is part of the
// contract: the first match wins, so more specific patterns go first.
// Templates take the start and end dates as %[1]s and %[2]s.
type patternURL struct {
	pattern  string
	template string
}

var ticketPatterns = []patternURL{
	{"heavenly", "https://www.skiheavenly.com/plan-your-trip/lift-access/tickets.aspx?startDate=%[1]s&endDate=%[2]s"},
	{"northstar", "https://www.northstarcalifornia.com/plan-your-trip/lift-access/tickets.aspx?startDate=%[1]s&endDate=%[2]s"},
	{"palisades", "https://www.palisadestahoe.com/plan-your-visit/tickets-and-passes?startDate=%[1]s&endDate=%[2]s"},
	{"squaw", "https://www.palisadestahoe.com/plan-your-visit/tickets-and-passes?startDate=%[1]s&endDate=%[2]s"},
	{"kirkwood", "https://www.kirkwood.com/plan-your-trip/lift-access/tickets.aspx?startDate=%[1]s&endDate=%[2]s"},
	{"sierraattahoe", "https://www.sierraattahoe.com/lift-tickets/?start=%[1]s&end=%[2]s"},
	{"sierra", "https://www.sierraattahoe.com/lift-tickets/?start=%[1]s&end=%[2]s"},
	{"sugarbowl", "https://shop.sugarbowl.com/s/lift-tickets?date=%[1]s"},
	{"mammoth", "https://www.mammothmountain.com/plan-your-trip/lift-tickets?start=%[1]s&end=%[2]s"},
	{"boreal", "https://www.rideboreal.com/plan-your-trip/tickets?date=%[1]s"},
}

var lessonPatterns = []patternURL{
	{"heavenly", "https://www.skiheavenly.com/plan-your-trip/ski-and-ride-lessons.aspx?date=%[1]s"},
	{"northstar", "https://www.northstarcalifornia.com/plan-your-trip/ski-and-ride-lessons.aspx?date=%[1]s"},
	{"palisades", "https://www.palisadestahoe.com/mountain-information/learn-to-ski-and-ride?date=%[1]s"},
	{"squaw", "https://www.palisadestahoe.com/mountain-information/learn-to-ski-and-ride?date=%[1]s"},
	{"kirkwood", "https://www.kirkwood.com/plan-your-trip/ski-and-ride-lessons.aspx?date=%[1]s"},
	{"sierra", "https://www.sierraattahoe.com/lessons/?date=%[1]s"},
	{"sugarbowl", "https://www.sugarbowl.com/lessons?date=%[1]s"},
	{"mammoth", "https://www.mammothmountain.com/plan-your-trip/ski-snowboard-school?date=%[1]s"},
}

var rentalPatterns = []patternURL{
	{"heavenly", "https://www.skiheavenly.com/plan-your-trip/equipment-rentals.aspx?startDate=%[1]s&endDate=%[2]s"},
	{"northstar", "https://www.northstarcalifornia.com/plan-your-trip/equipment-rentals.aspx?startDate=%[1]s&endDate=%[2]s"},
	{"palisades", "https://www.palisadestahoe.com/plan-your-visit/rentals?startDate=%[1]s&endDate=%[2]s"},
	{"squaw", "https://www.palisadestahoe.com/plan-your-visit/rentals?startDate=%[1]s&endDate=%[2]s"},
	{"kirkwood", "https://www.kirkwood.com/plan-your-trip/equipment-rentals.aspx?startDate=%[1]s&endDate=%[2]s"},
	{"sierra", "https://www.sierraattahoe.com/rentals/?start=%[1]s&end=%[2]s"},
	{"sugarbowl", "https://www.sugarbowl.com/rentals?start=%[1]s&end=%[2]s"},
	{"mammoth", "https://www.mammothmountain.com/plan-your-trip/rentals?start=%[1]s&end=%[2]s"},
}

// normalizeKey lowercases the resort name and strips spaces and hyphens
// so "Sierra-at-Tahoe" matches "sierraattahoe".
func normalizeKey(name string) string {
	k := strings.ToLower(name)
	k = strings.ReplaceAll(k, " ", "")
	k = strings.ReplaceAll(k, "-", "")
	return k
}

func matchPattern(table []patternURL, key string) (string, bool) {
	for _, p := range table {
		if strings.Contains(key, p.pattern) {
			return p.template, true
		}
	}
	return "", false
}

// bookingURL resolves one link through the three fallback tiers:
// pattern table, then the resort's own website with a conventional
// path, then a generic web search.
func bookingURL(table []patternURL, kind string, r domain.Resort, start, end string) string {
	if tpl, ok := matchPattern(table, normalizeKey(r.Name)); ok {
		return fmt.Sprintf(tpl, start, end)
	}
	if r.Website != nil && *r.Website != "" {
		return fmt.Sprintf("%s/%s?start=%s&end=%s", strings.TrimRight(*r.Website, "/"), kind, start, end)
	}
	q := url.QueryEscape(r.Name + " " + strings.ReplaceAll(kind, "-", " "))
	return "https://www.google.com/search?q=" + q
}

// BuildBookingLinks is pure and deterministic: identical inputs always
// yield identical output, and no network access happens here.
func BuildBookingLinks(r domain.Resort, p domain.TripParams) domain.BookingLinks {
	start := p.Start.Format("2006-01-02")
	end := p.End.Format("2006-01-02")
	days := p.Days()

	links := domain.BookingLinks{
		LiftTicketURL:    bookingURL(ticketPatterns, "lift-tickets", r, start, end),
		PackageSearchURL: "https://www.liftopia.com/search?q=" + url.QueryEscape(r.Name),
		TripDays:         days,
	}
	if p.NeedLesson {
		u := bookingURL(lessonPatterns, "lessons", r, start, end)
		links.LessonURL = &u
	}
	if p.NeedRental {
		u := bookingURL(rentalPatterns, "rentals", r, start, end)
		links.RentalURL = &u
	}

	perDay := baseTicketUSD
	if p.NeedRental {
		perDay += rentalPerDayUSD
	}
	links.EstimatedTotal = perDay * days
	if p.NeedLesson {
		links.EstimatedTotal += lessonFlatUSD
	}
	return links
}

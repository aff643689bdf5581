// Package nominatim resolves free-text place queries against the
// OpenStreetMap Nominatim search endpoint.
package nominatim

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/iron-24/ripper-report/internal/adapters/upstream"
	"github.com/iron-24/ripper-report/internal/domain"
)

type Client struct {
	base string
	u    *upstream.Client
}

// New builds a geocoder client. Nominatim's usage policy caps anonymous
// clients at one request per second.
func New(base, userAgent string) *Client {
	return &Client{base: base, u: upstream.New("nominatim", userAgent, 1)}
}

// searchResult is the subset of the Nominatim response we read.
// Lat/lon arrive as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (c *Client) Geocode(ctx context.Context, query string) (domain.Location, error) {
	params := url.Values{
		"q":      []string{query},
		"format": []string{"json"},
		"limit":  []string{"1"},
	}
	u := fmt.Sprintf("%s/search?%s", c.base, params.Encode())

	var results []searchResult
	if err := c.u.GetJSON(ctx, u, &results); err != nil {
		return domain.Location{}, fmt.Errorf("nominatim: %w", err)
	}
	if len(results) == 0 {
		return domain.Location{}, domain.ErrNoResults
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("nominatim: bad lat %q", results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("nominatim: bad lon %q", results[0].Lon)
	}
	return domain.Location{
		Query:       query,
		Lat:         lat,
		Lon:         lon,
		DisplayName: results[0].DisplayName,
	}, nil
}

// Package overpass queries the Overpass API for ski-area features
// around a point.
package overpass

import (
	"context"
	"fmt"
	"net/url"

	"github.com/iron-24/ripper-report/internal/adapters/upstream"
)

type Client struct {
	base string
	u    *upstream.Client
}

func New(base, userAgent string) *Client {
	return &Client{base: base, u: upstream.New("overpass", userAgent, 2)}
}

type response struct {
	Elements []element `json:"elements"`
}

type element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *struct{ Lat, Lon float64 } `json:"center"`
	Tags   map[string]string `json:"tags"`
}

// SkiAreas returns raw feature payloads for winter-sports areas within
// radiusMeters of (lat, lon). Ways and relations carry their centroid in
// "center"; the payload always exposes resolved "lat"/"lon" keys.
func (c *Client) SkiAreas(ctx context.Context, lat, lon, radiusMeters float64) ([]map[string]any, error) {
	q := fmt.Sprintf(`[out:json][timeout:25];(`+
		`nwr(around:%.0f,%.6f,%.6f)["landuse"="winter_sports"];`+
		`nwr(around:%.0f,%.6f,%.6f)["sport"="skiing"]["name"];`+
		`);out center tags;`,
		radiusMeters, lat, lon, radiusMeters, lat, lon)

	var resp response
	form := url.Values{"data": []string{q}}
	if err := c.u.PostFormJSON(ctx, c.base, form, &resp); err != nil {
		return nil, fmt.Errorf("overpass: %w", err)
	}

	out := make([]map[string]any, 0, len(resp.Elements))
	for _, e := range resp.Elements {
		elat, elon := e.Lat, e.Lon
		if e.Center != nil {
			elat, elon = e.Center.Lat, e.Center.Lon
		}
		if elat == 0 && elon == 0 {
			continue
		}
		m := map[string]any{
			"type": e.Type,
			"id":   e.ID,
			"lat":  elat,
			"lon":  elon,
		}
		tags := make(map[string]any, len(e.Tags))
		for k, v := range e.Tags {
			tags[k] = v
		}
		m["tags"] = tags
		out = append(out, m)
	}
	return out, nil
}

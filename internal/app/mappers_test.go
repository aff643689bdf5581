package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iron-24/ripper-report/internal/domain"
)

func element(name string, lat, lon float64, extra map[string]any) map[string]any {
	tags := map[string]any{"name": name}
	for k, v := range extra {
		tags[k] = v
	}
	return map[string]any{"type": "way", "id": int64(1), "lat": lat, "lon": lon, "tags": tags}
}

func TestMapSkiAreas(t *testing.T) {
	origin := domain.Location{Lat: 39.0, Lon: -120.0}

	elements := []map[string]any{
		element("Heavenly", 38.935, -119.940, map[string]any{"website": "https://www.skiheavenly.com"}),
		element("Heavenly", 38.936, -119.941, nil), // duplicate name, first wins
		element("Kirkwood", 38.685, -120.066, nil),
		element("Echo Summit Parking", 38.81, -120.03, nil),   // stop-word
		element("Far Away Resort", 45.0, -110.0, nil),         // outside radius
		{"type": "node", "id": int64(9), "lat": 38.9, "lon": -120.0, "tags": map[string]any{}}, // unnamed
	}

	got := mapSkiAreas(origin, 25, elements)
	require.Len(t, got, 2)

	// sorted ascending by distance, so Heavenly (closer) first
	assert.Equal(t, "Heavenly", got[0].Name)
	assert.Equal(t, "Kirkwood", got[1].Name)
	assert.LessOrEqual(t, got[0].DistanceMiles, got[1].DistanceMiles)

	// first occurrence kept its coordinates and website
	assert.InDelta(t, 38.935, got[0].Lat, 1e-9)
	require.NotNil(t, got[0].Website)
	assert.Equal(t, "https://www.skiheavenly.com", *got[0].Website)
	assert.Equal(t, domain.SourceOverpass, got[0].Source)

	for _, r := range got {
		assert.LessOrEqual(t, r.DistanceMiles, 25.0)
		assert.GreaterOrEqual(t, r.DistanceMiles, 0.0)
	}
}

func TestMapSkiAreas_NonResortKeywords(t *testing.T) {
	origin := domain.Location{Lat: 39.0, Lon: -120.0}
	elements := []map[string]any{
		element("Village Trailhead", 39.0, -120.01, nil),
		element("Nordic Trail Network", 39.0, -120.02, nil),
		element("Overflow Lot B", 39.0, -120.03, nil),
	}
	assert.Empty(t, mapSkiAreas(origin, 25, elements))
}

func TestMapPostTexts(t *testing.T) {
	posts := []map[string]any{
		{"title": "Epic powder day at Kirkwood", "selftext": "waist deep everywhere and the crowds stayed home"},
		{"title": "too short", "selftext": ""},
		{"title": "Webcam link", "selftext": "watch it live at http://example.com/cam"},
		{"title": "Uppercase link filtered too", "selftext": "details at HTTPS://example.com today"},
	}
	got := mapPostTexts(posts)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "Epic powder day")
}

func TestMapPostTexts_Cap(t *testing.T) {
	posts := make([]map[string]any, 0, 40)
	for i := 0; i < 40; i++ {
		posts = append(posts, map[string]any{
			"title":    "A perfectly ordinary conditions report",
			"selftext": "groomers were firm in the morning and softened up after lunch",
		})
	}
	assert.Len(t, mapPostTexts(posts), maxPostTexts)
}

func TestDistanceMiles(t *testing.T) {
	// same point
	assert.InDelta(t, 0, distanceMiles(39.0, -120.0, 39.0, -120.0), 1e-9)
	// one degree of latitude is about 69 miles
	assert.InDelta(t, 69, distanceMiles(39.0, -120.0, 40.0, -120.0), 1.0)
}

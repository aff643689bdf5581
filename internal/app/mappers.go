package app

import (
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/iron-24/ripper-report/internal/domain"
)

const metersPerMile = 1609.344

/********** alias registries (single source of truth) **********/

// Overpass tag spellings vary per mapper; accept the common variants.
var poiAliases = map[string][]string{
	"name":    {"tags.name", "tags.name:en", "tags.official_name"},
	"website": {"tags.website", "tags.contact:website", "tags.url"},
	"phone":   {"tags.phone", "tags.contact:phone"},
}

var postAliases = map[string][]string{
	"title": {"title"},
	"body":  {"selftext", "body", "text"},
}

// Features whose name contains one of these are pistes, lifts or
// infrastructure rather than the resort itself.
var nonResortKeywords = []string{"trail", "trailhead", "parking", "lot", "crossing"}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) *string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return &s
		}
	}
	return nil
}

func lookupFloat(m map[string]any, path string) (float64, bool) {
	switch v := lookupAny(m, path).(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// distanceMiles is the great-circle distance between two points.
func distanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.Distance(orb.Point{lon1, lat1}, orb.Point{lon2, lat2}) / metersPerMile
}

/********** ski-area mapper **********/

// mapSkiAreas turns raw POI payloads into resorts: unnamed and
// infrastructure features are dropped, exact duplicate names keep the
// first occurrence, results are radius-filtered and sorted by distance.
func mapSkiAreas(origin domain.Location, radiusMiles float64, elements []map[string]any) []domain.Resort {
	seen := make(map[string]struct{}, len(elements))
	out := make([]domain.Resort, 0, len(elements))
	for _, e := range elements {
		namep := firstNonEmptyAlias(e, poiAliases, "name")
		if namep == nil {
			continue
		}
		name := strings.TrimSpace(*namep)
		if name == "" || isNonResortName(name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		lat, okLat := lookupFloat(e, "lat")
		lon, okLon := lookupFloat(e, "lon")
		if !okLat || !okLon {
			continue
		}
		d := distanceMiles(origin.Lat, origin.Lon, lat, lon)
		if d > radiusMiles {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, domain.Resort{
			Name:          name,
			Lat:           lat,
			Lon:           lon,
			DistanceMiles: d,
			Website:       firstNonEmptyAlias(e, poiAliases, "website"),
			Phone:         firstNonEmptyAlias(e, poiAliases, "phone"),
			Source:        domain.SourceOverpass,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceMiles < out[j].DistanceMiles })
	return out
}

func isNonResortName(name string) bool {
	low := strings.ToLower(name)
	for _, kw := range nonResortKeywords {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}

/********** post mapper **********/

const (
	minPostChars = 30
	maxPostTexts = 25
)

// mapPostTexts flattens post payloads to scoreable snippets: title plus
// body, skipping short texts and anything carrying a link.
func mapPostTexts(posts []map[string]any) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		title := lookupStr(p, "title")
		var body string
		if bp := firstNonEmptyAlias(p, postAliases, "body"); bp != nil {
			body = *bp
		}
		full := strings.TrimSpace(title + " " + body)
		if len(full) <= minPostChars || strings.Contains(strings.ToLower(full), "http") {
			continue
		}
		out = append(out, full)
		if len(out) == maxPostTexts {
			break
		}
	}
	return out
}

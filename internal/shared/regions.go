package shared

// FallbackResort is a curated well-known resort used when the live POI
// index fails or returns nothing for a recognized region.
type FallbackResort struct {
	Name        string
	Lat, Lon    float64
	Website     string
	Query       string // community-post search expression
	PassUSD     int    // single-day lift ticket, rough 2025/26 estimate
	RentalUSD   int    // daily rental, rough estimate
	AdvancedPct int    // advanced/expert terrain share
}

// Region is a recognized area with a curated resort table. A search
// origin within RadiusMiles of the centre activates the fallback.
type Region struct {
	Name        string
	Lat, Lon    float64
	RadiusMiles float64
	Resorts     []FallbackResort
}

// Regions holds every recognized fallback region. Currently only Lake
// Tahoe, seeded from the original NorCal tracker's table.
var Regions = []Region{
	{
		Name: "Lake Tahoe", Lat: 39.09, Lon: -120.03, RadiusMiles: 45,
		Resorts: []FallbackResort{
			{
				Name: "Northstar California", Lat: 39.274, Lon: -120.121,
				Website: "https://www.northstarcalifornia.com",
				Query:   `northstar OR "northstar california" OR northstarcalifornia`,
				PassUSD: 260, RentalUSD: 51, AdvancedPct: 27,
			},
			{
				Name: "Heavenly", Lat: 38.935, Lon: -119.940,
				Website: "https://www.skiheavenly.com",
				Query:   `heavenly OR "heavenly tahoe"`,
				PassUSD: 219, RentalUSD: 55, AdvancedPct: 35,
			},
			{
				Name: "Palisades Tahoe", Lat: 39.197, Lon: -120.235,
				Website: "https://www.palisadestahoe.com",
				Query:   `"palisades tahoe" OR palisades OR squaw`,
				PassUSD: 269, RentalUSD: 60, AdvancedPct: 33,
			},
			{
				Name: "Kirkwood", Lat: 38.685, Lon: -120.066,
				Website: "https://www.kirkwood.com",
				Query:   `kirkwood OR "kirkwoodmountain"`,
				PassUSD: 209, RentalUSD: 60, AdvancedPct: 58,
			},
			{
				Name: "Sierra-at-Tahoe", Lat: 38.796, Lon: -120.080,
				Website: "https://www.sierraattahoe.com",
				Query:   `"sierra at tahoe" OR sierraattahoe`,
				PassUSD: 185, RentalUSD: 68, AdvancedPct: 25,
			},
			{
				Name: "Sugar Bowl", Lat: 39.304, Lon: -120.334,
				Website: "https://www.sugarbowl.com",
				Query:   `"sugar bowl" OR sugarbowl OR "sugarbowl resort"`,
				PassUSD: 199, RentalUSD: 69, AdvancedPct: 44,
			},
		},
	},
}

// ReputationEntry is one (pattern, score) pair for the static sentiment
// strategy. Patterns are matched as substrings of the lowercased resort
// name, in table order, first match wins.
type ReputationEntry struct {
	Pattern string
	Score   float64
}

var ReputationTable = []ReputationEntry{
	{"palisades", 0.45},
	{"squaw", 0.45},
	{"heavenly", 0.35},
	{"northstar", 0.30},
	{"kirkwood", 0.40},
	{"sierra", 0.25},
	{"sugar bowl", 0.30},
	{"mammoth", 0.40},
	{"boreal", 0.10},
	{"soda springs", 0.05},
}

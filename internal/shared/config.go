package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	RedisAddr string
	RedisDB   int
	RedisPass string

	NominatimBase string
	OverpassBase  string
	RedditBase    string
	NWSBase       string
	UserAgent     string

	CacheTTL      time.Duration
	EnrichDelay   time.Duration
	SentimentMode string // lexicon|static
	PostLimit     int

	Report ReportConfig
}

// ReportConfig drives the one-shot cmd/report run.
type ReportConfig struct {
	Location    string
	RadiusMiles float64
	Start, End  string // YYYY-MM-DD, empty means today/tomorrow
	NeedLesson  bool
	NeedRental  bool
	OutPath     string
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	abool := func(k string, def bool) bool {
		if v := os.Getenv(k); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				return b
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),

		RedisAddr: env("REDIS_ADDR", "localhost:6379"),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),

		NominatimBase: env("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		OverpassBase:  env("OVERPASS_BASE_URL", "https://overpass-api.de/api/interpreter"),
		RedditBase:    env("REDDIT_BASE_URL", "https://www.reddit.com"),
		NWSBase:       env("NWS_BASE_URL", "https://api.weather.gov"),
		UserAgent:     env("USER_AGENT", "ripper-report/1.0"),

		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 1800)) * time.Second,
		EnrichDelay:   time.Duration(atoi("ENRICH_DELAY_MS", 200)) * time.Millisecond,
		SentimentMode: env("SENTIMENT_MODE", "lexicon"),
		PostLimit:     atoi("POST_LIMIT", 40),

		Report: ReportConfig{
			Location:    env("REPORT_LOCATION", "Lake Tahoe, CA"),
			RadiusMiles: atof("REPORT_RADIUS_MILES", 20),
			Start:       env("REPORT_START", ""),
			End:         env("REPORT_END", ""),
			NeedLesson:  abool("REPORT_LESSON", false),
			NeedRental:  abool("REPORT_RENTAL", false),
			OutPath:     env("REPORT_OUT", "resort-links.txt"),
		},
	}
	if c.SentimentMode != "lexicon" && c.SentimentMode != "static" {
		log.Warn().Str("mode", c.SentimentMode).Msg("unknown SENTIMENT_MODE, using lexicon")
		c.SentimentMode = "lexicon"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

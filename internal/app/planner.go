package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/iron-24/ripper-report/internal/domain"
	"github.com/iron-24/ripper-report/internal/shared"
)

// PlanRequest carries the validated user inputs for one pipeline run.
type PlanRequest struct {
	Location    string
	RadiusMiles float64
	Params      domain.TripParams
}

func (r PlanRequest) validate() error {
	if strings.TrimSpace(r.Location) == "" {
		return errors.New("location is required")
	}
	if r.RadiusMiles <= 0 {
		return errors.New("radius must be positive")
	}
	return r.Params.Validate()
}

// PlannerService orchestrates geocode -> discover -> per-resort
// enrichment. Upstream reads are cache-aside with a bounded TTL;
// singleflight collapses concurrent misses so each distinct input hits
// an upstream at most once per cache window.
type PlannerService struct {
	geo    domain.Geocoder
	poi    domain.POIIndex
	scorer domain.Scorer
	wx     domain.ForecastSource
	cache  domain.Cache

	ttl   time.Duration
	delay time.Duration // pause between resort enrichments
	sf    singleflight.Group
}

func NewPlannerService(
	geo domain.Geocoder,
	poi domain.POIIndex,
	scorer domain.Scorer,
	wx domain.ForecastSource,
	cache domain.Cache,
	ttl, delay time.Duration,
) *PlannerService {
	return &PlannerService{geo: geo, poi: poi, scorer: scorer, wx: wx, cache: cache, ttl: ttl, delay: delay}
}

func (s *PlannerService) ttlSec() int { return int(s.ttl.Seconds()) }

// ResolveLocation geocodes a free-text query, serving repeats from cache.
func (s *PlannerService) ResolveLocation(ctx context.Context, query string) (domain.Location, error) {
	key := "geocode:" + strings.ToLower(strings.TrimSpace(query))
	var loc domain.Location
	if ok, _ := s.cache.Get(ctx, key, &loc); ok {
		return loc, nil
	}
	v, err, _ := s.sf.Do(key, func() (any, error) {
		l, err := s.geo.Geocode(ctx, query)
		if err != nil {
			return domain.Location{}, err
		}
		_ = s.cache.Set(ctx, key, l, s.ttlSec())
		return l, nil
	})
	if err != nil {
		return domain.Location{}, err
	}
	return v.(domain.Location), nil
}

// DiscoverResorts finds ski areas within radiusMiles of the origin.
// When the live index fails or comes back empty and the origin lies in
// a recognized region, that region's curated table substitutes.
func (s *PlannerService) DiscoverResorts(ctx context.Context, loc domain.Location, radiusMiles float64) ([]domain.Resort, error) {
	key := fmt.Sprintf("resorts:%.4f:%.4f:%.1f", loc.Lat, loc.Lon, radiusMiles)
	var cached []domain.Resort
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}
	v, err, _ := s.sf.Do(key, func() (any, error) {
		resorts, err := s.discover(ctx, loc, radiusMiles)
		if err != nil {
			return nil, err
		}
		_ = s.cache.Set(ctx, key, resorts, s.ttlSec())
		return resorts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Resort), nil
}

func (s *PlannerService) discover(ctx context.Context, loc domain.Location, radiusMiles float64) ([]domain.Resort, error) {
	elements, err := s.poi.SkiAreas(ctx, loc.Lat, loc.Lon, radiusMiles*metersPerMile)
	if err != nil {
		log.Warn().Err(err).Msg("poi index failed, trying regional fallback")
		if fb := fallbackResorts(loc, radiusMiles); fb != nil {
			return fb, nil
		}
		return nil, err
	}
	resorts := mapSkiAreas(loc, radiusMiles, elements)
	if len(resorts) == 0 {
		if fb := fallbackResorts(loc, radiusMiles); fb != nil {
			return fb, nil
		}
		return nil, domain.ErrNoResorts
	}
	return resorts, nil
}

// fallbackResorts returns the curated table for the region containing
// the origin, distance-filtered and sorted, or nil when no region
// matches or nothing in the table is within the radius.
func fallbackResorts(loc domain.Location, radiusMiles float64) []domain.Resort {
	for _, region := range shared.Regions {
		if distanceMiles(loc.Lat, loc.Lon, region.Lat, region.Lon) > region.RadiusMiles {
			continue
		}
		out := make([]domain.Resort, 0, len(region.Resorts))
		for _, fr := range region.Resorts {
			d := distanceMiles(loc.Lat, loc.Lon, fr.Lat, fr.Lon)
			if d > radiusMiles {
				continue
			}
			site := fr.Website
			pass, rental, adv := fr.PassUSD, fr.RentalUSD, fr.AdvancedPct
			out = append(out, domain.Resort{
				Name:          fr.Name,
				Lat:           fr.Lat,
				Lon:           fr.Lon,
				DistanceMiles: d,
				Website:       &site,
				Query:         fr.Query,
				Source:        domain.SourceFallback,
				PassUSD:       &pass,
				RentalUSD:     &rental,
				AdvancedPct:   &adv,
			})
		}
		if len(out) == 0 {
			return nil
		}
		sortResortsByDistance(out)
		return out
	}
	return nil
}

// ScoreResort returns the sentiment summary for a resort, cached by name.
func (s *PlannerService) ScoreResort(ctx context.Context, r domain.Resort) (domain.SentimentResult, error) {
	key := "sentiment:" + strings.ToLower(r.Name)
	var cached domain.SentimentResult
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}
	v, err, _ := s.sf.Do(key, func() (any, error) {
		res, err := s.scorer.Score(ctx, r)
		if err != nil {
			return res, err
		}
		_ = s.cache.Set(ctx, key, res, s.ttlSec())
		return res, nil
	})
	if err != nil {
		return domain.NeutralSentiment(), err
	}
	return v.(domain.SentimentResult), nil
}

// LookupWeather returns the short forecast for a point, cached by
// coordinates rounded to four decimals.
func (s *PlannerService) LookupWeather(ctx context.Context, lat, lon float64) (domain.WeatherSummary, error) {
	key := fmt.Sprintf("wx:%.4f:%.4f", lat, lon)
	var cached domain.WeatherSummary
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}
	v, err, _ := s.sf.Do(key, func() (any, error) {
		w, err := s.wx.Forecast(ctx, lat, lon)
		if err != nil {
			return domain.WeatherSummary{}, err
		}
		_ = s.cache.Set(ctx, key, w, s.ttlSec())
		return w, nil
	})
	if err != nil {
		return domain.WeatherSummary{}, err
	}
	return v.(domain.WeatherSummary), nil
}

// BuildPlan runs the whole pipeline. Enrichment is sequential per
// resort; each resort's sentiment or weather failure defaults
// independently and never blocks the others.
func (s *PlannerService) BuildPlan(ctx context.Context, req PlanRequest) (domain.Plan, error) {
	if err := req.validate(); err != nil {
		return domain.Plan{}, err
	}

	loc, err := s.ResolveLocation(ctx, req.Location)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("resolve %q: %w", req.Location, err)
	}

	resorts, err := s.DiscoverResorts(ctx, loc, req.RadiusMiles)
	if err != nil {
		return domain.Plan{}, err
	}

	plan := domain.Plan{
		ID:          uuid.NewString(),
		Location:    loc,
		RadiusMiles: req.RadiusMiles,
		Params:      req.Params,
		Resorts:     make([]domain.ResortPlan, 0, len(resorts)),
		GeneratedAt: time.Now().UTC(),
	}

	for i, r := range resorts {
		if i > 0 && !sleepCtx(ctx, s.delay) {
			return domain.Plan{}, ctx.Err()
		}

		sent, serr := s.ScoreResort(ctx, r)
		if serr != nil {
			log.Warn().Str("resort", r.Name).Err(serr).Msg("sentiment defaulted")
		}
		wx, werr := s.LookupWeather(ctx, r.Lat, r.Lon)
		if werr != nil {
			log.Warn().Str("resort", r.Name).Err(werr).Msg("weather unavailable")
		}

		plan.Resorts = append(plan.Resorts, domain.ResortPlan{
			Resort:    r,
			Sentiment: sent,
			Weather:   wx,
			Booking:   BuildBookingLinks(r, req.Params),
		})
	}
	return plan, nil
}

func sortResortsByDistance(rs []domain.Resort) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].DistanceMiles < rs[j].DistanceMiles })
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// cmd/report runs the pipeline once from configuration and writes the
// plain-text link sheet to a file.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/iron-24/ripper-report/internal/adapters/nominatim"
	"github.com/iron-24/ripper-report/internal/adapters/nws"
	"github.com/iron-24/ripper-report/internal/adapters/observability"
	"github.com/iron-24/ripper-report/internal/adapters/overpass"
	"github.com/iron-24/ripper-report/internal/adapters/reddit"
	redisad "github.com/iron-24/ripper-report/internal/adapters/redis"
	"github.com/iron-24/ripper-report/internal/app"
	"github.com/iron-24/ripper-report/internal/domain"
	"github.com/iron-24/ripper-report/internal/shared"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	req, err := buildRequest(cfg.Report)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid report parameters")
	}

	log.Info().
		Str("location", req.Location).
		Float64("radius_miles", req.RadiusMiles).
		Str("sentiment", cfg.SentimentMode).
		Msg("report run starting")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	geo := nominatim.New(cfg.NominatimBase, cfg.UserAgent)
	poi := overpass.New(cfg.OverpassBase, cfg.UserAgent)
	wx := nws.New(cfg.NWSBase, cfg.UserAgent)

	var scorer domain.Scorer
	if cfg.SentimentMode == "static" {
		scorer = app.NewStaticScorer()
	} else {
		scorer = app.NewLexiconScorer(reddit.New(cfg.RedditBase, cfg.UserAgent), cfg.PostLimit)
	}

	planner := app.NewPlannerService(geo, poi, scorer, wx, cache, cfg.CacheTTL, cfg.EnrichDelay)

	plan, err := planner.BuildPlan(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline failed")
	}

	doc := app.RenderReport(plan)
	if err := os.WriteFile(cfg.Report.OutPath, []byte(doc), 0o644); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Report.OutPath).Msg("write report failed")
	}

	log.Info().
		Str("report_id", plan.ID).
		Int("resorts", len(plan.Resorts)).
		Str("path", cfg.Report.OutPath).
		Msg("report written")
}

func buildRequest(rc shared.ReportConfig) (app.PlanRequest, error) {
	req := app.PlanRequest{
		Location:    rc.Location,
		RadiusMiles: rc.RadiusMiles,
	}
	now := time.Now().UTC().Truncate(24 * time.Hour)
	req.Params.Start, req.Params.End = now, now.Add(24*time.Hour)
	if rc.Start != "" {
		d, err := time.Parse("2006-01-02", rc.Start)
		if err != nil {
			return req, err
		}
		req.Params.Start = d
	}
	if rc.End != "" {
		d, err := time.Parse("2006-01-02", rc.End)
		if err != nil {
			return req, err
		}
		req.Params.End = d
	}
	req.Params.NeedLesson = rc.NeedLesson
	req.Params.NeedRental = rc.NeedRental
	return req, req.Params.Validate()
}

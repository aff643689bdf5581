package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	server "github.com/iron-24/ripper-report/internal/adapters/http_server"
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
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// deps
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

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{P: planner})

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("sentiment", cfg.SentimentMode).
		Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// Package api assembles the HTTP surface: handlers, middleware, and the
// Prometheus scrape endpoint.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/Dancing-Rabbit-Club/golf-bot/api/handlers"
	apimiddleware "github.com/Dancing-Rabbit-Club/golf-bot/api/middleware"
	gpsservice "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/gps/application"
	roundservice "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/application"
	rounddb "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/infrastructure/repositories"
	scoringservice "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/application"
	tournamentservice "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/tournament/application"
)

// Deps are the services the router exposes.
type Deps struct {
	Tournaments tournamentservice.Service
	Rounds      roundservice.Service
	RoundDB     rounddb.RoundDB
	Scoring     scoringservice.Service
	GPS         gpsservice.Service

	// MetricsRegistry backs the /metrics scrape endpoint. Nil falls back to
	// the default Prometheus registry.
	MetricsRegistry *prometheus.Registry

	// SkinsDefaultPrize is the pot used when a skins request does not name
	// one; zero falls back to the handler default.
	SkinsDefaultPrize float64

	// Per-IP rate limiting; zero values fall back to the defaults.
	RequestsPerSecond rate.Limit
	Burst             int
}

// Clubhouse tablets poll the leaderboard aggressively during play, so the
// defaults leave headroom over one request per hole.
const (
	defaultRequestsPerSecond rate.Limit = 10
	defaultBurst                        = 20
)

// NewRouter wires every handler behind shared middleware.
func NewRouter(deps Deps) *chi.Mux {
	rps := deps.RequestsPerSecond
	if rps == 0 {
		rps = defaultRequestsPerSecond
	}
	burst := deps.Burst
	if burst == 0 {
		burst = defaultBurst
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.RateLimit(apimiddleware.NewIPRateLimiter(rps, burst)))

	tournamentHandlers := handlers.NewTournamentHandlers(deps.Tournaments)
	roundHandlers := handlers.NewRoundHandlers(deps.Rounds, deps.RoundDB)
	scoringHandlers := handlers.NewScoringHandlers(deps.Scoring, deps.SkinsDefaultPrize)
	gpsHandlers := handlers.NewGPSHandlers(deps.GPS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	metricsHandler := promhttp.Handler()
	if deps.MetricsRegistry != nil {
		metricsHandler = promhttp.HandlerFor(deps.MetricsRegistry, promhttp.HandlerOpts{})
	}
	r.Handle("/metrics", metricsHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/tournaments", func(r chi.Router) {
			r.Post("/", tournamentHandlers.CreateTournament)
			r.Get("/active", tournamentHandlers.GetActiveTournament)
			r.Get("/{tournamentID}", tournamentHandlers.GetTournament)
			r.Get("/{tournamentID}/stats", tournamentHandlers.GetStats)
			r.Post("/{tournamentID}/advance", tournamentHandlers.AdvanceRound)
			r.Post("/{tournamentID}/players", tournamentHandlers.RegisterPlayer)
			r.Get("/{tournamentID}/players", tournamentHandlers.GetPlayers)
			r.Get("/{tournamentID}/leaderboard", scoringHandlers.GetLeaderboard)
			r.Get("/{tournamentID}/leaderboard/chart", scoringHandlers.GetStandingsChart)
			r.Get("/{tournamentID}/skins/{roundNumber}", scoringHandlers.GetSkins)
			r.Get("/{tournamentID}/stableford/{roundNumber}", scoringHandlers.GetStableford)
			r.Post("/{tournamentID}/rounds/{roundNumber}/scorecard", roundHandlers.ImportScorecard)
		})
		r.Mount("/rounds", roundHandlers.Routes())
		r.Mount("/gps", gpsHandlers.Routes())
		r.Post("/scores", roundHandlers.RecordScore)
		r.Get("/players/{playerID}/rounds", roundHandlers.GetPlayerRounds)
	})

	return r
}

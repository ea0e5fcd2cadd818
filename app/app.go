// Package app assembles the golf bot: database, event bus, job queue,
// services, and the HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/Dancing-Rabbit-Club/golf-bot/api"
	gpsservice "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/gps/application"
	"github.com/Dancing-Rabbit-Club/golf-bot/app/modules/gps/infrastructure/courses"
	roundservice "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/application"
	roundqueue "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/round/infrastructure/queue"
	scoringservice "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/application"
	scoringdomain "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/domain"
	scoringhandlers "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/infrastructure/handlers"
	scoringrouter "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/infrastructure/router"
	tournamentservice "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/tournament/application"
	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"github.com/Dancing-Rabbit-Club/golf-bot/config"
	"github.com/Dancing-Rabbit-Club/golf-bot/db/bundb"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/eventbus"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability"
	gpsmetrics "github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/metrics/gps"
	roundmetrics "github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/metrics/round"
	scoringmetrics "github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/metrics/scoring"
	tournamentmetrics "github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/metrics/tournament"
)

const shutdownTimeout = 10 * time.Second

// App holds every long-lived component of the golf bot.
type App struct {
	Config *config.Config
	Obs    *observability.Observability

	TournamentService tournamentservice.Service
	RoundService      roundservice.Service
	ScoringService    scoringservice.Service
	GPSService        gpsservice.Service

	db             *bundb.DBService
	eventBus       eventbus.EventBus
	queue          *roundqueue.Service
	standingsWM    *message.Router
	standingsRoute *scoringrouter.StandingsRouter
	httpServer     *http.Server
	metricsServer  *http.Server
}

// recomputeBridge breaks the construction cycle between the round service
// (which enqueues) and the queue worker (which calls the round service).
type recomputeBridge struct {
	svc roundservice.Service
}

func (b *recomputeBridge) RecomputeRound(ctx context.Context, roundID sharedtypes.RoundID) (*sharedtypes.Round, error) {
	if b.svc == nil {
		return nil, fmt.Errorf("round service not initialized")
	}
	return b.svc.RecomputeRound(ctx, roundID)
}

// NewApp initializes the application with the necessary services and
// configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs, err := observability.Init(observability.Config{
		ServiceName: "golf-bot",
		Environment: cfg.Observability.Environment,
		LogLevel:    cfg.Observability.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}
	logger := obs.Logger

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	bus, err := eventbus.New(cfg.NATS.URL, logger, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	meter := obs.Meter("golf-bot")

	tournamentM, err := tournamentmetrics.NewTournamentMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to build tournament metrics: %w", err)
	}
	roundM, err := roundmetrics.NewRoundMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to build round metrics: %w", err)
	}
	scoringM, err := scoringmetrics.NewScoringMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to build scoring metrics: %w", err)
	}
	gpsM, err := gpsmetrics.NewGPSMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to build gps metrics: %w", err)
	}

	bridge := &recomputeBridge{}
	queue, err := roundqueue.NewService(ctx, cfg.Postgres.DSN, logger, bridge)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize round queue: %w", err)
	}

	tournamentSvc := tournamentservice.NewTournamentService(
		dbService.Tournament, dbService.Round, bus, logger, tournamentM, obs.Tracer("tournament"))

	roundSvc := roundservice.NewRoundService(
		dbService.Round, dbService.Tournament, queue, bus, logger, roundM, obs.Tracer("round"))
	bridge.svc = roundSvc

	scoringSvc := scoringservice.NewScoringService(
		dbService.Tournament, dbService.Tournament, dbService.Round, dbService.Round,
		scoringdomain.Catalog{}, logger, scoringM, obs.Tracer("scoring"))

	gpsSvc := gpsservice.NewGPSService(courses.DancingRabbit(), logger, gpsM, obs.Tracer("gps"))

	wmRouter, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to build message router: %w", err)
	}
	wmRouter.AddMiddleware(middleware.Recoverer)

	standingsRouter := scoringrouter.NewStandingsRouter(logger, wmRouter, bus.Subscriber(), bus, obs.Registry)
	if err := standingsRouter.Configure(ctx, scoringhandlers.NewHandlers(logger, obs.Tracer("scoring"))); err != nil {
		return nil, fmt.Errorf("failed to configure standings router: %w", err)
	}

	router := api.NewRouter(api.Deps{
		Tournaments:       tournamentSvc,
		Rounds:            roundSvc,
		RoundDB:           dbService.Round,
		Scoring:           scoringSvc,
		GPS:               gpsSvc,
		MetricsRegistry:   obs.Registry,
		SkinsDefaultPrize: cfg.Skins.DefaultTotalPrize,
		RequestsPerSecond: rate.Limit(cfg.HTTP.RateLimit),
		Burst:             cfg.HTTP.RateBurst,
	})

	a := &App{
		Config:            cfg,
		Obs:               obs,
		TournamentService: tournamentSvc,
		RoundService:      roundSvc,
		ScoringService:    scoringSvc,
		GPSService:        gpsSvc,
		db:                dbService,
		eventBus:          bus,
		queue:             queue,
		standingsWM:       wmRouter,
		standingsRoute:    standingsRouter,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	// A separate scrape listener keeps /metrics off the public address when
	// configured.
	if cfg.HTTP.MetricsAddress != "" {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))
		a.metricsServer = &http.Server{
			Addr:              cfg.HTTP.MetricsAddress,
			Handler:           metricsMux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return a, nil
}

// Run starts the job queue and serves HTTP until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	if err := a.queue.Start(ctx); err != nil {
		return fmt.Errorf("failed to start round queue: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.standingsWM.Run(ctx); err != nil {
			errCh <- fmt.Errorf("standings router failed: %w", err)
		}
	}()
	go func() {
		a.Obs.Logger.InfoContext(ctx, "HTTP server listening", "address", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()
	if a.metricsServer != nil {
		go func() {
			a.Obs.Logger.InfoContext(ctx, "Metrics server listening", "address", a.metricsServer.Addr)
			if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server failed: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		return a.shutdown()
	case err := <-errCh:
		_ = a.shutdown()
		return err
	}
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop HTTP server: %w", err))
	}
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop metrics server: %w", err))
		}
	}
	if err := a.standingsRoute.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop standings router: %w", err))
	}
	if err := a.queue.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop round queue: %w", err))
	}
	if err := a.eventBus.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close event bus: %w", err))
	}
	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database: %w", err))
	}
	return errors.Join(errs...)
}

package roundqueue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
)

const roundQueueName = "round"

// Service owns the River client for round jobs. River needs its own pgx
// pool; the bun connection the repositories use cannot be shared.
type Service struct {
	client *river.Client[pgx.Tx]
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewService builds the River client and registers the recompute worker.
func NewService(ctx context.Context, dsn string, logger *slog.Logger, recomputer Recomputer) (*Service, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewRecomputeRoundWorker(logger, recomputer))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
			roundQueueName:     {MaxWorkers: 5},
		},
		Workers: workers,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	logger.InfoContext(ctx, "Round queue service initialized")
	return &Service{
		client: riverClient,
		pool:   pool,
		logger: logger,
	}, nil
}

// Start begins job processing.
func (s *Service) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	s.logger.InfoContext(ctx, "Round queue service started")
	return nil
}

// Stop drains workers and closes the pool.
func (s *Service) Stop(ctx context.Context) error {
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	s.logger.InfoContext(ctx, "Round queue service stopped")
	return nil
}

// EnqueueRecompute schedules a round total rebuild on the round queue.
func (s *Service) EnqueueRecompute(ctx context.Context, roundID sharedtypes.RoundID) error {
	_, err := s.client.Insert(ctx, RecomputeRoundJob{RoundID: roundID}, &river.InsertOpts{
		Queue: roundQueueName,
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue recompute job for round %d: %w", roundID, err)
	}
	s.logger.DebugContext(ctx, "Recompute job enqueued", attr.RoundID("round_id", roundID))
	return nil
}

// Package scoringrouter subscribes the standings handlers to the event
// stream. Refresh signals fan back out on the shared event bus.
package scoringrouter

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"

	scoringhandlers "github.com/Dancing-Rabbit-Club/golf-bot/app/modules/scoring/infrastructure/handlers"
	sharedevents "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/events"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/eventbus"
	"github.com/Dancing-Rabbit-Club/golf-bot/internal/observability/attr"
)

type StandingsRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber message.Subscriber
	publisher  eventbus.EventBus

	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

func NewStandingsRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher eventbus.EventBus,
	registry *prometheus.Registry,
) *StandingsRouter {
	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if registry != nil {
		b := metrics.NewPrometheusMetricsBuilder(registry, "", "")
		metricsBuilder = &b
	}

	return &StandingsRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		publisher:      publisher,
		metricsBuilder: metricsBuilder,
		metricsEnabled: metricsBuilder != nil,
	}
}

func (r *StandingsRouter) Configure(_ context.Context, handlers *scoringhandlers.Handlers) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	registerHandler(r, sharedevents.RoundCompleted, handlers.HandleRoundCompleted)
	registerHandler(r, sharedevents.ScorecardImported, handlers.HandleScorecardImported)
	return nil
}

type refreshHandler[T any] func(context.Context, *T) (scoringhandlers.RefreshResult, error)

// registerHandler decodes the topic's payload, runs the handler, and
// publishes the refresh signal on success. Undecodable messages are
// dropped rather than redelivered forever.
func registerHandler[T any](r *StandingsRouter, topic string, handler refreshHandler[T]) {
	handlerName := "scoring." + topic

	r.Router.AddNoPublisherHandler(
		handlerName,
		topic,
		r.subscriber,
		func(msg *message.Message) error {
			ctx := msg.Context()

			var payload T
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				r.logger.ErrorContext(ctx, "Dropping undecodable event",
					attr.String("handler", handlerName),
					attr.String("message_id", msg.UUID),
					attr.Error(err),
				)
				return nil
			}

			result, err := handler(ctx, &payload)
			if err != nil {
				return err
			}
			if result.IsFailure() {
				r.logger.DebugContext(ctx, "Event produced no standings refresh",
					attr.String("handler", handlerName),
					attr.String("reason", *result.Failure),
				)
				return nil
			}
			return r.publisher.Publish(ctx, sharedevents.LeaderboardUpdated, *result.Success)
		},
	)
}

func (r *StandingsRouter) Close() error {
	return r.Router.Close()
}

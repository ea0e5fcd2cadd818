package observability

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Config holds the knobs for the observability stack.
type Config struct {
	ServiceName string
	Environment string
	Version     string
	LogLevel    string
}

// Observability bundles the logger, tracer provider, meter provider, and the
// Prometheus registry the HTTP server and the watermill router share.
type Observability struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	Registry       *prometheus.Registry
}

// Init builds the observability stack. Tracing and OTel metrics ride on the
// globally-configured providers; when no SDK is installed they are no-ops,
// which is what unit tests and bare local runs want.
func Init(cfg Config) (*Observability, error) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(
			slog.String("service", cfg.ServiceName),
			slog.String("environment", cfg.Environment),
			slog.String("version", cfg.Version),
		)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Observability{
		Logger:         logger,
		TracerProvider: otel.GetTracerProvider(),
		MeterProvider:  otel.GetMeterProvider(),
		Registry:       registry,
	}, nil
}

// Tracer returns a named tracer from the configured provider.
func (o *Observability) Tracer(name string) trace.Tracer {
	return o.TracerProvider.Tracer(name)
}

// Meter returns a named meter from the configured provider.
func (o *Observability) Meter(name string) metric.Meter {
	return o.MeterProvider.Meter(name)
}

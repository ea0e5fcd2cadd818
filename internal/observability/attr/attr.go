package attr

import (
	"context"
	"log/slog"

	sharedtypes "github.com/Dancing-Rabbit-Club/golf-bot/app/shared/types"
)

// correlationIDKey is the context key under which the message router stores
// the correlation id of the message being handled.
type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a context carrying the given correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// ExtractCorrelationID pulls the correlation id out of the context for
// logging. Missing ids log as empty rather than being omitted, so log lines
// stay grep-able by field name.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return slog.String("correlation_id", id)
	}
	return slog.String("correlation_id", "")
}

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Int64(key string, value int64) slog.Attr { return slog.Int64(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Float64(key string, value float64) slog.Attr { return slog.Float64(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

func Error(err error) slog.Attr { return slog.Any("error", err) }

func TournamentID(key string, id sharedtypes.TournamentID) slog.Attr {
	return slog.Int64(key, int64(id))
}

func PlayerID(key string, id sharedtypes.PlayerID) slog.Attr {
	return slog.Int64(key, int64(id))
}

func RoundID(key string, id sharedtypes.RoundID) slog.Attr {
	return slog.Int64(key, int64(id))
}

func Hole(key string, hole sharedtypes.HoleNumber) slog.Attr {
	return slog.Int(key, int(hole))
}

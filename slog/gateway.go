// Package slog provides logging decorators for woldoc services.
package slog

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/woldoc"
)

// Ensure LoggingGateway implements woldoc.Gateway.
var _ woldoc.Gateway = (*LoggingGateway)(nil)

// LoggingGateway wraps a Gateway with request logging. Successful fetches
// are logged at debug level, failures at warn level.
type LoggingGateway struct {
	next   woldoc.Gateway
	logger *slog.Logger
}

// NewLoggingGateway creates a new LoggingGateway.
func NewLoggingGateway(next woldoc.Gateway, logger *slog.Logger) *LoggingGateway {
	return &LoggingGateway{next: next, logger: logger}
}

// Fetch delegates to the wrapped gateway and logs the result.
func (g *LoggingGateway) Fetch(ctx context.Context, url string) (body string, status int) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if status != http.StatusOK {
			level = slog.LevelWarn
		}
		g.logger.Log(ctx, level, "fetch",
			"url", url,
			"status", status,
			"bytes", len(body),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return g.next.Fetch(ctx, url)
}

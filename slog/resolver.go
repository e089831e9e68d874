package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/woldoc"
)

// Ensure LoggingResolver implements woldoc.ReferenceResolver.
var _ woldoc.ReferenceResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a ReferenceResolver with debug logging.
type LoggingResolver struct {
	next   woldoc.ReferenceResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next woldoc.ReferenceResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, anchor woldoc.Anchor) (ref *woldoc.Reference) {
	defer func(begin time.Time) {
		r.logger.Debug("resolve",
			"text", anchor.DisplayText,
			"href", anchor.Href,
			"resolved", ref.Resolved(),
			"kind", string(ref.Kind),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Resolve(ctx, anchor)
}

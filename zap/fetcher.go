// Package zap provides logging decorators for domain interfaces.
package zap

import (
	"context"
	"time"

	"github.com/kalyug-papa-bolo/vahan"
	"go.uber.org/zap"
)

var _ vahan.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of each
// upstream fetch: rc, payload size, duration, and failure cause.
type LoggingFetcher struct {
	next   vahan.Fetcher
	logger *zap.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next vahan.Fetcher, logger *zap.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, rc string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, rc)
	if err != nil {
		f.logger.Warn("fetch",
			zap.String("rc", vahan.CanonicalRC(rc)),
			zap.Duration("duration", time.Since(begin)),
			zap.Error(err),
		)
		return "", err
	}
	f.logger.Info("fetch",
		zap.String("rc", vahan.CanonicalRC(rc)),
		zap.Int("bytes", len(html)),
		zap.Duration("duration", time.Since(begin)),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/klexicrawl/klexicrawl"
)

// Ensure LoggingFetcher implements klexicrawl.Fetcher.
var _ klexicrawl.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging of every fetch.
type LoggingFetcher struct {
	next   klexicrawl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next klexicrawl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs URL, size, duration and
// error code.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Debug("fetch failed",
			"url", url,
			"code", klexicrawl.ErrorCode(err),
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Debug("fetched",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

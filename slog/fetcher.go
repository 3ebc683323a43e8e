// Package slog provides logging decorators for sitewalk interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sitewalk/sitewalk"
)

// Ensure LoggingFetcher implements sitewalk.Fetcher.
var _ sitewalk.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging of each request.
type LoggingFetcher struct {
	next   sitewalk.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next sitewalk.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *sitewalk.FetchResult, err error) {
	defer func(begin time.Time) {
		status := 0
		bytes := 0
		if res != nil {
			status = res.StatusCode
			bytes = len(res.Body)
		}
		f.logger.Debug("fetch",
			"url", url,
			"status", status,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Package slog provides logging decorators for figyaml interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/figyaml/figyaml"
)

// Ensure LoggingFetcher implements figyaml.FileFetcher at compile time.
var _ figyaml.FileFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a FileFetcher with structured request logging.
type LoggingFetcher struct {
	next   figyaml.FileFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next figyaml.FileFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchFile delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) FetchFile(ctx context.Context, key string, ids ...string) (*figyaml.File, error) {
	begin := time.Now()
	file, err := f.next.FetchFile(ctx, key, ids...)
	if err != nil {
		f.logger.Error("file fetch failed",
			"key", key,
			"nodes", len(ids),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	f.logger.Info("file fetch",
		"key", key,
		"nodes", len(ids),
		"name", file.Name,
		"duration", time.Since(begin),
	)
	return file, nil
}

// FetchFileJSON delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) FetchFileJSON(ctx context.Context, key string, ids ...string) ([]byte, error) {
	begin := time.Now()
	data, err := f.next.FetchFileJSON(ctx, key, ids...)
	if err != nil {
		f.logger.Error("file fetch failed",
			"key", key,
			"nodes", len(ids),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	f.logger.Info("file fetch",
		"key", key,
		"nodes", len(ids),
		"bytes", len(data),
		"duration", time.Since(begin),
	)
	return data, nil
}

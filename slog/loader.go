// Package slog provides logging decorators around the domain interfaces.
// The API key and page content never reach the log output; only URLs,
// sizes, and durations are recorded.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/DS123-ally/websummary"
)

// Ensure LoggingLoader implements websummary.Loader at compile time.
var _ websummary.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with timing and size logging.
type LoggingLoader struct {
	next   websummary.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next websummary.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the outcome.
func (l *LoggingLoader) Load(ctx context.Context, url string) ([]*websummary.Document, error) {
	begin := time.Now()
	docs, err := l.next.Load(ctx, url)
	if err != nil {
		l.logger.Error("load",
			slog.String("url", url),
			slog.String("err", websummary.ErrorMessage(err)),
			slog.Duration("duration", time.Since(begin)))
		return nil, err
	}

	var bytes int
	for _, doc := range docs {
		bytes += len(doc.Content)
	}
	l.logger.Info("load",
		slog.String("url", url),
		slog.Int("documents", len(docs)),
		slog.Int("bytes", bytes),
		slog.Duration("duration", time.Since(begin)))
	return docs, nil
}

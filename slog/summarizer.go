package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/DS123-ally/websummary"
)

// Ensure LoggingSummarizer implements websummary.Summarizer at compile time.
var _ websummary.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with timing and size logging.
type LoggingSummarizer struct {
	next   websummary.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next websummary.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the outcome.
func (s *LoggingSummarizer) Summarize(ctx context.Context, req *websummary.SummaryRequest) (*websummary.SummaryResult, error) {
	begin := time.Now()
	result, err := s.next.Summarize(ctx, req)
	if err != nil {
		s.logger.Error("summarize",
			slog.Int("documents", len(req.Documents)),
			slog.String("length", string(req.Length)),
			slog.String("chain", string(req.Chain)),
			slog.String("err", websummary.ErrorMessage(err)),
			slog.Duration("duration", time.Since(begin)))
		return nil, err
	}

	s.logger.Info("summarize",
		slog.Int("documents", len(req.Documents)),
		slog.String("length", string(req.Length)),
		slog.String("chain", string(req.Chain)),
		slog.Int("chars", len(result.Summary)),
		slog.Duration("duration", time.Since(begin)))
	return result, nil
}

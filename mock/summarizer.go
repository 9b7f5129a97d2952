package mock

import (
	"context"

	"github.com/DS123-ally/websummary"
)

var _ websummary.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of websummary.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, req *websummary.SummaryRequest) (*websummary.SummaryResult, error)
}

func (s *Summarizer) Summarize(ctx context.Context, req *websummary.SummaryRequest) (*websummary.SummaryResult, error) {
	return s.SummarizeFn(ctx, req)
}

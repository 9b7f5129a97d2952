package mock

import "github.com/DS123-ally/websummary"

var _ websummary.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of websummary.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*websummary.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*websummary.ExtractResult, error) {
	return e.ExtractFn(html)
}

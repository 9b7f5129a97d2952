// Package readability implements websummary.Extractor using the
// go-readability port of Mozilla's Readability.
package readability

import (
	"strings"

	"github.com/DS123-ally/websummary"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements websummary.Extractor at compile time.
var _ websummary.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*websummary.ExtractResult, error) {
	if rawHTML == "" {
		return nil, websummary.Errorf(websummary.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &websummary.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

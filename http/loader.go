package http

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DS123-ally/websummary"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Ensure Loader implements websummary.Loader at compile time.
var _ websummary.Loader = (*Loader)(nil)

// Loader turns a URL into extracted documents by composing a Fetcher,
// an Extractor, and a Converter: fetch HTML, strip boilerplate, convert
// the remaining content to Markdown.
type Loader struct {
	Fetcher   websummary.Fetcher
	Extractor websummary.Extractor
	Converter websummary.Converter
}

// NewLoader creates a Loader from the given collaborators.
func NewLoader(fetcher websummary.Fetcher, extractor websummary.Extractor, converter websummary.Converter) *Loader {
	return &Loader{Fetcher: fetcher, Extractor: extractor, Converter: converter}
}

// Load retrieves the page at url and returns its extracted content as a
// single document. Returns ENOTFOUND when the page yields no usable text.
func (l *Loader) Load(ctx context.Context, url string) ([]*websummary.Document, error) {
	html, err := l.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	result, err := l.Extractor.Extract(html)
	if err != nil {
		return nil, websummary.Errorf(websummary.ENOTFOUND, "extract %s: %v", url, err)
	}
	if strings.TrimSpace(result.ContentHTML) == "" {
		return nil, websummary.Errorf(websummary.ENOTFOUND, "no content found at %s", url)
	}

	markdown, err := l.Converter.Convert(result.ContentHTML)
	if err != nil {
		return nil, websummary.Errorf(websummary.ENOTFOUND, "convert %s: %v", url, err)
	}
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return nil, websummary.Errorf(websummary.ENOTFOUND, "no content found at %s", url)
	}

	doc := &websummary.Document{
		ID:          uuid.NewString(),
		SourceURL:   url,
		Title:       result.Title,
		Content:     markdown,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(markdown)),
		FetchedAt:   time.Now().UTC(),
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return []*websummary.Document{doc}, nil
}

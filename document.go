package websummary

import (
	"context"
	"time"
)

// Document represents a block of textual content extracted from a web page.
// Documents live for the duration of a single request and are never persisted.
type Document struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // Markdown
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// Loader turns a URL into one or more extracted documents.
// Implementations own page retrieval, content extraction, and conversion;
// callers must validate the URL before invoking Load.
type Loader interface {
	// Load retrieves the page at url and returns its extracted content.
	// Returns EUNAVAILABLE if the page cannot be retrieved and ENOTFOUND
	// if retrieval succeeded but no usable content was found.
	Load(ctx context.Context, url string) ([]*Document, error)
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page body at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Package goquery implements websummary.Extractor with CSS selectors.
// It is a last-resort extractor for pages where the readability heuristics
// find nothing: it keeps the page body (preferring main/article regions)
// and drops obvious boilerplate elements.
package goquery

import (
	"strings"

	"github.com/DS123-ally/websummary"
	"github.com/PuerkitoBio/goquery"
)

// boilerplateSelectors are removed from the page before content selection.
var boilerplateSelectors = []string{
	"script", "style", "noscript", "template",
	"nav", "header", "footer", "aside",
	"form", "iframe",
}

// contentSelectors are tried in order; the first non-empty match wins.
var contentSelectors = []string{"main", "article", "[role=main]", "body"}

// Ensure Extractor implements websummary.Extractor at compile time.
var _ websummary.Extractor = (*Extractor)(nil)

// Extractor extracts page content using goquery selections.
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

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, websummary.Errorf(websummary.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(strings.Join(boilerplateSelectors, ", ")).Remove()

	var contentHTML string
	for _, sel := range contentSelectors {
		selection := doc.Find(sel).First()
		if selection.Length() == 0 {
			continue
		}
		inner, err := selection.Html()
		if err != nil {
			continue
		}
		if strings.TrimSpace(selection.Text()) == "" {
			continue
		}
		contentHTML = inner
		break
	}

	return &websummary.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

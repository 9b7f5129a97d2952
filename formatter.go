package websummary

import (
	"strings"
	"unicode/utf8"
)

// FormatDocuments formats documents for display or LLM context.
// Uses title if available, falls back to source URL.
// Documents are separated by blank lines.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		header := doc.Title
		if header == "" {
			header = doc.SourceURL
		}
		parts = append(parts, "## Document: "+header+"\n"+doc.Content)
	}

	return strings.Join(parts, "\n\n")
}

// PreviewDocuments returns a truncated plain preview of document content
// for the "show extracted text" panel. Each document contributes at most
// limit characters.
func PreviewDocuments(docs []*Document, limit int) string {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		content := doc.Content
		if limit > 0 && len(content) > limit {
			// Back up to a rune boundary so the cut never splits a
			// multi-byte character.
			cut := limit
			for cut > 0 && !utf8.RuneStart(content[cut]) {
				cut--
			}
			content = content[:cut]
		}
		parts = append(parts, content)
	}
	return strings.Join(parts, "\n\n")
}

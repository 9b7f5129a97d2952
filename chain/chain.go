// Package chain turns extracted documents into a summary by driving a
// hosted model with one of three combination strategies: stuff everything
// into one call, map-reduce over documents, or iterative refinement.
package chain

import (
	"context"
	"strings"
	"time"

	"github.com/DS123-ally/websummary"
)

// Ensure Chain implements websummary.Summarizer at compile time.
var _ websummary.Summarizer = (*Chain)(nil)

// Chain implements websummary.Summarizer on top of a websummary.Model.
type Chain struct {
	Model websummary.Model
}

// New creates a Chain for the given model.
func New(model websummary.Model) *Chain {
	return &Chain{Model: model}
}

// Summarize generates a summary for the request using its chain type.
// The debug metadata records the final prompt sent to the model, the
// number of model calls, and the elapsed time.
func (c *Chain) Summarize(ctx context.Context, req *websummary.SummaryRequest) (*websummary.SummaryResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	instruction, err := websummary.Prompt(req.Length)
	if err != nil {
		return nil, err
	}

	begin := time.Now()

	var summary, finalPrompt string
	var calls int
	switch req.Chain {
	case websummary.ChainStuff:
		summary, finalPrompt, calls, err = c.stuff(ctx, instruction, req.Documents)
	case websummary.ChainMapReduce:
		summary, finalPrompt, calls, err = c.mapReduce(ctx, instruction, req.Documents)
	case websummary.ChainRefine:
		summary, finalPrompt, calls, err = c.refine(ctx, instruction, req.Documents)
	}
	if err != nil {
		return nil, err
	}

	return &websummary.SummaryResult{
		Summary: summary,
		Debug: &websummary.SummaryDebug{
			Prompt:        finalPrompt,
			DocumentCount: len(req.Documents),
			ModelCalls:    calls,
			SummaryChars:  len(summary),
			Elapsed:       time.Since(begin),
			Model:         c.Model.Name(),
			Chain:         req.Chain,
		},
	}, nil
}

// stuff sends the instruction and all documents in a single call.
func (c *Chain) stuff(ctx context.Context, instruction string, docs []*websummary.Document) (string, string, int, error) {
	prompt := stuffPrompt(instruction, docs)
	summary, err := c.Model.Complete(ctx, prompt)
	if err != nil {
		return "", "", 0, err
	}
	return summary, prompt, 1, nil
}

// mapReduce summarizes each document separately, then combines the
// partial summaries in a final call. With a single document it behaves
// like stuff with one extra combining call.
func (c *Chain) mapReduce(ctx context.Context, instruction string, docs []*websummary.Document) (string, string, int, error) {
	calls := 0
	partials := make([]string, 0, len(docs))
	for _, doc := range docs {
		partial, err := c.Model.Complete(ctx, mapPrompt(doc))
		if err != nil {
			return "", "", calls, err
		}
		calls++
		partials = append(partials, partial)
	}

	prompt := reducePrompt(instruction, partials)
	summary, err := c.Model.Complete(ctx, prompt)
	if err != nil {
		return "", "", calls, err
	}
	calls++

	return summary, prompt, calls, nil
}

// refine summarizes the first document, then folds each subsequent
// document into the running summary.
func (c *Chain) refine(ctx context.Context, instruction string, docs []*websummary.Document) (string, string, int, error) {
	prompt := stuffPrompt(instruction, docs[:1])
	summary, err := c.Model.Complete(ctx, prompt)
	if err != nil {
		return "", "", 0, err
	}
	calls := 1

	for _, doc := range docs[1:] {
		prompt = refinePrompt(instruction, summary, doc)
		summary, err = c.Model.Complete(ctx, prompt)
		if err != nil {
			return "", "", calls, err
		}
		calls++
	}

	return summary, prompt, calls, nil
}

func stuffPrompt(instruction string, docs []*websummary.Document) string {
	var sb strings.Builder
	sb.WriteString(instruction)
	sb.WriteString("\n\nContent:\n\n")
	sb.WriteString(websummary.FormatDocuments(docs))
	return sb.String()
}

func mapPrompt(doc *websummary.Document) string {
	var sb strings.Builder
	sb.WriteString("Summarize the key points of the following section in a few sentences.")
	sb.WriteString("\n\nContent:\n\n")
	sb.WriteString(websummary.FormatDocuments([]*websummary.Document{doc}))
	return sb.String()
}

func reducePrompt(instruction string, partials []string) string {
	var sb strings.Builder
	sb.WriteString(instruction)
	sb.WriteString("\n\nThe following are partial summaries of sections of the page. ")
	sb.WriteString("Combine them into a single coherent summary.\n")
	for _, partial := range partials {
		sb.WriteString("\n- ")
		sb.WriteString(partial)
	}
	return sb.String()
}

func refinePrompt(instruction string, summary string, doc *websummary.Document) string {
	var sb strings.Builder
	sb.WriteString(instruction)
	sb.WriteString("\n\nExisting summary:\n\n")
	sb.WriteString(summary)
	sb.WriteString("\n\nAdditional content:\n\n")
	sb.WriteString(websummary.FormatDocuments([]*websummary.Document{doc}))
	sb.WriteString("\n\nRefine the existing summary so it also covers the additional content.")
	return sb.String()
}

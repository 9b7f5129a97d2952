package websummary

import (
	"context"
	"fmt"
	"time"
)

// Length selects how detailed the generated summary should be.
type Length string

// Length options selectable in the UI.
const (
	LengthShort    Length = "short"
	LengthMedium   Length = "medium"
	LengthDetailed Length = "detailed"
)

// Lengths returns all selectable length options in display order.
func Lengths() []Length {
	return []Length{LengthShort, LengthMedium, LengthDetailed}
}

// Words returns the approximate word target for the option.
// Returns 0 for unknown values.
func (l Length) Words() int {
	switch l {
	case LengthShort:
		return 100
	case LengthMedium:
		return 300
	case LengthDetailed:
		return 600
	}
	return 0
}

// Validate returns an error if the length is not a known option.
func (l Length) Validate() error {
	if l.Words() == 0 {
		return Errorf(EINVALID, "unknown summary length %q", string(l))
	}
	return nil
}

// Prompt builds the summarization instruction for the given length option.
// The output is deterministic and embeds the option name verbatim so that
// distinct options always produce distinct instructions.
func Prompt(l Length) (string, error) {
	if err := l.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Provide a clear, neutral %s summary of the content in about %d words. "+
			"Include the key points and conclusions.",
		string(l), l.Words(),
	), nil
}

// ChainType selects how documents are combined before being sent to the model.
type ChainType string

// Chain types selectable in the UI.
const (
	// ChainStuff sends the instruction and all documents in a single call.
	ChainStuff ChainType = "stuff"

	// ChainMapReduce summarizes each document separately and then combines
	// the partial summaries in a final call.
	ChainMapReduce ChainType = "map_reduce"

	// ChainRefine summarizes the first document and then refines the
	// running summary with each subsequent document.
	ChainRefine ChainType = "refine"
)

// ChainTypes returns all selectable chain types in display order.
func ChainTypes() []ChainType {
	return []ChainType{ChainStuff, ChainMapReduce, ChainRefine}
}

// Validate returns an error if the chain type is not a known option.
func (c ChainType) Validate() error {
	switch c {
	case ChainStuff, ChainMapReduce, ChainRefine:
		return nil
	}
	return Errorf(EINVALID, "unknown chain type %q", string(c))
}

// SummaryRequest is the input to a summarization call: the extracted
// documents plus the desired length and combination strategy.
type SummaryRequest struct {
	Documents []*Document `json:"documents"`
	Length    Length      `json:"length"`
	Chain     ChainType   `json:"chain"`
}

// Validate returns an error if the request cannot be summarized.
func (r *SummaryRequest) Validate() error {
	if len(r.Documents) == 0 {
		return Errorf(EINVALID, "at least one document required")
	}
	if err := r.Length.Validate(); err != nil {
		return err
	}
	return r.Chain.Validate()
}

// SummaryDebug holds diagnostic metadata recorded while generating a summary.
// It has no behavioral contract beyond being displayed in the debug panel.
type SummaryDebug struct {
	Prompt        string        `json:"prompt"`
	DocumentCount int           `json:"documentCount"`
	ModelCalls    int           `json:"modelCalls"`
	SummaryChars  int           `json:"summaryChars"`
	Elapsed       time.Duration `json:"elapsed"`
	Model         string        `json:"model"`
	Chain         ChainType     `json:"chain"`
}

// SummaryResult is the output of a successful summarization call.
type SummaryResult struct {
	Summary string        `json:"summary"`
	Debug   *SummaryDebug `json:"debug,omitempty"`
}

// Summarizer turns extracted documents into generated summary text
// via a hosted model.
type Summarizer interface {
	// Summarize generates a summary for the request.
	// Returns EINVALID if the request has no documents or unknown options.
	Summarize(ctx context.Context, req *SummaryRequest) (*SummaryResult, error)
}

// Model is the raw hosted-completion capability: one prompt in, one
// generated text out. Implementations map upstream failures onto the
// application error codes (EUNAUTHORIZED, ERATELIMIT, EUNAVAILABLE).
type Model interface {
	// Complete sends the prompt to the hosted model and returns the
	// generated text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the upstream model identifier, for debug display.
	Name() string
}

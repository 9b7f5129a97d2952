package chain

import (
	"context"
	"strings"
	"time"

	"github.com/DS123-ally/websummary"
	"github.com/google/uuid"
)

// DefaultPreviewLimit bounds the "show extracted text" preview to the
// first characters of each document.
const DefaultPreviewLimit = 3000

// Runner executes one summarization request end to end and records its
// linear lifecycle on a websummary.Request: Validating, Loading,
// Summarizing, then Displaying or Error. A validation failure makes no
// loader call; a load failure makes no summarizer call.
type Runner struct {
	Loader     websummary.Loader
	Summarizer websummary.Summarizer

	// PreviewLimit caps the per-document extracted-text preview.
	// Zero means DefaultPreviewLimit.
	PreviewLimit int
}

// NewRunner creates a Runner from the given collaborators.
func NewRunner(loader websummary.Loader, summarizer websummary.Summarizer) *Runner {
	return &Runner{Loader: loader, Summarizer: summarizer}
}

// Run executes a single request. The returned record is always non-nil;
// failures end in StateError with the error code and user-facing message
// recorded on it.
func (r *Runner) Run(ctx context.Context, url string, length websummary.Length, chainType websummary.ChainType) *websummary.Request {
	rec := &websummary.Request{
		ID:        uuid.NewString(),
		URL:       strings.TrimSpace(url),
		Length:    length,
		Chain:     chainType,
		State:     websummary.StateIdle,
		StartedAt: time.Now().UTC(),
	}

	rec.State = websummary.StateValidating
	if err := websummary.ValidateURL(rec.URL); err != nil {
		return fail(rec, err)
	}
	if err := length.Validate(); err != nil {
		return fail(rec, err)
	}
	if err := chainType.Validate(); err != nil {
		return fail(rec, err)
	}

	rec.State = websummary.StateLoading
	docs, err := r.Loader.Load(ctx, rec.URL)
	if err != nil {
		return fail(rec, err)
	}
	if len(docs) == 0 {
		return fail(rec, websummary.Errorf(websummary.ENOTFOUND, "no content found at %s", rec.URL))
	}

	rec.State = websummary.StateSummarizing
	result, err := r.Summarizer.Summarize(ctx, &websummary.SummaryRequest{
		Documents: docs,
		Length:    length,
		Chain:     chainType,
	})
	if err != nil {
		return fail(rec, err)
	}

	limit := r.PreviewLimit
	if limit == 0 {
		limit = DefaultPreviewLimit
	}

	rec.Result = result
	rec.Preview = websummary.PreviewDocuments(docs, limit)
	rec.State = websummary.StateDisplaying
	rec.FinishedAt = time.Now().UTC()
	return rec
}

func fail(rec *websummary.Request, err error) *websummary.Request {
	rec.State = websummary.StateError
	rec.ErrCode = websummary.ErrorCode(err)
	rec.ErrMessage = websummary.ErrorMessage(err)
	rec.FinishedAt = time.Now().UTC()
	return rec
}

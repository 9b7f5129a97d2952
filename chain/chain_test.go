package chain_test

import (
	"context"
	"testing"

	"github.com/DS123-ally/websummary"
	"github.com/DS123-ally/websummary/chain"
	"github.com/DS123-ally/websummary/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(url, title, content string) *websummary.Document {
	return &websummary.Document{SourceURL: url, Title: title, Content: content}
}

func TestChain_Summarize_Stuff(t *testing.T) {
	t.Parallel()

	var gotPrompt string
	model := &mock.Model{
		CompleteFn: func(ctx context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return "A brief example summary.", nil
		},
		NameFn: func() string { return "llama-3.1-8b-instant" },
	}

	c := chain.New(model)
	result, err := c.Summarize(context.Background(), &websummary.SummaryRequest{
		Documents: []*websummary.Document{doc("https://example.com", "Example Domain", "Example content.")},
		Length:    websummary.LengthShort,
		Chain:     websummary.ChainStuff,
	})

	require.NoError(t, err)
	assert.Equal(t, "A brief example summary.", result.Summary)

	// The model receives the instruction with the selected option and the
	// document text in one prompt.
	assert.Contains(t, gotPrompt, "short")
	assert.Contains(t, gotPrompt, "Example content.")

	require.NotNil(t, result.Debug)
	assert.Equal(t, gotPrompt, result.Debug.Prompt)
	assert.Equal(t, 1, result.Debug.DocumentCount)
	assert.Equal(t, 1, result.Debug.ModelCalls)
	assert.Equal(t, len(result.Summary), result.Debug.SummaryChars)
	assert.Equal(t, "llama-3.1-8b-instant", result.Debug.Model)
	assert.Equal(t, websummary.ChainStuff, result.Debug.Chain)
}

func TestChain_Summarize_MapReduce(t *testing.T) {
	t.Parallel()

	var prompts []string
	model := &mock.Model{
		CompleteFn: func(ctx context.Context, prompt string) (string, error) {
			prompts = append(prompts, prompt)
			return "partial", nil
		},
	}

	docs := []*websummary.Document{
		doc("https://example.com/1", "One", "First section."),
		doc("https://example.com/2", "Two", "Second section."),
	}

	c := chain.New(model)
	result, err := c.Summarize(context.Background(), &websummary.SummaryRequest{
		Documents: docs,
		Length:    websummary.LengthMedium,
		Chain:     websummary.ChainMapReduce,
	})

	require.NoError(t, err)
	// One call per document plus the combining call.
	require.Len(t, prompts, 3)
	assert.Contains(t, prompts[0], "First section.")
	assert.Contains(t, prompts[1], "Second section.")
	assert.Contains(t, prompts[2], "medium")
	assert.Contains(t, prompts[2], "partial")
	assert.Equal(t, 3, result.Debug.ModelCalls)
	assert.Equal(t, prompts[2], result.Debug.Prompt)
}

func TestChain_Summarize_Refine(t *testing.T) {
	t.Parallel()

	var prompts []string
	model := &mock.Model{
		CompleteFn: func(ctx context.Context, prompt string) (string, error) {
			prompts = append(prompts, prompt)
			return "running summary " + string(rune('0'+len(prompts))), nil
		},
	}

	docs := []*websummary.Document{
		doc("https://example.com/1", "One", "First section."),
		doc("https://example.com/2", "Two", "Second section."),
	}

	c := chain.New(model)
	result, err := c.Summarize(context.Background(), &websummary.SummaryRequest{
		Documents: docs,
		Length:    websummary.LengthDetailed,
		Chain:     websummary.ChainRefine,
	})

	require.NoError(t, err)
	require.Len(t, prompts, 2)
	assert.Contains(t, prompts[0], "First section.")
	// The refinement step carries the previous summary and the next document.
	assert.Contains(t, prompts[1], "running summary 1")
	assert.Contains(t, prompts[1], "Second section.")
	assert.Equal(t, "running summary 2", result.Summary)
	assert.Equal(t, 2, result.Debug.ModelCalls)
}

func TestChain_Summarize_RequiresDocuments(t *testing.T) {
	t.Parallel()

	var calls int
	model := &mock.Model{
		CompleteFn: func(ctx context.Context, prompt string) (string, error) {
			calls++
			return "", nil
		},
	}

	c := chain.New(model)
	_, err := c.Summarize(context.Background(), &websummary.SummaryRequest{
		Length: websummary.LengthShort,
		Chain:  websummary.ChainStuff,
	})

	require.Error(t, err)
	assert.Equal(t, websummary.EINVALID, websummary.ErrorCode(err))
	assert.Zero(t, calls)
}

func TestChain_Summarize_PropagatesModelErrors(t *testing.T) {
	t.Parallel()

	wantErr := websummary.Errorf(websummary.ERATELIMIT, "rate limited by Groq")
	model := &mock.Model{
		CompleteFn: func(ctx context.Context, prompt string) (string, error) {
			return "", wantErr
		},
	}

	c := chain.New(model)
	_, err := c.Summarize(context.Background(), &websummary.SummaryRequest{
		Documents: []*websummary.Document{doc("https://example.com", "", "text")},
		Length:    websummary.LengthShort,
		Chain:     websummary.ChainStuff,
	})

	require.Error(t, err)
	assert.Equal(t, websummary.ERATELIMIT, websummary.ErrorCode(err))
}

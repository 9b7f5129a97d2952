package groq_test

import (
	"context"
	"testing"

	"github.com/DS123-ally/websummary"
	"github.com/DS123-ally/websummary/groq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := groq.NewModel("", "llama-3.1-8b-instant")

	require.Error(t, err)
	assert.Equal(t, websummary.EUNAUTHORIZED, websummary.ErrorCode(err))
}

func TestNewModel_DefaultsModelName(t *testing.T) {
	t.Parallel()

	m, err := groq.NewModel("key", "")
	require.NoError(t, err)
	assert.Equal(t, groq.DefaultModel, m.Name())
}

func TestModel_Complete_RejectsEmptyPrompt(t *testing.T) {
	t.Parallel()

	m, err := groq.NewModel("key", "")
	require.NoError(t, err)

	_, err = m.Complete(context.Background(), "  ")
	require.Error(t, err)
	assert.Equal(t, websummary.EINVALID, websummary.ErrorCode(err))
}

func TestModel_Complete_UsesFirstSuccessfulStyle(t *testing.T) {
	t.Parallel()

	var primaryCalls, fallbackCalls int
	m, err := groq.NewModel("key", "",
		groq.WithInvokers(
			func(ctx context.Context, prompt string) (string, error) {
				primaryCalls++
				return "A brief example summary.", nil
			},
			func(ctx context.Context, prompt string) (string, error) {
				fallbackCalls++
				return "should not be reached", nil
			},
		),
	)
	require.NoError(t, err)

	text, err := m.Complete(context.Background(), "summarize this")

	require.NoError(t, err)
	assert.Equal(t, "A brief example summary.", text)
	assert.Equal(t, 1, primaryCalls)
	assert.Zero(t, fallbackCalls)
}

func TestModel_Complete_FallsBackOnNotImplemented(t *testing.T) {
	t.Parallel()

	var primaryPrompt, fallbackPrompt string
	m, err := groq.NewModel("key", "",
		groq.WithInvokers(
			func(ctx context.Context, prompt string) (string, error) {
				primaryPrompt = prompt
				return "", websummary.Errorf(websummary.ENOTIMPLEMENTED, "endpoint not available")
			},
			func(ctx context.Context, prompt string) (string, error) {
				fallbackPrompt = prompt
				return "fallback summary", nil
			},
		),
	)
	require.NoError(t, err)

	text, err := m.Complete(context.Background(), "summarize this page")

	require.NoError(t, err)
	assert.Equal(t, "fallback summary", text)
	// The fallback must receive the identical payload.
	assert.Equal(t, primaryPrompt, fallbackPrompt)
	assert.Equal(t, "summarize this page", fallbackPrompt)
}

func TestModel_Complete_DoesNotFallBackOnBusinessErrors(t *testing.T) {
	t.Parallel()

	codes := []string{
		websummary.EUNAUTHORIZED,
		websummary.ERATELIMIT,
		websummary.EUNAVAILABLE,
	}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			t.Parallel()

			var fallbackCalls int
			m, err := groq.NewModel("key", "",
				groq.WithInvokers(
					func(ctx context.Context, prompt string) (string, error) {
						return "", websummary.Errorf(code, "upstream failure")
					},
					func(ctx context.Context, prompt string) (string, error) {
						fallbackCalls++
						return "should not run", nil
					},
				),
			)
			require.NoError(t, err)

			_, err = m.Complete(context.Background(), "summarize this")

			require.Error(t, err)
			assert.Equal(t, code, websummary.ErrorCode(err))
			assert.Zero(t, fallbackCalls, "fallback must not run for %s", code)
		})
	}
}

func TestModel_Complete_ReturnsLastErrorWhenAllStylesMissing(t *testing.T) {
	t.Parallel()

	m, err := groq.NewModel("key", "",
		groq.WithInvokers(
			func(ctx context.Context, prompt string) (string, error) {
				return "", websummary.Errorf(websummary.ENOTIMPLEMENTED, "chat endpoint missing")
			},
			func(ctx context.Context, prompt string) (string, error) {
				return "", websummary.Errorf(websummary.ENOTIMPLEMENTED, "completions endpoint missing")
			},
		),
	)
	require.NoError(t, err)

	_, err = m.Complete(context.Background(), "summarize this")

	require.Error(t, err)
	assert.Equal(t, websummary.ENOTIMPLEMENTED, websummary.ErrorCode(err))
	assert.Contains(t, websummary.ErrorMessage(err), "completions endpoint missing")
}

func TestModel_Complete_RejectsEmptyInvokerList(t *testing.T) {
	t.Parallel()

	m, err := groq.NewModel("key", "", groq.WithInvokers())
	require.NoError(t, err)

	text, err := m.Complete(context.Background(), "summarize this")

	require.Error(t, err)
	assert.Empty(t, text)
	assert.Equal(t, websummary.EINTERNAL, websummary.ErrorCode(err))
}

func TestModel_Complete_WrapsUnknownErrors(t *testing.T) {
	t.Parallel()

	m, err := groq.NewModel("key", "",
		groq.WithInvokers(
			func(ctx context.Context, prompt string) (string, error) {
				return "", context.DeadlineExceeded
			},
		),
	)
	require.NoError(t, err)

	_, err = m.Complete(context.Background(), "summarize this")

	require.Error(t, err)
	assert.Equal(t, websummary.EUNAVAILABLE, websummary.ErrorCode(err))
}

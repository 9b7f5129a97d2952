// Package groq implements websummary.Model against Groq's OpenAI-compatible
// inference API using the openai-go client.
package groq

import (
	"context"
	"errors"
	"strings"

	"github.com/DS123-ally/websummary"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// DefaultModel is the model used when none is configured.
const DefaultModel = "llama-3.1-8b-instant"

const systemPrompt = "You summarize web page content. Follow the length " +
	"instruction exactly, stay neutral and factual, and answer in the " +
	"language of the content."

// InvokeFunc is one invocation style of the hosted API: a calling
// convention that takes a prompt and returns generated text. Styles are
// tried in order; a style that the endpoint does not implement yields an
// ENOTIMPLEMENTED error, which moves the request to the next style with
// the identical payload. Any other failure propagates unchanged.
type InvokeFunc func(ctx context.Context, prompt string) (string, error)

// Ensure Model implements websummary.Model at compile time.
var _ websummary.Model = (*Model)(nil)

// Model generates text through Groq's hosted chat-completion models.
type Model struct {
	client   openai.Client
	name     string
	baseURL  string
	invokers []InvokeFunc
}

// Option configures a Model.
type Option func(*Model)

// WithBaseURL overrides the API endpoint. Defaults to DefaultBaseURL.
func WithBaseURL(url string) Option {
	return func(m *Model) {
		m.baseURL = url
	}
}

// WithInvokers replaces the ordered invocation styles. Used by tests to
// substitute stub styles.
func WithInvokers(invokers ...InvokeFunc) Option {
	return func(m *Model) {
		m.invokers = invokers
	}
}

// NewModel creates a Model. The API key is required; it is carried only
// inside the HTTP client and never logged.
func NewModel(apiKey, name string, opts ...Option) (*Model, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, websummary.Errorf(websummary.EUNAUTHORIZED, "Groq API key required")
	}
	if name == "" {
		name = DefaultModel
	}

	m := &Model{name: name, baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(m)
	}

	m.client = openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(m.baseURL),
	)

	if m.invokers == nil {
		m.invokers = []InvokeFunc{m.chatCompletion, m.legacyCompletion}
	}

	return m, nil
}

// Name returns the upstream model identifier.
func (m *Model) Name() string {
	return m.name
}

// Complete sends the prompt through the invocation styles in order.
// The fallback fires only for ENOTIMPLEMENTED failures; business errors
// (bad credentials, rate limits, model failures) surface immediately.
func (m *Model) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", websummary.Errorf(websummary.EINVALID, "prompt required")
	}
	if len(m.invokers) == 0 {
		return "", websummary.Errorf(websummary.EINTERNAL, "no invocation styles configured")
	}

	var lastErr error
	for _, invoke := range m.invokers {
		text, err := invoke(ctx, prompt)
		if err == nil {
			return text, nil
		}
		err = classify(err)
		if websummary.ErrorCode(err) != websummary.ENOTIMPLEMENTED {
			return "", err
		}
		lastErr = err
	}

	return "", lastErr
}

// chatCompletion is the primary invocation style: the chat-completions API.
func (m *Model) chatCompletion(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(m.name),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.3),
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", websummary.Errorf(websummary.EUNAVAILABLE, "model returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", websummary.Errorf(websummary.EUNAVAILABLE, "model returned empty content")
	}

	return text, nil
}

// legacyCompletion is the fallback invocation style: the legacy
// text-completions API, for deployments that predate the chat endpoint.
func (m *Model) legacyCompletion(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Completions.New(ctx, openai.CompletionNewParams{
		Model: openai.CompletionNewParamsModel(m.name),
		Prompt: openai.CompletionNewParamsPromptUnion{
			OfString: openai.String(systemPrompt + "\n\n" + prompt),
		},
		MaxTokens:   openai.Int(1024),
		Temperature: openai.Float(0.3),
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", websummary.Errorf(websummary.EUNAVAILABLE, "model returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Text)
	if text == "" {
		return "", websummary.Errorf(websummary.EUNAVAILABLE, "model returned empty content")
	}

	return text, nil
}

// classify maps upstream failures onto the application error taxonomy.
// Application errors pass through untouched.
func classify(err error) error {
	var appErr *websummary.Error
	if errors.As(err, &appErr) {
		return err
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return websummary.Errorf(websummary.EUNAUTHORIZED, "invalid Groq API key: %s", apiErr.Message)
		case apiErr.StatusCode == 404 || apiErr.StatusCode == 405 || apiErr.StatusCode == 501:
			return websummary.Errorf(websummary.ENOTIMPLEMENTED, "endpoint not available: %s", apiErr.Message)
		case apiErr.StatusCode == 429:
			return websummary.Errorf(websummary.ERATELIMIT, "rate limited by Groq: %s", apiErr.Message)
		default:
			return websummary.Errorf(websummary.EUNAVAILABLE, "Groq request failed: %s", apiErr.Message)
		}
	}

	return websummary.Errorf(websummary.EUNAVAILABLE, "Groq request failed: %v", err)
}

// Package gemini implements websummary.Model using Google Gemini, as an
// alternative to the default Groq backend.
package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/DS123-ally/websummary"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const systemInstruction = "You summarize web page content. Follow the " +
	"length instruction exactly, stay neutral and factual, and answer in " +
	"the language of the content."

// Ensure Model implements websummary.Model at compile time.
var _ websummary.Model = (*Model)(nil)

// Model generates text through the Gemini API.
type Model struct {
	client *genai.Client
	name   string
}

// NewModel creates a Model on top of an existing genai client.
func NewModel(client *genai.Client, name string) *Model {
	if name == "" {
		name = DefaultModel
	}
	return &Model{client: client, name: name}
}

// Name returns the upstream model identifier.
func (m *Model) Name() string {
	return m.name
}

// Complete sends the prompt to Gemini and returns the generated text.
func (m *Model) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", websummary.Errorf(websummary.EINVALID, "prompt required")
	}

	result, err := m.client.Models.GenerateContent(ctx, m.name,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", classify(err)
	}
	if result == nil {
		return "", websummary.Errorf(websummary.EINTERNAL, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", websummary.Errorf(websummary.EUNAVAILABLE, "gemini returned empty content")
	}

	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}
}

// classify maps Gemini failures onto the application error taxonomy.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 401 || apiErr.Code == 403:
			return websummary.Errorf(websummary.EUNAUTHORIZED, "invalid Gemini API key: %s", apiErr.Message)
		case apiErr.Code == 429:
			return websummary.Errorf(websummary.ERATELIMIT, "rate limited by Gemini: %s", apiErr.Message)
		default:
			return websummary.Errorf(websummary.EUNAVAILABLE, "Gemini request failed: %s", apiErr.Message)
		}
	}
	return websummary.Errorf(websummary.EUNAVAILABLE, "Gemini request failed: %v", err)
}

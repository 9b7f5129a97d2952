// Package config loads runtime configuration from the environment.
package config

import (
	"time"

	"github.com/DS123-ally/websummary"
	"github.com/caarlos0/env/v11"
)

// Backends selectable via SUMMARY_BACKEND.
const (
	BackendGroq   = "groq"
	BackendGemini = "gemini"
)

// Extractors selectable via EXTRACTOR.
const (
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
	ExtractorGoquery     = "goquery"
)

// Config holds all runtime settings. The API keys are secrets: they are
// read from the environment only and must never be logged or rendered.
type Config struct {
	Addr string `env:"ADDR" envDefault:":8080"`

	Backend      string `env:"SUMMARY_BACKEND" envDefault:"groq"`
	GroqAPIKey   string `env:"GROQ_API_KEY"`
	GroqModel    string `env:"GROQ_MODEL" envDefault:"llama-3.1-8b-instant"`
	GroqBaseURL  string `env:"GROQ_BASE_URL"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	Extractor    string        `env:"EXTRACTOR" envDefault:"readability"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"15s"`
	UserAgent    string        `env:"USER_AGENT"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, websummary.Errorf(websummary.EINVALID, "parse environment: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints: a known backend and extractor,
// and the API key the selected backend requires.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendGroq:
		if c.GroqAPIKey == "" {
			return websummary.Errorf(websummary.EUNAUTHORIZED, "GROQ_API_KEY environment variable not set")
		}
	case BackendGemini:
		if c.GeminiAPIKey == "" {
			return websummary.Errorf(websummary.EUNAUTHORIZED, "GEMINI_API_KEY environment variable not set")
		}
	default:
		return websummary.Errorf(websummary.EINVALID, "unknown backend %q", c.Backend)
	}

	switch c.Extractor {
	case ExtractorReadability, ExtractorTrafilatura, ExtractorGoquery:
	default:
		return websummary.Errorf(websummary.EINVALID, "unknown extractor %q", c.Extractor)
	}

	return nil
}

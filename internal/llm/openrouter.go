package llm

import (
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel   = "google/gemini-2.5-flash"

	// openRouterTitle is the app name OpenRouter shows in its activity log.
	openRouterTitle = "JusMind"

	// purposeHeader carries the journal label, so both sides of a call
	// can be matched up when reading usage.
	purposeHeader = "X-JusMind-Purpose"
)

// OpenRouterProvider is an OpenAIProvider pointed at OpenRouter. Each
// request is tagged with the app title and the call's purpose label.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
// Model ids are namespaced ("google/gemini-2.5-flash") and used as given.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultOpenRouterModel
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = defaultOpenRouterBaseURL
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	config.HTTPClient = &http.Client{Transport: openRouterTransport{base: http.DefaultTransport}}

	return &OpenRouterProvider{OpenAIProvider: &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}}, nil
}

type openRouterTransport struct {
	base http.RoundTripper
}

func (t openRouterTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("X-Title", openRouterTitle)
	req.Header.Set(purposeHeader, PurposeFrom(req.Context()))
	return t.base.RoundTrip(req)
}

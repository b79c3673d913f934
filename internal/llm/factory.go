package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jusmind/jusmind/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// policy decorators. journal may be nil to skip the request journal.
func NewProvider(ctx context.Context, cfg Config, journal store.EventRepo, log zerolog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewOfflineProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return Wrap(base, cfg, journal, log), nil
}

// Wrap composes the decorators around base:
// caller → breaker → timeout → retry → logging → base.
func Wrap(base Provider, cfg Config, journal store.EventRepo, log zerolog.Logger) Provider {
	p := WithLogging(base, journal, log)
	p = WithRetry(p, cfg.Retry, log)
	p = WithTimeout(p, cfg.Timeout)
	return WithCircuitBreaker(p, cfg.Breaker, log)
}

// Package config loads the application configuration from the environment
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/jusmind/jusmind/internal/chat"
	"github.com/jusmind/jusmind/internal/llm"
)

// Config holds all application configuration.
type Config struct {
	LLM llm.Config

	// Discovered is set when the provider was picked from a vendor API key
	// variable because JUSMIND_LLM_PROVIDER was unset.
	Discovered bool

	LogLevel  string
	LogFormat string
	LogFile   string

	// DBPath overrides the default journal location. Empty means default.
	DBPath    string
	NoJournal bool

	ChatHistory int
}

// settings is the flat, validated view of the environment.
type settings struct {
	Provider         string        `env:"JUSMIND_LLM_PROVIDER" validate:"omitempty,oneof=gemini openai anthropic openrouter mock"`
	GeminiKey        string        `env:"JUSMIND_GEMINI_API_KEY" validate:"required_if=Provider gemini"`
	GeminiModel      string        `env:"JUSMIND_GEMINI_MODEL" validate:"required"`
	OpenAIKey        string        `env:"JUSMIND_OPENAI_API_KEY" validate:"required_if=Provider openai"`
	OpenAIModel      string        `env:"JUSMIND_OPENAI_MODEL" validate:"required"`
	OpenAIBaseURL    string        `env:"JUSMIND_OPENAI_BASE_URL" validate:"omitempty,url"`
	AnthropicKey     string        `env:"JUSMIND_ANTHROPIC_API_KEY" validate:"required_if=Provider anthropic"`
	AnthropicModel   string        `env:"JUSMIND_ANTHROPIC_MODEL" validate:"required"`
	OpenRouterKey    string        `env:"JUSMIND_OPENROUTER_API_KEY" validate:"required_if=Provider openrouter"`
	OpenRouterModel  string        `env:"JUSMIND_OPENROUTER_MODEL" validate:"required"`
	Timeout          time.Duration `env:"JUSMIND_LLM_TIMEOUT" validate:"gte=0"`
	MaxAttempts      int           `env:"JUSMIND_LLM_MAX_ATTEMPTS" validate:"gte=1,lte=10"`
	BreakerThreshold int           `env:"JUSMIND_BREAKER_THRESHOLD" validate:"gte=0"`
	BreakerCooldown  time.Duration `env:"JUSMIND_BREAKER_COOLDOWN" validate:"gte=0"`
	LogLevel         string        `env:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
	LogFormat        string        `env:"LOG_FORMAT" validate:"oneof=json pretty"`
	ChatHistory      int           `env:"JUSMIND_CHAT_HISTORY" validate:"gte=0,lte=200"`
}

// Load reads configuration from environment variables with defaults. The
// given env file, or .env when envFile is empty, is loaded first; a missing
// .env is not an error but a missing explicit file is. Variables already
// set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load() // .env is optional
	}

	def := llm.DefaultConfig()
	s := settings{
		Provider:         getEnv("JUSMIND_LLM_PROVIDER", ""),
		GeminiKey:        getEnv("JUSMIND_GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("JUSMIND_GEMINI_MODEL", def.Gemini.Model),
		OpenAIKey:        getEnv("JUSMIND_OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("JUSMIND_OPENAI_MODEL", def.OpenAI.Model),
		OpenAIBaseURL:    getEnv("JUSMIND_OPENAI_BASE_URL", ""),
		AnthropicKey:     getEnv("JUSMIND_ANTHROPIC_API_KEY", ""),
		AnthropicModel:   getEnv("JUSMIND_ANTHROPIC_MODEL", def.Anthropic.Model),
		OpenRouterKey:    getEnv("JUSMIND_OPENROUTER_API_KEY", ""),
		OpenRouterModel:  getEnv("JUSMIND_OPENROUTER_MODEL", def.OpenRouter.Model),
		Timeout:          getEnvDuration("JUSMIND_LLM_TIMEOUT", def.Timeout),
		MaxAttempts:      getEnvInt("JUSMIND_LLM_MAX_ATTEMPTS", def.Retry.MaxAttempts),
		BreakerThreshold: getEnvInt("JUSMIND_BREAKER_THRESHOLD", def.Breaker.Threshold),
		BreakerCooldown:  getEnvDuration("JUSMIND_BREAKER_COOLDOWN", def.Breaker.Cooldown),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:        strings.ToLower(getEnv("LOG_FORMAT", "pretty")),
		ChatHistory:      getEnvInt("JUSMIND_CHAT_HISTORY", chat.DefaultMaxHistory),
	}

	discovered := false
	if s.Provider == "" {
		discovered = discover(&s)
	}

	if err := validate(s); err != nil {
		return nil, err
	}

	cfg := &Config{
		LLM:         def,
		Discovered:  discovered,
		LogLevel:    s.LogLevel,
		LogFormat:   s.LogFormat,
		LogFile:     getEnv("JUSMIND_LOG_FILE", ""),
		DBPath:      getEnv("JUSMIND_DB", ""),
		NoJournal:   getEnvBool("JUSMIND_NO_JOURNAL", false),
		ChatHistory: s.ChatHistory,
	}
	cfg.LLM.Provider = s.Provider
	cfg.LLM.Gemini.APIKey = s.GeminiKey
	cfg.LLM.Gemini.Model = s.GeminiModel
	cfg.LLM.OpenAI.APIKey = s.OpenAIKey
	cfg.LLM.OpenAI.Model = s.OpenAIModel
	cfg.LLM.OpenAI.BaseURL = s.OpenAIBaseURL
	cfg.LLM.Anthropic.APIKey = s.AnthropicKey
	cfg.LLM.Anthropic.Model = s.AnthropicModel
	cfg.LLM.OpenRouter.APIKey = s.OpenRouterKey
	cfg.LLM.OpenRouter.Model = s.OpenRouterModel
	cfg.LLM.Timeout = s.Timeout
	cfg.LLM.Retry.MaxAttempts = s.MaxAttempts
	cfg.LLM.Breaker.Threshold = s.BreakerThreshold
	cfg.LLM.Breaker.Cooldown = s.BreakerCooldown

	return cfg, nil
}

// ErrNoProvider is returned by ProviderConfig when neither
// JUSMIND_LLM_PROVIDER nor any known API key variable is set.
var ErrNoProvider = errors.New("no generative provider configured: set JUSMIND_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")

// ProviderConfig returns the provider configuration, or ErrNoProvider when
// none was selected.
func (c *Config) ProviderConfig() (llm.Config, error) {
	if c.LLM.Provider == "" {
		return llm.Config{}, ErrNoProvider
	}
	if err := c.LLM.Validate(); err != nil {
		return llm.Config{}, err
	}
	return c.LLM, nil
}

// discover picks the provider from the vendor API key variables in priority
// order (Gemini, OpenAI, Anthropic, OpenRouter). JUSMIND_*_API_KEY values
// count too. It reports whether a provider was found.
func discover(s *settings) bool {
	candidates := []struct {
		provider string
		env      string
		key      *string
	}{
		{"gemini", "GEMINI_API_KEY", &s.GeminiKey},
		{"openai", "OPENAI_API_KEY", &s.OpenAIKey},
		{"anthropic", "ANTHROPIC_API_KEY", &s.AnthropicKey},
		{"openrouter", "OPENROUTER_API_KEY", &s.OpenRouterKey},
	}
	for _, c := range candidates {
		if *c.key == "" {
			*c.key = os.Getenv(c.env)
		}
		if *c.key != "" {
			s.Provider = c.provider
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvDuration accepts a Go duration ("45s", "2m") or a bare number of
// seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Package generation turns generative-service output into prose or
// validated practice items. Every failure is soft: structured calls yield
// an empty slice and prose calls yield ProseFailure.
package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jusmind/jusmind/internal/llm"
	"github.com/jusmind/jusmind/internal/question"
)

// ProseFailure is returned by Prose and Converse when no text could be
// produced.
const ProseFailure = "Erro de conexão com o JusMind."

// IsFailure reports whether text is the prose failure sentinel.
func IsFailure(text string) bool {
	return text == ProseFailure
}

var errEmptyResponse = errors.New("empty response")

// Purpose labels recorded in the request journal.
const (
	PurposeQuiz  = "quiz"
	PurposeProse = "prose"
	PurposeChat  = "chat"
)

// Client wraps a Provider with prompt framing and output repair.
type Client struct {
	provider llm.Provider
	config   Config
	log      zerolog.Logger
	newID    func() string
}

// New creates a Client. The provider is expected to carry its own retry,
// timeout and breaker policy (see llm.Wrap).
func New(p llm.Provider, cfg Config, log zerolog.Logger) *Client {
	return &Client{
		provider: p,
		config:   cfg,
		log:      log,
		newID:    uuid.NewString,
	}
}

// Structured requests count practice items and returns the ones that
// survive repair, each with a fresh id. It never returns nil and never
// panics; on any failure the result is empty and a warning is logged.
func (c *Client) Structured(ctx context.Context, prompt string, count int) (items []question.Question) {
	ctx = llm.PurposeOr(ctx, PurposeQuiz)
	purpose := llm.PurposeFrom(ctx)

	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Str("purpose", purpose).Interface("panic", r).Msg("structured generation panicked")
			items = []question.Question{}
		}
	}()

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      SystemInstruction,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		JSONOutput:  true,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.StructuredTemperature,
	})
	if err != nil {
		c.log.Warn().Err(err).Str("purpose", purpose).Msg("structured generation failed")
		return []question.Question{}
	}

	decoded, err := Decode(resp.Text)
	if err != nil {
		c.log.Warn().Err(err).Str("purpose", purpose).Int("bytes", len(resp.Text)).Msg("unparseable structured response")
		return []question.Question{}
	}

	if decoded.Quarantined > 0 {
		c.log.Warn().Str("purpose", purpose).Int("quarantined", decoded.Quarantined).Msg("dropped items with unknown type")
	}
	if count > 0 && len(decoded.Items) != count {
		c.log.Debug().Str("purpose", purpose).Int("requested", count).Int("received", len(decoded.Items)).Msg("item count mismatch")
	}

	for i := range decoded.Items {
		decoded.Items[i].ID = c.newID()
	}
	return decoded.Items
}

// Prose returns free text for a single prompt, or ProseFailure.
func (c *Client) Prose(ctx context.Context, prompt string) string {
	return c.Converse(llm.PurposeOr(ctx, PurposeProse), nil, prompt)
}

// Converse returns the reply to prompt given the prior turns, or
// ProseFailure.
func (c *Client) Converse(ctx context.Context, history []llm.Message, prompt string) string {
	ctx = llm.PurposeOr(ctx, PurposeChat)

	text, err := c.generate(ctx, history, prompt)
	if err != nil {
		c.log.Warn().Err(err).Str("purpose", llm.PurposeFrom(ctx)).Int("history", len(history)).Msg("prose generation failed")
		return ProseFailure
	}
	return text
}

func (c *Client) generate(ctx context.Context, history []llm.Message, prompt string) (string, error) {
	msgs := make([]llm.Message, 0, len(history)+1)
	msgs = append(msgs, history...)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: prompt})

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      SystemInstruction,
		Messages:    msgs,
		MaxTokens:   c.config.ProseMaxTokens,
		Temperature: c.config.ProseTemperature,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", fmt.Errorf("%w from %s", errEmptyResponse, c.provider.ModelID())
	}
	return resp.Text, nil
}

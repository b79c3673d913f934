package generation

import (
	"context"
	"errors"

	"github.com/jusmind/jusmind/internal/llm"
	"github.com/jusmind/jusmind/internal/question"
)

const (
	// ExplainFailure replaces the commentary when generation fails.
	ExplainFailure = "Erro ao gerar explicação."

	// NoExplanation is returned when the service answered with blank text.
	NoExplanation = "Explicação não disponível."

	PurposeExplain = "explain"
)

// Explain returns a law professor's commentary on an objective item.
func (c *Client) Explain(ctx context.Context, q question.Question) string {
	ctx = llm.PurposeOr(ctx, PurposeExplain)

	text, err := c.generate(ctx, nil, ExplainPrompt(q))
	switch {
	case errors.Is(err, errEmptyResponse):
		return NoExplanation
	case err != nil:
		c.log.Warn().Err(err).Str("purpose", llm.PurposeFrom(ctx)).Str("question", q.ID).Msg("explanation failed")
		return ExplainFailure
	}
	return text
}

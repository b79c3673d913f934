package lessons

import (
	"context"

	"github.com/jusmind/jusmind/internal/generation"
	"github.com/jusmind/jusmind/internal/llm"
)

// KeyConcepts asks for the main legal concepts of a lesson text as a bullet
// list. Only the first conceptSourceLimit characters are sent. Failures
// yield "".
func (s *Service) KeyConcepts(ctx context.Context, content string) string {
	text := s.gen.Prose(llm.WithPurpose(ctx, "key-concepts"), buildConceptsPrompt(content))
	if generation.IsFailure(text) {
		return ""
	}
	return text
}

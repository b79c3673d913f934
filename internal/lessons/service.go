// Package lessons generates study lessons for a subject and extracts their
// key concepts.
package lessons

import (
	"context"

	"github.com/jusmind/jusmind/internal/generation"
	"github.com/jusmind/jusmind/internal/llm"
)

// LessonFailure replaces the lesson text when generation fails.
const LessonFailure = "Erro ao gerar aula."

// Generator produces prose. generation.Client satisfies it.
type Generator interface {
	Prose(ctx context.Context, prompt string) string
}

// Lesson is a generated lesson.
type Lesson struct {
	Topic   string
	Content string

	// KeyConcepts is a bullet list extracted from Content, empty when
	// extraction failed.
	KeyConcepts string

	// Failed is set when Content is LessonFailure.
	Failed bool
}

// Service generates lessons.
type Service struct {
	gen Generator
}

// NewService creates a lesson service.
func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Generate writes a lesson on topic and extracts its key concepts. It
// never fails; a failed lesson carries LessonFailure and no concepts.
func (s *Service) Generate(ctx context.Context, topic string) Lesson {
	text := s.gen.Prose(llm.WithPurpose(ctx, "lesson"), buildLessonPrompt(topic))
	if generation.IsFailure(text) {
		return Lesson{Topic: topic, Content: LessonFailure, Failed: true}
	}

	return Lesson{
		Topic:       topic,
		Content:     text,
		KeyConcepts: s.KeyConcepts(ctx, text),
	}
}

package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jusmind/jusmind/internal/store"
)

// LoggingProvider is a decorator that logs every request and, when a
// journal is attached, records it in the request journal.
type LoggingProvider struct {
	inner   Provider
	journal store.EventRepo
	log     zerolog.Logger
}

// WithLogging wraps a Provider with request logging. journal may be nil.
func WithLogging(p Provider, journal store.EventRepo, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, journal: journal, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = resp.Text
	}

	if err != nil {
		data.ErrorMessage = err.Error()
		l.log.Warn().Err(err).
			Str("purpose", purpose).
			Str("model", data.Model).
			Int64("latency_ms", latencyMs).
			Msg("llm request failed")
	} else {
		l.log.Debug().
			Str("purpose", purpose).
			Str("model", data.Model).
			Int("input_tokens", data.InputTokens).
			Int("output_tokens", data.OutputTokens).
			Int64("latency_ms", latencyMs).
			Msg("llm request")
	}

	if l.journal == nil {
		return resp, err
	}

	// Journal failures never fail the request.
	if logErr := l.journal.AppendLLMRequest(ctx, data); logErr != nil {
		l.log.Warn().Err(logErr).Msg("failed to journal llm request")
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.JSONOutput {
		b.WriteString("[output: application/json]\n")
	}

	return b.String()
}

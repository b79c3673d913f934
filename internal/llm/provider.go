package llm

import "context"

// Provider is the core abstraction for generative text services.
// Consumers call Generate with a Request and receive the raw text output.
type Provider interface {
	// Generate sends a prompt to the model and returns its text output.
	// When the request asks for JSON output, providers that support a
	// native JSON mode are switched into it. The text is never validated
	// here; callers own parsing and repair.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system instruction (persona and constraints).
	System string

	// Messages is the conversation history. Single-turn generation
	// carries one user message; tutor conversations carry the prior turns.
	Messages []Message

	// JSONOutput marks a request whose answer is expected to be a JSON
	// array. Gemini gets the application/json response MIME type.
	JSONOutput bool

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the model output.
type Response struct {
	// Text is the generated output, untouched.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

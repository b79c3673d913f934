package generation

// Config controls the requests the Client sends.
type Config struct {
	// MaxTokens is the token budget for structured (quiz) responses.
	MaxTokens int

	// ProseMaxTokens is the token budget for prose and chat responses.
	ProseMaxTokens int

	// StructuredTemperature is used for quiz generation.
	StructuredTemperature float64

	// ProseTemperature is used for explanations, lessons and chat.
	ProseTemperature float64
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:             8192,
		ProseMaxTokens:        4096,
		StructuredTemperature: 0.5,
		ProseTemperature:      0.4,
	}
}

package llm

import "context"

// Provider is the abstraction over generative-text backends. The chat layer
// never talks to an SDK directly; it sends a transcript and receives the
// guide's reply text.
type Provider interface {
	// Generate sends the conversation to the model and returns its reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system instruction. Carries the guide's persona, the
	// user's name, and the progress summary.
	System string

	// Messages is the conversation history, oldest first.
	Messages []Message

	// MaxTokens is the maximum number of tokens in the reply.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Zero means provider default.
	Temperature float64
}

// Message is a single transcript entry.
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

// Response holds the model's output.
type Response struct {
	// Text is the reply text.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

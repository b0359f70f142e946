package assist

import (
	"context"
	"time"
)

// Message is one turn of the assistant conversation.
type Message struct {
	Role      string    `json:"role"` // "system", "user", "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// StreamChunk is one piece of a streamed response.
type StreamChunk struct {
	Content string
	Error   error
	Done    bool
}

// Adapter is the provider interface behind the chat panel.
type Adapter interface {
	// Send sends the conversation and returns the complete reply.
	Send(ctx context.Context, messages []Message) (*Message, error)

	// Stream sends the conversation and delivers the reply through chunks.
	// The channel is closed when the stream ends.
	Stream(ctx context.Context, messages []Message, chunks chan<- StreamChunk) error

	// ModelName returns the configured model.
	ModelName() string

	// IsAvailable reports whether the adapter is configured.
	IsAvailable() bool
}

// AdapterConfig is shared provider configuration.
type AdapterConfig struct {
	Model   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// DefaultTimeout bounds a single assistant request.
const DefaultTimeout = 60 * time.Second

// SystemPrompt frames the assistant for workspace questions.
const SystemPrompt = "You are a coding assistant embedded in a development workspace. " +
	"Answer concisely. When the user shares build or test output, point at the " +
	"failing location and suggest a fix."

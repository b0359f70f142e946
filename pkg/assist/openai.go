package assist

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIAdapter implements Adapter against the OpenAI chat API.
type OpenAIAdapter struct {
	client *openai.Client
	config AdapterConfig
}

// NewOpenAIAdapter creates an adapter for the given configuration.
func NewOpenAIAdapter(config AdapterConfig) *OpenAIAdapter {
	client := openai.NewClient(config.APIKey)

	if config.BaseURL != "" {
		clientConfig := openai.DefaultConfig(config.APIKey)
		clientConfig.BaseURL = config.BaseURL
		client = openai.NewClientWithConfig(clientConfig)
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &OpenAIAdapter{
		client: client,
		config: config,
	}
}

func (o *OpenAIAdapter) convertMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		out[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return out
}

// Send implements Adapter.
func (o *OpenAIAdapter) Send(ctx context.Context, messages []Message) (*Message, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.config.Model,
		Messages: o.convertMessages(messages),
	})
	if err != nil {
		return nil, fmt.Errorf("assist request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("assist request returned no choices")
	}

	return &Message{
		Role:      resp.Choices[0].Message.Role,
		Content:   resp.Choices[0].Message.Content,
		Timestamp: time.Now(),
	}, nil
}

// Stream implements Adapter.
func (o *OpenAIAdapter) Stream(ctx context.Context, messages []Message, chunks chan<- StreamChunk) error {
	defer close(chunks)

	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	stream, err := o.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    o.config.Model,
		Messages: o.convertMessages(messages),
		Stream:   true,
	})
	if err != nil {
		chunks <- StreamChunk{Error: fmt.Errorf("assist stream failed: %w", err)}
		return err
	}
	defer stream.Close()

	for {
		response, err := stream.Recv()
		if err == io.EOF {
			chunks <- StreamChunk{Done: true}
			return nil
		}
		if err != nil {
			chunks <- StreamChunk{Error: fmt.Errorf("assist stream read failed: %w", err)}
			return err
		}

		if len(response.Choices) > 0 {
			content := response.Choices[0].Delta.Content
			if content != "" {
				chunks <- StreamChunk{Content: content}
			}
		}
	}
}

// ModelName implements Adapter.
func (o *OpenAIAdapter) ModelName() string {
	return o.config.Model
}

// IsAvailable implements Adapter.
func (o *OpenAIAdapter) IsAvailable() bool {
	return o.config.APIKey != ""
}

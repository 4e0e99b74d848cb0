package textgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const (
	completionModel = openai.GPT4oMini
	maxTokens       = 800
)

// Client generates prose from a prompt. The output is treated as opaque
// advisory text; there is no fallback when generation fails.
type Client interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

type client struct {
	oa *openai.Client
}

func New(apiKey string) (Client, error) {
	if apiKey == "" {
		return nil, errors.New("an OpenAI API key must be provided")
	}
	return &client{oa: openai.NewClient(apiKey)}, nil
}

// NewForTest returns a client pointed at a fake completion server.
func NewForTest(apiKey, baseURL string) Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	return &client{oa: openai.NewClientWithConfig(config)}
}

func (c *client) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	resp, err := c.oa.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: completionModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("error generating text: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

package openai

import (
	"context"
	"fmt"
	"strings"

	"soundreach-server/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

const draftModel = openai.ChatModelGPT4oMini

type Client struct {
	client openai.Client
	logger *observability.Logger
}

func New(apiKey string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &Client{
		client: openai.NewClient(openaiOption.WithAPIKey(apiKey)),
		logger: logger,
	}, nil
}

// GenerateText runs one chat completion and returns the trimmed reply
func (c *Client) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: draftModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		c.logger.Error(ctx, "failed to run chat completion", err)
		return "", fmt.Errorf("ai service request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("ai service returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Package openai wraps the LLM provider behind a plain text-generation call.
package openai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/pokevault/pokedex-service/internal/config"
)

// Client generates free text from a prompt via the provider's chat
// completion API. No retry or streaming; provider errors propagate upward.
type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
	log       *logrus.Logger
}

// NewClient initializes a new LLM client from configuration
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	apiConfig := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.OpenAIBaseURL != "" {
		apiConfig.BaseURL = cfg.OpenAIBaseURL
	}

	return &Client{
		api:       openai.NewClientWithConfig(apiConfig),
		model:     cfg.OpenAIModel,
		maxTokens: 600,
		log:       log,
	}
}

// Complete sends prompt as a single user message and returns the generated text
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	c.log.Debugf("completion used %d tokens", resp.Usage.TotalTokens)
	return resp.Choices[0].Message.Content, nil
}

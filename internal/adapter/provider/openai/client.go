// Package openai wraps the OpenAI chat-completions API behind the
// single Complete call the analysis service consumes.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/topiclens/topiclens-backend/internal/config"
)

const systemPrompt = "You are an AI trained to analyze Reddit posts and provide insights in JSON format."

// Client sends completion requests to OpenAI.
type Client struct {
	api         *goopenai.Client
	model       string
	temperature float32
	maxTokens   int
	log         *slog.Logger
}

// NewClient creates a Client from config. The underlying HTTP client
// carries the configured request timeout so a stalled completion call
// cannot hold a request goroutine indefinitely.
func NewClient(cfg config.OpenAIConfig, logger *slog.Logger) *Client {
	apiCfg := goopenai.DefaultConfig(cfg.APIKey)
	apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		api:         goopenai.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		log:         logger.With("adapter", "openai"),
	}
}

// NewClientWithBaseURL creates a Client against a custom API base URL
// (for testing).
func NewClientWithBaseURL(baseURL string, cfg config.OpenAIConfig, logger *slog.Logger) *Client {
	apiCfg := goopenai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = baseURL
	apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		api:         goopenai.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		log:         logger.With("adapter", "openai"),
	}
}

// Complete sends one prompt and returns the raw reply text. The model
// is asked for a JSON object reply, but nothing here guarantees the
// text parses; that is the caller's concern.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: create completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices in reply")
	}

	c.log.DebugContext(ctx, "openai completion",
		slog.String("model", c.model),
		slog.Int("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return resp.Choices[0].Message.Content, nil
}

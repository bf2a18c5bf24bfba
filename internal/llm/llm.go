// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm sends prompts to a locally hosted model behind an
// OpenAI-compatible chat-completions endpoint (Ollama's /v1 surface).
package llm

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pdiddy/patent-scout/pkg/types"
)

// Client is the analysis runner's capability object: one Complete method,
// one blocking call per prompt, no retries, no streaming.
type Client struct {
	api   *openai.Client
	model string
}

// New builds a Client for the configured endpoint and model.
func New(cfg types.LLMConfig) *Client {
	apiKey := cfg.APIKey
	if apiKey == "" {
		// The go-openai transport always sends a bearer token; Ollama
		// accepts any value.
		apiKey = "ollama"
	}

	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		api:   openai.NewClientWithConfig(clientCfg),
		model: cfg.Model,
	}
}

// Complete sends the prompt and blocks until the completion returns.
// Connection failures, non-success responses, and empty completions all
// wrap types.ErrInference.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		// The Temperature field is tagged omitempty, so a literal 0 would
		// never be sent and the server would use its own default. The
		// library's sentinel for a true zero is SmallestNonzeroFloat32.
		Temperature: math.SmallestNonzeroFloat32,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion (%s): %v: %w", c.model, err, types.ErrInference)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion from %s: %w", c.model, types.ErrInference)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("blank completion from %s: %w", c.model, types.ErrInference)
	}
	return text, nil
}

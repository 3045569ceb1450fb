// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm wraps the text-completion service and turns its free-text
// output into structured topic candidates.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/pdiddy/topic-scout/pkg/types"
)

// ErrService marks systemic completion-service failures (missing key,
// rejected credentials). There is no fallback for generated content, so
// callers surface this class to the user instead of substituting output.
var ErrService = errors.New("completion service unavailable")

// systemPrompt frames every completion request.
const systemPrompt = "You are an AI assistant that helps researchers select a research topic."

const (
	defaultModel       = "gpt-4-turbo"
	defaultTemperature = 0.7
	defaultMaxTokens   = 4000
)

// Completer is the opaque text-generation call consumed by candidate
// generation and the relevance judge. Implementations return the raw
// completion text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient implements Completer against the OpenAI chat-completion
// API or any compatible endpoint.
type OpenAIClient struct {
	client *openai.Client
	cfg    types.LLMConfig
}

// NewOpenAIClient builds a client from cfg. A missing API key is a
// service error: nothing downstream can run without completions.
func NewOpenAIClient(cfg types.LLMConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: no API key configured", ErrService)
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
	}, nil
}

// Complete sends one prompt and returns the completion text. Rejected
// credentials are wrapped as ErrService; transient failures come back as
// ordinary errors for the caller to recover from.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) &&
			(apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden) {
			return "", fmt.Errorf("%w: %v", ErrService, err)
		}
		return "", fmt.Errorf("completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

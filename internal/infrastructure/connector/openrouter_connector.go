package connector

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
)

type openRouterConnector struct {
	settings   *config.OpenRouterSettings
	httpClient *http.Client
	logger     logger.Logger
}

// NewOpenRouterConnector creates a ChatConnector backed by the
// OpenRouter chat completions API
func NewOpenRouterConnector(settings *config.OpenRouterSettings, logger logger.Logger) (content.ChatConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid openrouter settings: %w", err)
	}

	return &openRouterConnector{
		settings:   settings,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *openRouterConnector) Complete(ctx context.Context, system, user string) (string, error) {
	if c.settings.APIKey == "" {
		return "", fmt.Errorf("openrouter api key is not configured")
	}

	request := &chatCompletionRequest{
		Model: c.settings.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	}

	var response chatCompletionResponse
	err := doJSON(ctx, c.httpClient, http.MethodPost, c.settings.BaseURL+"/chat/completions",
		map[string]string{"Authorization": "Bearer " + c.settings.APIKey}, request, &response)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return response.Choices[0].Message.Content, nil
}

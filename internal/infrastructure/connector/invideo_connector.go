package connector

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
)

// maxClipScriptLength bounds the script sent for a short clip.
const maxClipScriptLength = 500

type inVideoConnector struct {
	settings   *config.APISettings
	httpClient *http.Client
	logger     logger.Logger
}

// NewInVideoConnector creates a VideoConnector backed by the InVideo API
func NewInVideoConnector(settings *config.APISettings, logger logger.Logger) (content.VideoConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid invideo settings: %w", err)
	}

	return &inVideoConnector{
		settings:   settings,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

type videoRenderRequest struct {
	Script   string `json:"script"`
	Duration int    `json:"duration"`
	Template string `json:"template"`
	Voice    string `json:"voice"`
}

type videoRenderResponse struct {
	VideoURL string `json:"video_url"`
}

func (c *inVideoConnector) Render(ctx context.Context, script string) (string, error) {
	if c.settings.APIKey == "" {
		return "", fmt.Errorf("invideo api key is not configured")
	}

	if len(script) > maxClipScriptLength {
		script = script[:maxClipScriptLength]
	}

	request := &videoRenderRequest{
		Script:   script,
		Duration: 45,
		Template: "news_briefing",
		Voice:    "professional_male",
	}

	var response videoRenderResponse
	err := doJSON(ctx, c.httpClient, http.MethodPost, c.settings.BaseURL+"/v1/videos",
		map[string]string{"Authorization": "Bearer " + c.settings.APIKey}, request, &response)
	if err != nil {
		return "", fmt.Errorf("video render failed: %w", err)
	}

	return response.VideoURL, nil
}

package connector

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
)

type firecrawlConnector struct {
	settings   *config.APISettings
	httpClient *http.Client
	logger     logger.Logger
}

// NewFirecrawlConnector creates a ScrapeConnector backed by the
// Firecrawl scrape API
func NewFirecrawlConnector(settings *config.APISettings, logger logger.Logger) (content.ScrapeConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid firecrawl settings: %w", err)
	}

	return &firecrawlConnector{
		settings:   settings,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type scrapeResponse struct {
	Markdown string `json:"markdown"`
	Data     struct {
		Markdown string `json:"markdown"`
	} `json:"data"`
}

func (c *firecrawlConnector) Scrape(ctx context.Context, url string) (string, error) {
	if c.settings.APIKey == "" {
		return "", fmt.Errorf("firecrawl api key is not configured")
	}

	request := &scrapeRequest{
		URL:     url,
		Formats: []string{"markdown"},
	}

	var response scrapeResponse
	err := doJSON(ctx, c.httpClient, http.MethodPost, c.settings.BaseURL+"/v0/scrape",
		map[string]string{"Authorization": "Bearer " + c.settings.APIKey}, request, &response)
	if err != nil {
		return "", fmt.Errorf("scrape failed: %w", err)
	}

	if response.Markdown != "" {
		return response.Markdown, nil
	}
	return response.Data.Markdown, nil
}

package connector

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
)

type exploriumConnector struct {
	settings   *config.APISettings
	httpClient *http.Client
	logger     logger.Logger
}

// NewExploriumConnector creates an EnrichmentConnector backed by the
// Explorium API. Without credentials, and on lookup failure, it returns
// an empty Enrichment so lead intake keeps going.
func NewExploriumConnector(settings *config.APISettings, logger logger.Logger) (leads.EnrichmentConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid explorium settings: %w", err)
	}

	return &exploriumConnector{
		settings:   settings,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

type enrichmentResponse struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	LinkedIn string `json:"linkedin"`
}

func (c *exploriumConnector) Enrich(ctx context.Context, email string) (*leads.Enrichment, error) {
	if c.settings.APIKey == "" {
		c.logger.Info("Explorium api key not configured, skipping enrichment for ", email)
		return &leads.Enrichment{}, nil
	}

	var response enrichmentResponse
	err := doJSON(ctx, c.httpClient, http.MethodPost, c.settings.BaseURL+"/v1/enrich",
		map[string]string{"Authorization": "Bearer " + c.settings.APIKey},
		map[string]string{"email": email}, &response)
	if err != nil {
		c.logger.Warn("Enrichment lookup failed for ", email, ": ", err)
		return &leads.Enrichment{}, nil
	}

	return &leads.Enrichment{
		Company:  response.Company,
		Role:     response.Role,
		LinkedIn: response.LinkedIn,
	}, nil
}

package connector

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
)

// NotionConnector implements CRM contact records and customer workspace
// provisioning on the Notion API.
type NotionConnector struct {
	settings   *config.NotionSettings
	httpClient *http.Client
	logger     logger.Logger
}

// NewNotionConnector creates a connector for the Notion API. A blank
// API key turns both operations into logged no-ops.
func NewNotionConnector(settings *config.NotionSettings, logger logger.Logger) (*NotionConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid notion settings: %w", err)
	}

	return &NotionConnector{
		settings:   settings,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

type notionPageResponse struct {
	ID string `json:"id"`
}

func (c *NotionConnector) headers() map[string]string {
	return map[string]string{
		"Authorization":  "Bearer " + c.settings.APIKey,
		"Notion-Version": c.settings.NotionVersion,
	}
}

// CreateContact files the lead as a page in the CRM database and
// returns the page ID.
func (c *NotionConnector) CreateContact(ctx context.Context, lead *leads.Lead, enrichment *leads.Enrichment) (string, error) {
	if c.settings.APIKey == "" {
		c.logger.Info("Notion api key not configured, skipping CRM record for ", lead.Email)
		return "", nil
	}

	name := lead.Name
	if name == "" {
		name = "Unknown"
	}

	tags := make([]map[string]string, 0, len(lead.Tags))
	for _, tag := range lead.Tags {
		tags = append(tags, map[string]string{"name": tag})
	}

	payload := map[string]any{
		"parent": map[string]string{"database_id": c.settings.CRMDatabaseID},
		"properties": map[string]any{
			"Email":   map[string]string{"email": lead.Email},
			"Name":    map[string]any{"title": []map[string]any{{"text": map[string]string{"content": name}}}},
			"Company": map[string]any{"rich_text": []map[string]any{{"text": map[string]string{"content": enrichment.Company}}}},
			"Role":    map[string]any{"rich_text": []map[string]any{{"text": map[string]string{"content": enrichment.Role}}}},
			"Source":  map[string]any{"select": map[string]string{"name": lead.Source}},
			"Tags":    map[string]any{"multi_select": tags},
		},
	}

	var response notionPageResponse
	err := doJSON(ctx, c.httpClient, http.MethodPost, c.settings.BaseURL+"/v1/pages", c.headers(), payload, &response)
	if err != nil {
		return "", fmt.Errorf("failed to create CRM record: %w", err)
	}

	c.logger.Info("Created Notion CRM record ", response.ID, " for ", lead.Email)
	return response.ID, nil
}

// CreateWorkspace provisions the customer's CopyKit workspace under the
// configured root page and returns the page ID.
func (c *NotionConnector) CreateWorkspace(ctx context.Context, customerEmail, sku string) (string, error) {
	if c.settings.APIKey == "" {
		c.logger.Info("Notion api key not configured, skipping workspace for ", customerEmail)
		return "", nil
	}

	title := fmt.Sprintf("%s Workspace - %s", sku, customerEmail)

	payload := map[string]any{
		"parent": map[string]string{"page_id": c.settings.WorkspaceRoot},
		"properties": map[string]any{
			"title": map[string]any{"title": []map[string]any{{"text": map[string]string{"content": title}}}},
		},
	}

	var response notionPageResponse
	err := doJSON(ctx, c.httpClient, http.MethodPost, c.settings.BaseURL+"/v1/pages", c.headers(), payload, &response)
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}

	c.logger.Info("Created Notion workspace ", response.ID, " for ", customerEmail)
	return response.ID, nil
}

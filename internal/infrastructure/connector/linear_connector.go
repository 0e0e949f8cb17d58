package connector

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
)

type linearConnector struct {
	settings   *config.LinearSettings
	httpClient *http.Client
	logger     logger.Logger
}

// NewLinearConnector creates a TaskConnector backed by the Linear
// GraphQL API. A blank API key turns follow-ups into logged no-ops.
func NewLinearConnector(settings *config.LinearSettings, logger logger.Logger) (leads.TaskConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid linear settings: %w", err)
	}

	return &linearConnector{
		settings:   settings,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

const createIssueMutation = `
mutation CreateIssue($title: String!, $description: String!, $teamId: String!) {
  issueCreate(input: {
    title: $title,
    description: $description,
    teamId: $teamId,
    priority: 1
  }) {
    success
    issue {
      id
      title
    }
  }
}
`

type linearIssueResponse struct {
	Data struct {
		IssueCreate struct {
			Success bool `json:"success"`
			Issue   struct {
				ID string `json:"id"`
			} `json:"issue"`
		} `json:"issueCreate"`
	} `json:"data"`
}

func (c *linearConnector) CreateFollowUp(ctx context.Context, lead *leads.Lead, enrichment *leads.Enrichment) (string, error) {
	if c.settings.APIKey == "" {
		c.logger.Info("Linear api key not configured, skipping follow-up for ", lead.Email)
		return "", nil
	}

	name := lead.Name
	if name == "" {
		name = "Unknown"
	}

	description := fmt.Sprintf(
		"Enterprise lead detected:\n\nEmail: %s\nRole: %s\nCompany: %s\nLinkedIn: %s\n\nSource: %s\nUTM Campaign: %s",
		lead.Email, enrichment.Role, enrichment.Company, enrichment.LinkedIn, lead.Source, lead.UTMCampaign)

	body := map[string]any{
		"query": createIssueMutation,
		"variables": map[string]string{
			"title":       fmt.Sprintf("Follow up with %s - %s", name, enrichment.Company),
			"description": description,
			"teamId":      c.settings.TeamID,
		},
	}

	var response linearIssueResponse
	err := doJSON(ctx, c.httpClient, http.MethodPost, c.settings.BaseURL+"/graphql",
		map[string]string{"Authorization": c.settings.APIKey}, body, &response)
	if err != nil {
		return "", fmt.Errorf("failed to create follow-up issue: %w", err)
	}

	if !response.Data.IssueCreate.Success {
		return "", fmt.Errorf("issue creation was not successful")
	}

	c.logger.Info("Created Linear follow-up ", response.Data.IssueCreate.Issue.ID, " for ", lead.Email)
	return response.Data.IssueCreate.Issue.ID, nil
}

//go:build unit
// +build unit

package connector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLead() *leads.Lead {
	return &leads.Lead{
		ID:              uuid.NewString(),
		Email:           "lead@example.com",
		Name:            "Test Lead",
		Source:          "landing-page",
		Tags:            []string{"newsletter"},
		DateTimeCreated: time.Now().UTC(),
	}
}

func TestNotionConnector_CreateContact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/pages", r.URL.Path)
		assert.Equal(t, "Bearer notion-key", r.Header.Get("Authorization"))
		assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		parent := payload["parent"].(map[string]any)
		assert.Equal(t, "db-1", parent["database_id"])

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "page-123"})
	}))
	defer server.Close()

	settings := &config.NotionSettings{
		APISettings:   config.APISettings{APIKey: "notion-key", BaseURL: server.URL},
		CRMDatabaseID: "db-1",
		NotionVersion: "2022-06-28",
	}
	conn, err := NewNotionConnector(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	pageID, err := conn.CreateContact(context.Background(), testLead(), &leads.Enrichment{Company: "Acme Ltd"})
	require.NoError(t, err)
	assert.Equal(t, "page-123", pageID)
}

func TestNotionConnector_CreateContact_NoKeySkips(t *testing.T) {
	settings := &config.NotionSettings{NotionVersion: "2022-06-28"}
	conn, err := NewNotionConnector(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	pageID, err := conn.CreateContact(context.Background(), testLead(), &leads.Enrichment{})
	require.NoError(t, err)
	assert.Empty(t, pageID)
}

func TestNotionConnector_CreateWorkspace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		parent := payload["parent"].(map[string]any)
		assert.Equal(t, "root-page", parent["page_id"])

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "workspace-1"})
	}))
	defer server.Close()

	settings := &config.NotionSettings{
		APISettings:   config.APISettings{APIKey: "notion-key", BaseURL: server.URL},
		WorkspaceRoot: "root-page",
		NotionVersion: "2022-06-28",
	}
	conn, err := NewNotionConnector(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	pageID, err := conn.CreateWorkspace(context.Background(), "buyer@example.com", "COPYKIT-PRO")
	require.NoError(t, err)
	assert.Equal(t, "workspace-1", pageID)
}

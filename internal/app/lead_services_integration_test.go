//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadService_Upsert_Creates_New_Lead(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	stored, err := services.LeadService.Upsert(ctx, &leads.Lead{
		Email:  "new@example.com",
		Name:   "New Lead",
		Source: "landing-page",
		Tags:   []string{"newsletter"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.DateTimeCreated.IsZero())
}

func TestLeadService_Upsert_Merges_Existing_Lead(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	existing := persistence.CreateTestLead(t, "known@example.com")
	existing.Name = ""
	existing.UTMSource = "google"
	require.NoError(t, services.DBContext.LeadRepo.Create(ctx, existing))

	merged, err := services.LeadService.Upsert(ctx, &leads.Lead{
		Email:     "known@example.com",
		Name:      "Filled Name",
		UTMSource: "twitter",
		Tags:      []string{"webinar"},
	})
	require.NoError(t, err)

	assert.Equal(t, existing.ID, merged.ID)
	assert.Equal(t, "Filled Name", merged.Name)
	assert.Equal(t, "google", merged.UTMSource, "existing attribution wins")
	assert.ElementsMatch(t, []string{"newsletter", "webinar"}, merged.Tags)
}

func TestLeadIntakeService_Process_Runs_Full_Pipeline(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Enrichment.Result = leads.Enrichment{
		Company:  "Acme Ltd",
		Role:     "Marketing Manager",
		LinkedIn: "https://linkedin.com/in/acme",
	}

	result, err := services.LeadIntakeService.Process(ctx, &leads.Lead{
		Email:  "lead@example.com",
		Name:   "Test Lead",
		Source: "landing-page",
		Tags:   []string{"newsletter"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.LeadID)
	assert.Equal(t, "page-1", result.CRMPageID)
	assert.Empty(t, result.FollowUpIssue, "manager role gets no follow-up")

	assert.Equal(t, []string{"lead@example.com"}, services.MailList.Calls)
	assert.Equal(t, []string{"lead@example.com"}, services.CRM.Calls)
	assert.Empty(t, services.Tasks.Calls)

	stored, err := services.DBContext.LeadRepo.GetByEmail(ctx, "lead@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Acme Ltd", stored.EnrichmentCompany)
	assert.Equal(t, "Marketing Manager", stored.EnrichmentRole)
}

func TestLeadIntakeService_Process_Files_Enterprise_FollowUp(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	services.Enrichment.Result = leads.Enrichment{
		Company: "BigCo",
		Role:    "VP of Marketing",
	}

	result, err := services.LeadIntakeService.Process(ctx, &leads.Lead{
		Email:  "vp@example.com",
		Source: "landing-page",
	})
	require.NoError(t, err)

	assert.Equal(t, "issue-1", result.FollowUpIssue)
	assert.Equal(t, []string{"vp@example.com"}, services.Tasks.Calls)
}

func TestHasEnterpriseSignal(t *testing.T) {
	assert.True(t, hasEnterpriseSignal("Director of Growth"))
	assert.True(t, hasEnterpriseSignal("Head of Marketing"))
	assert.True(t, hasEnterpriseSignal("CEO"))
	assert.False(t, hasEnterpriseSignal("Marketing Manager"))
	assert.False(t, hasEnterpriseSignal(""))
}

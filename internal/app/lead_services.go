package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/automations"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"github.com/google/uuid"
)

// leadService implements the LeadService interface with the duplicate
// guard on email
type leadService struct {
	leadRepo leads.LeadRepository
	logger   logger.Logger
}

// NewLeadService creates a new leadService instance
func NewLeadService(leadRepo leads.LeadRepository, logger logger.Logger) (leads.LeadService, error) {
	return &leadService{
		leadRepo: leadRepo,
		logger:   logger,
	}, nil
}

// Upsert creates the lead or merges it into the existing record for the
// same email: tags are unioned, blank fields are filled in.
func (s *leadService) Upsert(ctx context.Context, lead *leads.Lead) (*leads.Lead, error) {
	existing, err := s.leadRepo.GetByEmail(ctx, lead.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up lead: %w", err)
	}

	if existing == nil {
		if lead.ID == "" {
			lead.ID = uuid.NewString()
		}
		if lead.DateTimeCreated.IsZero() {
			lead.DateTimeCreated = time.Now().UTC()
		}
		if err := s.leadRepo.Create(ctx, lead); err != nil {
			return nil, fmt.Errorf("failed to create lead: %w", err)
		}
		s.logger.Info("Lead created: ", lead.Email)
		return lead, nil
	}

	existing.MergeTags(lead.Tags)
	if existing.Name == "" {
		existing.Name = lead.Name
	}
	if existing.UTMSource == "" {
		existing.UTMSource = lead.UTMSource
	}
	if existing.UTMCampaign == "" {
		existing.UTMCampaign = lead.UTMCampaign
	}
	if existing.UTMMedium == "" {
		existing.UTMMedium = lead.UTMMedium
	}
	if existing.UTMTerm == "" {
		existing.UTMTerm = lead.UTMTerm
	}
	if existing.UTMContent == "" {
		existing.UTMContent = lead.UTMContent
	}

	if err := s.leadRepo.UpdateByID(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	s.logger.Info("Lead merged: ", existing.Email)
	return existing, nil
}

// leadIntakeService implements the LeadIntakeService interface for the
// full intake pipeline
type leadIntakeService struct {
	leadService leads.LeadService
	leadRepo    leads.LeadRepository
	enrichment  leads.EnrichmentConnector
	mailList    leads.MailListConnector
	crm         leads.CRMConnector
	tasks       leads.TaskConnector
	runRepo     automations.RunRepository
	logger      logger.Logger
}

// NewLeadIntakeService creates a new leadIntakeService instance
func NewLeadIntakeService(
	leadService leads.LeadService,
	leadRepo leads.LeadRepository,
	enrichment leads.EnrichmentConnector,
	mailList leads.MailListConnector,
	crm leads.CRMConnector,
	tasks leads.TaskConnector,
	runRepo automations.RunRepository,
	logger logger.Logger,
) (leads.LeadIntakeService, error) {
	return &leadIntakeService{
		leadService: leadService,
		leadRepo:    leadRepo,
		enrichment:  enrichment,
		mailList:    mailList,
		crm:         crm,
		tasks:       tasks,
		runRepo:     runRepo,
		logger:      logger,
	}, nil
}

// enterpriseRoleSignals flag roles that warrant a sales follow-up.
var enterpriseRoleSignals = []string{"director", "vp", "head of", "chief", "ceo", "cto", "cmo"}

func hasEnterpriseSignal(role string) bool {
	lowered := strings.ToLower(role)
	for _, signal := range enterpriseRoleSignals {
		if strings.Contains(lowered, signal) {
			return true
		}
	}
	return false
}

// Process runs intake end to end: upsert, enrichment, mail list, CRM
// record and the enterprise follow-up task. Connector failures past the
// upsert downgrade the run instead of failing it.
func (s *leadIntakeService) Process(ctx context.Context, lead *leads.Lead) (*leads.IntakeResult, error) {
	run := &automations.Run{
		ID:           uuid.NewString(),
		AutomationID: automations.AutomationLeadIntake,
		Name:         "Lead Intake",
		Status:       automations.StatusCompleted,
		TriggerData:  map[string]any{"email": lead.Email, "source": lead.Source},
		StartedAt:    time.Now().UTC(),
	}

	stored, err := s.leadService.Upsert(ctx, lead)
	if err != nil {
		run.Finish(automations.StatusFailed, err.Error())
		s.recordRun(ctx, run)
		return nil, err
	}

	partial := false
	result := &leads.IntakeResult{LeadID: stored.ID}

	enrichment, err := s.enrichment.Enrich(ctx, stored.Email)
	if err != nil {
		s.logger.Warn("Enrichment failed for ", stored.Email, ": ", err)
		enrichment = &leads.Enrichment{}
		partial = true
	}
	result.Enrichment = *enrichment

	if enrichment.Company != "" || enrichment.Role != "" || enrichment.LinkedIn != "" {
		stored.EnrichmentCompany = enrichment.Company
		stored.EnrichmentRole = enrichment.Role
		stored.EnrichmentLinkedIn = enrichment.LinkedIn
		if err := s.leadRepo.UpdateByID(ctx, stored); err != nil {
			s.logger.Warn("Failed to store enrichment for ", stored.Email, ": ", err)
			partial = true
		}
	}

	if err := s.mailList.AddContact(ctx, stored.Email, stored.Name, stored.Tags); err != nil {
		s.logger.Warn("Failed to add ", stored.Email, " to mail list: ", err)
		partial = true
	}

	pageID, err := s.crm.CreateContact(ctx, stored, enrichment)
	if err != nil {
		s.logger.Warn("Failed to create CRM record for ", stored.Email, ": ", err)
		partial = true
	}
	result.CRMPageID = pageID

	if hasEnterpriseSignal(enrichment.Role) {
		issueID, err := s.tasks.CreateFollowUp(ctx, stored, enrichment)
		if err != nil {
			s.logger.Warn("Failed to create follow-up for ", stored.Email, ": ", err)
			partial = true
		}
		result.FollowUpIssue = issueID
	}

	status := automations.StatusCompleted
	if partial {
		status = automations.StatusPartial
	}
	run.ExecutionData = map[string]any{
		"lead_id":     stored.ID,
		"crm_page_id": result.CRMPageID,
		"follow_up":   result.FollowUpIssue,
	}
	run.Finish(status, "")
	s.recordRun(ctx, run)

	return result, nil
}

func (s *leadIntakeService) recordRun(ctx context.Context, run *automations.Run) {
	if err := s.runRepo.Create(ctx, run); err != nil {
		s.logger.Warn("Failed to record automation run: ", err)
	}
}

//go:build integration
// +build integration

package app

import (
	"context"
	"sync"
	"testing"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/kpi"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/products"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	WebhookProcessor   payments.WebhookProcessor
	FulfillmentService orders.FulfillmentService
	LeadService        leads.LeadService
	LeadIntakeService  leads.LeadIntakeService
	KPIService         kpi.KPIService
	BriefingService    content.BriefingService

	// Stub connectors with recorded calls
	Workspace  *StubWorkspaceConnector
	Receipts   *StubReceiptSender
	Enrichment *StubEnrichmentConnector
	MailList   *StubMailListConnector
	CRM        *StubCRMConnector
	Tasks      *StubTaskConnector
	Chat       *StubChatConnector
	Campaigns  *StubCampaignSender
	Deduper    *FakeEventDeduper

	DBContext *persistence.TestContext
}

// FakeEventDeduper claims event IDs with SETNX semantics in memory.
type FakeEventDeduper struct {
	mu      sync.Mutex
	claimed map[string]bool
}

func NewFakeEventDeduper() *FakeEventDeduper {
	return &FakeEventDeduper{claimed: make(map[string]bool)}
}

func (d *FakeEventDeduper) Claim(_ context.Context, gateway, eventID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := gateway + ":" + eventID
	if d.claimed[key] {
		return false, nil
	}
	d.claimed[key] = true
	return true, nil
}

func (d *FakeEventDeduper) Release(_ context.Context, gateway, eventID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.claimed, gateway+":"+eventID)
	return nil
}

// StubWorkspaceConnector records workspace provisioning calls
type StubWorkspaceConnector struct {
	mu      sync.Mutex
	Calls   []string
	PageID  string
	FailErr error
}

func (s *StubWorkspaceConnector) CreateWorkspace(_ context.Context, customerEmail, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailErr != nil {
		return "", s.FailErr
	}
	s.Calls = append(s.Calls, customerEmail)
	return s.PageID, nil
}

// StubReceiptSender records receipt sends
type StubReceiptSender struct {
	mu    sync.Mutex
	Calls []string
}

func (s *StubReceiptSender) SendReceipt(_ context.Context, order *orders.Order, _ *products.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, order.BuyerEmail)
	return nil
}

// StubEnrichmentConnector returns a fixed enrichment
type StubEnrichmentConnector struct {
	Result leads.Enrichment
}

func (s *StubEnrichmentConnector) Enrich(_ context.Context, _ string) (*leads.Enrichment, error) {
	result := s.Result
	return &result, nil
}

// StubMailListConnector records list subscriptions
type StubMailListConnector struct {
	mu    sync.Mutex
	Calls []string
}

func (s *StubMailListConnector) AddContact(_ context.Context, email, _ string, _ []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, email)
	return nil
}

// StubCRMConnector records CRM contact creation
type StubCRMConnector struct {
	mu     sync.Mutex
	Calls  []string
	PageID string
}

func (s *StubCRMConnector) CreateContact(_ context.Context, lead *leads.Lead, _ *leads.Enrichment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, lead.Email)
	return s.PageID, nil
}

// StubTaskConnector records follow-up task creation
type StubTaskConnector struct {
	mu      sync.Mutex
	Calls   []string
	IssueID string
}

func (s *StubTaskConnector) CreateFollowUp(_ context.Context, lead *leads.Lead, _ *leads.Enrichment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, lead.Email)
	return s.IssueID, nil
}

// StubChatConnector returns canned completions in order
type StubChatConnector struct {
	mu        sync.Mutex
	Responses []string
	FailErr   error
	calls     int
}

func (s *StubChatConnector) Complete(_ context.Context, _, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailErr != nil {
		return "", s.FailErr
	}
	if s.calls < len(s.Responses) {
		response := s.Responses[s.calls]
		s.calls++
		return response, nil
	}
	return "generated text", nil
}

// StubCampaignSender records campaign sends
type StubCampaignSender struct {
	mu         sync.Mutex
	Subjects   []string
	Recipients [][]string
}

func (s *StubCampaignSender) SendCampaign(_ context.Context, subject, _ string, recipients []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Subjects = append(s.Subjects, subject)
	s.Recipients = append(s.Recipients, recipients)
	return nil
}

type stubMarketData struct{ snapshot content.MarketSnapshot }

func (s stubMarketData) TopMovers(_ context.Context) (*content.MarketSnapshot, error) {
	snapshot := s.snapshot
	return &snapshot, nil
}

type stubScraper struct{}

func (stubScraper) Scrape(_ context.Context, _ string) (string, error) {
	return "scraped markdown", nil
}

type stubSpeech struct{}

func (stubSpeech) Synthesize(_ context.Context, _ string) (string, error) {
	return "/tmp/briefing.mp3", nil
}

type stubVideo struct{}

func (stubVideo) Render(_ context.Context, _ string) (string, error) {
	return "https://video.example.com/briefing.mp4", nil
}

// SetupTestServices initializes the application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	workspace := &StubWorkspaceConnector{PageID: "workspace-1"}
	receipts := &StubReceiptSender{}
	enrichment := &StubEnrichmentConnector{}
	mailList := &StubMailListConnector{}
	crm := &StubCRMConnector{PageID: "page-1"}
	tasks := &StubTaskConnector{IssueID: "issue-1"}
	deduper := NewFakeEventDeduper()

	fulfillmentService, err := NewFulfillmentService(dbContext.OrderRepo, workspace, dbContext.RunRepo, log)
	require.NoError(t, err)

	webhookProcessor, err := NewWebhookProcessor(
		dbContext.OrderRepo,
		dbContext.SubscriptionRepo,
		dbContext.ProductRepo,
		fulfillmentService,
		receipts,
		dbContext.RunRepo,
		deduper,
		log,
	)
	require.NoError(t, err)

	leadService, err := NewLeadService(dbContext.LeadRepo, log)
	require.NoError(t, err)

	leadIntakeService, err := NewLeadIntakeService(
		leadService, dbContext.LeadRepo, enrichment, mailList, crm, tasks, dbContext.RunRepo, log)
	require.NoError(t, err)

	kpiService, err := NewKPIService(dbContext.KPIRepo, dbContext.LeadRepo, dbContext.OrderRepo, log)
	require.NoError(t, err)

	chat := &StubChatConnector{}
	campaigns := &StubCampaignSender{}
	marketData := stubMarketData{snapshot: content.MarketSnapshot{
		Date:    "2026-01-02",
		Gainers: []content.MarketMover{{Ticker: "ACME", Price: 42.1, ChangePct: 12.5}},
		Losers:  []content.MarketMover{{Ticker: "WIDG", Price: 13.7, ChangePct: -8.3}},
	}}

	briefingService, err := NewBriefingService(
		marketData,
		stubScraper{},
		chat,
		stubSpeech{},
		stubVideo{},
		dbContext.ContentRepo,
		dbContext.SubscriptionRepo,
		campaigns,
		dbContext.RunRepo,
		log,
	)
	require.NoError(t, err)

	return &TestServices{
		WebhookProcessor:   webhookProcessor,
		FulfillmentService: fulfillmentService,
		LeadService:        leadService,
		LeadIntakeService:  leadIntakeService,
		KPIService:         kpiService,
		BriefingService:    briefingService,
		Workspace:          workspace,
		Receipts:           receipts,
		Enrichment:         enrichment,
		MailList:           mailList,
		CRM:                crm,
		Tasks:              tasks,
		Chat:               chat,
		Campaigns:          campaigns,
		Deduper:            deduper,
		DBContext:          dbContext,
	}
}

//go:build unit
// +build unit

package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/kpi"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"

	"github.com/stretchr/testify/mock"
)

// MockWebhookDecoder is a mock implementation of WebhookDecoder
type MockWebhookDecoder struct {
	mock.Mock
}

func (m *MockWebhookDecoder) DecodeAndVerify(payload []byte, header http.Header) (*payments.Event, error) {
	args := m.Called(payload, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Event), args.Error(1)
}

// MockWebhookProcessor is a mock implementation of WebhookProcessor
type MockWebhookProcessor struct {
	mock.Mock
}

func (m *MockWebhookProcessor) Process(ctx context.Context, event *payments.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockFulfillmentService is a mock implementation of FulfillmentService
type MockFulfillmentService struct {
	mock.Mock
}

func (m *MockFulfillmentService) FulfillByOrderID(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

// MockLeadIntakeService is a mock implementation of LeadIntakeService
type MockLeadIntakeService struct {
	mock.Mock
}

func (m *MockLeadIntakeService) Process(ctx context.Context, lead *leads.Lead) (*leads.IntakeResult, error) {
	args := m.Called(ctx, lead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.IntakeResult), args.Error(1)
}

// MockKPIService is a mock implementation of KPIService
type MockKPIService struct {
	mock.Mock
}

func (m *MockKPIService) Upsert(ctx context.Context, daily *kpi.DailyKPI) (*kpi.DailyKPI, error) {
	args := m.Called(ctx, daily)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kpi.DailyKPI), args.Error(1)
}

func (m *MockKPIService) ListRecent(ctx context.Context, days int) ([]*kpi.DailyKPI, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kpi.DailyKPI), args.Error(1)
}

func (m *MockKPIService) Rollup(ctx context.Context, day time.Time) (*kpi.DailyKPI, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kpi.DailyKPI), args.Error(1)
}

// MockCopyKitService is a mock implementation of CopyKitService
type MockCopyKitService struct {
	mock.Mock
}

func (m *MockCopyKitService) Fetch(ctx context.Context) (*content.CopyKitData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.CopyKitData), args.Error(1)
}

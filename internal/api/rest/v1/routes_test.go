//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockStripeDecoder := new(MockWebhookDecoder)
	mockPayPalDecoder := new(MockWebhookDecoder)
	mockProcessor := new(MockWebhookProcessor)
	mockFulfillment := new(MockFulfillmentService)
	mockLeadIntake := new(MockLeadIntakeService)
	mockKPI := new(MockKPIService)
	mockCopyKit := new(MockCopyKitService)

	event := &payments.Event{ID: "evt_1", Kind: payments.EventIgnored}
	mockStripeDecoder.On("DecodeAndVerify", mock.Anything, mock.Anything).Return(event, nil)
	mockPayPalDecoder.On("DecodeAndVerify", mock.Anything, mock.Anything).Return(event, nil)
	mockProcessor.On("Process", mock.Anything, mock.Anything).Return(nil)
	mockFulfillment.On("FulfillByOrderID", mock.Anything, mock.Anything).Return(nil)
	mockLeadIntake.On("Process", mock.Anything, mock.Anything).Return(nil, nil)
	mockKPI.On("ListRecent", mock.Anything, mock.Anything).Return(nil, nil)
	mockKPI.On("Upsert", mock.Anything, mock.Anything).Return(nil, nil)
	mockCopyKit.On("Fetch", mock.Anything).Return(nil, nil)

	gin.SetMode(gin.TestMode)
	r := gin.Default()

	SetupRoutes(r, mockStripeDecoder, mockPayPalDecoder, mockProcessor,
		mockFulfillment, mockLeadIntake, mockKPI, mockCopyKit)

	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/health"},
		{"POST", "/webhooks/stripe"},
		{"POST", "/webhooks/paypal"},
		{"POST", "/api/fulfilment/copykit"},
		{"POST", "/api/fulfilment/briefing"},
		{"POST", "/api/leads"},
		{"GET", "/api/kpi/daily"},
		{"POST", "/api/kpi/update"},
		{"GET", "/api/copykit/data"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404), except the
			// fulfilment 404 which only fires on an unknown order id
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	SetupRoutes(r,
		new(MockWebhookDecoder), new(MockWebhookDecoder), new(MockWebhookProcessor),
		new(MockFulfillmentService), new(MockLeadIntakeService), new(MockKPIService),
		new(MockCopyKitService))

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "revenue-engine")
	assert.Contains(t, w.Body.String(), "healthy")
}

//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newWebhookTestContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/webhooks/stripe", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestWebhookHandler_HandleStripe_Success(t *testing.T) {
	mockDecoder := new(MockWebhookDecoder)
	mockProcessor := new(MockWebhookProcessor)
	handler := NewWebhookHandler(mockDecoder, new(MockWebhookDecoder), mockProcessor)

	event := &payments.Event{
		ID:      "evt_1",
		Gateway: payments.GatewayStripe,
		Kind:    payments.EventCheckoutCompleted,
		Checkout: &payments.CheckoutEvent{
			TransactionID: "pi_100",
			BuyerEmail:    "buyer@example.com",
			SKU:           "COPYKIT-PRO",
			AmountPence:   4700,
		},
	}

	mockDecoder.On("DecodeAndVerify", mock.Anything, mock.Anything).Return(event, nil)
	mockProcessor.On("Process", mock.Anything, event).Return(nil)

	c, w := newWebhookTestContext(t, `{"id":"evt_1"}`)
	handler.HandleStripe(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"received":true`)
	mockProcessor.AssertExpectations(t)
}

func TestWebhookHandler_HandleStripe_InvalidSignature(t *testing.T) {
	mockDecoder := new(MockWebhookDecoder)
	mockProcessor := new(MockWebhookProcessor)
	handler := NewWebhookHandler(mockDecoder, new(MockWebhookDecoder), mockProcessor)

	mockDecoder.On("DecodeAndVerify", mock.Anything, mock.Anything).
		Return(nil, payments.ErrInvalidSignature)

	c, w := newWebhookTestContext(t, `{"id":"evt_1"}`)
	handler.HandleStripe(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockProcessor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestWebhookHandler_HandleStripe_MalformedPayload(t *testing.T) {
	mockDecoder := new(MockWebhookDecoder)
	mockProcessor := new(MockWebhookProcessor)
	handler := NewWebhookHandler(mockDecoder, new(MockWebhookDecoder), mockProcessor)

	mockDecoder.On("DecodeAndVerify", mock.Anything, mock.Anything).
		Return(nil, errors.New("unexpected end of JSON input"))

	c, w := newWebhookTestContext(t, `{`)
	handler.HandleStripe(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookHandler_HandleStripe_ProcessorError(t *testing.T) {
	mockDecoder := new(MockWebhookDecoder)
	mockProcessor := new(MockWebhookProcessor)
	handler := NewWebhookHandler(mockDecoder, new(MockWebhookDecoder), mockProcessor)

	event := &payments.Event{ID: "evt_1", Gateway: payments.GatewayStripe, Kind: payments.EventIgnored}
	mockDecoder.On("DecodeAndVerify", mock.Anything, mock.Anything).Return(event, nil)
	mockProcessor.On("Process", mock.Anything, event).Return(errors.New("db unavailable"))

	c, w := newWebhookTestContext(t, `{"id":"evt_1"}`)
	handler.HandleStripe(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWebhookHandler_HandlePayPal_UsesPayPalDecoder(t *testing.T) {
	stripeDecoder := new(MockWebhookDecoder)
	paypalDecoder := new(MockWebhookDecoder)
	mockProcessor := new(MockWebhookProcessor)
	handler := NewWebhookHandler(stripeDecoder, paypalDecoder, mockProcessor)

	event := &payments.Event{ID: "WH-1", Gateway: payments.GatewayPayPal, Kind: payments.EventIgnored}
	paypalDecoder.On("DecodeAndVerify", mock.Anything, mock.Anything).Return(event, nil)
	mockProcessor.On("Process", mock.Anything, event).Return(nil)

	c, w := newWebhookTestContext(t, `{"id":"WH-1"}`)
	handler.HandlePayPal(c)

	assert.Equal(t, http.StatusOK, w.Code)
	stripeDecoder.AssertNotCalled(t, "DecodeAndVerify", mock.Anything, mock.Anything)
	paypalDecoder.AssertExpectations(t)
}

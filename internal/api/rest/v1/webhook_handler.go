package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// maxWebhookBodyBytes bounds how much of a webhook delivery is read.
const maxWebhookBodyBytes = 1 << 20

// WebhookHandler defines the interface for handling payment gateway webhooks
type WebhookHandler interface {
	HandleStripe(ctx *gin.Context)
	HandlePayPal(ctx *gin.Context)
}

// webhookHandler struct holds the decoders and processor
type webhookHandler struct {
	stripeDecoder payments.WebhookDecoder
	paypalDecoder payments.WebhookDecoder
	processor     payments.WebhookProcessor
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(stripeDecoder, paypalDecoder payments.WebhookDecoder, processor payments.WebhookProcessor) WebhookHandler {
	return &webhookHandler{
		stripeDecoder: stripeDecoder,
		paypalDecoder: paypalDecoder,
		processor:     processor,
	}
}

// HandleStripe processes a Stripe webhook delivery
func (handler *webhookHandler) HandleStripe(ctx *gin.Context) {
	handler.handle(ctx, handler.stripeDecoder)
}

// HandlePayPal processes a PayPal webhook delivery
func (handler *webhookHandler) HandlePayPal(ctx *gin.Context) {
	handler.handle(ctx, handler.paypalDecoder)
}

func (handler *webhookHandler) handle(ctx *gin.Context, decoder payments.WebhookDecoder) {
	payload, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "failed to read request body"})
		return
	}

	event, err := decoder.DecodeAndVerify(payload, ctx.Request.Header)
	if err != nil {
		if errors.Is(err, payments.ErrInvalidSignature) {
			ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid signature"})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid payload"})
		return
	}

	if err := handler.processor.Process(ctx, event); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, ReceivedResponse{Received: true})
}

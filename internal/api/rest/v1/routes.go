package v1

import (
	"net/http"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/kpi"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	stripeDecoder payments.WebhookDecoder,
	paypalDecoder payments.WebhookDecoder,
	webhookProcessor payments.WebhookProcessor,
	fulfillmentService orders.FulfillmentService,
	leadIntakeService leads.LeadIntakeService,
	kpiService kpi.KPIService,
	copyKitService content.CopyKitService) {

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, HealthResponse{
			Service:   "revenue-engine",
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	})

	// Webhook Routes
	webhookHandler := NewWebhookHandler(stripeDecoder, paypalDecoder, webhookProcessor)
	r.POST("/webhooks/stripe", webhookHandler.HandleStripe)
	r.POST("/webhooks/paypal", webhookHandler.HandlePayPal)

	api := r.Group(BasePath) // lookup in version file

	// Fulfilment Routes
	fulfilmentHandler := NewFulfilmentHandler(fulfillmentService)
	api.POST("/fulfilment/copykit", fulfilmentHandler.FulfillCopyKit)
	api.POST("/fulfilment/briefing", fulfilmentHandler.FulfillBriefing)

	// Lead Routes
	leadHandler := NewLeadHandler(leadIntakeService)
	api.POST("/leads", leadHandler.Create)

	// KPI Routes
	kpiHandler := NewKPIHandler(kpiService)
	api.GET("/kpi/daily", kpiHandler.ListDaily)
	api.POST("/kpi/update", kpiHandler.Update)

	// CopyKit Routes
	copyKitHandler := NewCopyKitHandler(copyKitService)
	api.GET("/copykit/data", copyKitHandler.GetData)
}

package v1

import (
	"errors"
	"net/http"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"

	"github.com/gin-gonic/gin"
)

// FulfilmentHandler defines the interface for manual fulfilment retries
type FulfilmentHandler interface {
	FulfillCopyKit(ctx *gin.Context)
	FulfillBriefing(ctx *gin.Context)
}

// fulfilmentHandler struct holds the fulfillment service
type fulfilmentHandler struct {
	fulfillmentService orders.FulfillmentService
}

// NewFulfilmentHandler creates a new FulfilmentHandler
func NewFulfilmentHandler(fulfillmentService orders.FulfillmentService) FulfilmentHandler {
	return &fulfilmentHandler{fulfillmentService: fulfillmentService}
}

// FulfillCopyKit retries CopyKit delivery for a paid order
func (handler *fulfilmentHandler) FulfillCopyKit(ctx *gin.Context) {
	handler.fulfill(ctx)
}

// FulfillBriefing retries briefing access delivery for a paid order
func (handler *fulfilmentHandler) FulfillBriefing(ctx *gin.Context) {
	handler.fulfill(ctx)
}

func (handler *fulfilmentHandler) fulfill(ctx *gin.Context) {
	var request FulfilmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "order_id is required"})
		return
	}

	if err := handler.fulfillmentService.FulfillByOrderID(ctx, request.OrderID); err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: "order not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, FulfilmentResponse{OrderID: request.OrderID, Fulfilled: true})
}

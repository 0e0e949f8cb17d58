package v1

import (
	"net/http"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"

	"github.com/gin-gonic/gin"
)

// LeadHandler defines the interface for handling lead intake
type LeadHandler interface {
	Create(ctx *gin.Context)
}

// leadHandler struct holds the lead intake service
type leadHandler struct {
	leadIntakeService leads.LeadIntakeService
}

// NewLeadHandler creates a new LeadHandler
func NewLeadHandler(leadIntakeService leads.LeadIntakeService) LeadHandler {
	return &leadHandler{leadIntakeService: leadIntakeService}
}

// Create runs the intake pipeline for a submitted lead
func (handler *leadHandler) Create(ctx *gin.Context) {
	var request LeadRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	lead := &leads.Lead{
		Email:       request.Email,
		Name:        request.Name,
		Source:      request.Source,
		Tags:        request.Tags,
		UTMSource:   request.UTMSource,
		UTMCampaign: request.UTMCampaign,
		UTMMedium:   request.UTMMedium,
		UTMTerm:     request.UTMTerm,
		UTMContent:  request.UTMContent,
	}

	result, err := handler.leadIntakeService.Process(ctx, lead)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, LeadResponse{
		LeadID:        result.LeadID,
		CRMPageID:     result.CRMPageID,
		FollowUpIssue: result.FollowUpIssue,
	})
}

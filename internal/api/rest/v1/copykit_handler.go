package v1

import (
	"net/http"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"

	"github.com/gin-gonic/gin"
)

// CopyKitHandler defines the interface for the landing-page data endpoint
type CopyKitHandler interface {
	GetData(ctx *gin.Context)
}

// copyKitHandler struct holds the CopyKit service
type copyKitHandler struct {
	copyKitService content.CopyKitService
}

// NewCopyKitHandler creates a new CopyKitHandler
func NewCopyKitHandler(copyKitService content.CopyKitService) CopyKitHandler {
	return &copyKitHandler{copyKitService: copyKitService}
}

// GetData fetches and parses the configured landing page
func (handler *copyKitHandler) GetData(ctx *gin.Context) {
	data, err := handler.copyKitService.Fetch(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, CopyKitDataResponse{
		GlobalEnv:       data.GlobalEnv,
		Title:           data.Title,
		MetaDescription: data.MetaDescription,
		ContentLength:   data.ContentLength,
		LastUpdated:     data.LastUpdated,
	})
}

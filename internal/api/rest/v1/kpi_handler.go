package v1

import (
	"net/http"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/kpi"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// KPIHandler defines the interface for the daily KPI endpoints
type KPIHandler interface {
	ListDaily(ctx *gin.Context)
	Update(ctx *gin.Context)
}

// kpiHandler struct holds the KPI service
type kpiHandler struct {
	kpiService kpi.KPIService
}

// NewKPIHandler creates a new KPIHandler
func NewKPIHandler(kpiService kpi.KPIService) KPIHandler {
	return &kpiHandler{kpiService: kpiService}
}

// ListDaily returns recent KPI rows, newest first
func (handler *kpiHandler) ListDaily(ctx *gin.Context) {
	days := 30
	if raw := ctx.Query("days"); len(raw) > 0 {
		days = utils.ConvertToInt(raw)
	}

	rows, err := handler.kpiService.ListRecent(ctx, days)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	responses := make([]KPIResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, toKPIResponse(row))
	}
	ctx.JSON(http.StatusOK, responses)
}

// Update upserts the KPI row for a date
func (handler *kpiHandler) Update(ctx *gin.Context) {
	var request KPIUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "date must be YYYY-MM-DD"})
		return
	}

	stored, err := handler.kpiService.Upsert(ctx, &kpi.DailyKPI{
		Date:          date,
		Visitors:      request.Visitors,
		Leads:         request.Leads,
		Orders:        request.Orders,
		GrossPence:    request.GrossPence,
		NetPence:      request.NetPence,
		Refunds:       request.Refunds,
		ConversionPct: request.ConversionPct,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toKPIResponse(stored))
}

func toKPIResponse(row *kpi.DailyKPI) KPIResponse {
	return KPIResponse{
		Date:          row.Date.Format("2006-01-02"),
		Visitors:      row.Visitors,
		Leads:         row.Leads,
		Orders:        row.Orders,
		GrossPence:    row.GrossPence,
		NetPence:      row.NetPence,
		Refunds:       row.Refunds,
		ConversionPct: row.ConversionPct,
	}
}

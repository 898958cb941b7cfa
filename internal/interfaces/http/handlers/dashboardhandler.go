package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/katalon/insights/internal/application/analytics/usecases"
	"github.com/katalon/insights/internal/domain/analytics"
	"github.com/katalon/insights/internal/shared/logger"
	"github.com/katalon/insights/internal/shared/utils"
)

type dashboardStatsUseCase interface {
	Execute(ctx context.Context, q usecases.GetDashboardStatsQuery) (*analytics.Stats, error)
}

// DashboardHandler serves the analytics dashboard.
type DashboardHandler struct {
	statsUC dashboardStatsUseCase
	logger  logger.Interface
}

func NewDashboardHandler(statsUC dashboardStatsUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{statsUC: statsUC, logger: logger}
}

// GetStats handles GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	startDate, err := utils.ParseDateParam(c, "startDate")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	endDate, err := utils.ParseDateParam(c, "endDate")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	q := usecases.GetDashboardStatsQuery{
		TimeRange: c.Query("timeRange"),
		StartDate: startDate,
		EndDate:   endDate,
		Period:    c.Query("period"),
	}

	result, err := h.statsUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

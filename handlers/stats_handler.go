package handlers

import (
	"newsportal/helper"
	"newsportal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService services.StatsService
	Helper       *helper.HTTPHelper
}

func NewStatsHandler(statsService services.StatsService, httpHelper *helper.HTTPHelper) *StatsHandler {
	return &StatsHandler{statsService: statsService, Helper: httpHelper}
}

func (h *StatsHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.statsService.GetDashboardStats(c.Request.Context(), identity(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Dashboard stats loaded", stats)
}

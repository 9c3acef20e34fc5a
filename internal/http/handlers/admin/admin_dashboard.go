package admin

import (
	"github.com/favorite-plug/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the admin overview counters.
func (h *Handler) GetDashboardStats(c *gin.Context) {
	stats, err := h.DashboardService.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load dashboard stats", err)
		return
	}
	response.Success(c, stats)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard/internal/services"
)

type StatsHandler struct {
	Stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

// Platform is GET /stats/platform (admin only, enforced by route middleware).
func (h *StatsHandler) Platform(c *gin.Context) {
	stats, err := h.Stats.Platform(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// PopularSearches is GET /stats/popular-searches (admin only).
func (h *StatsHandler) PopularSearches(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days < 1 || days > 365 {
		days = 30
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	searches, err := h.Stats.PopularSearches(days, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"popular_searches": searches,
		"period_days":      days,
	})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/services"
)

type ScrapingHandler struct {
	Scraping *services.ScrapingService
}

func NewScrapingHandler(scraping *services.ScrapingService) *ScrapingHandler {
	return &ScrapingHandler{Scraping: scraping}
}

// CreateSource is POST /scraping/sources (admin only, enforced by route
// middleware).
func (h *ScrapingHandler) CreateSource(c *gin.Context) {
	var req dtos.ScrapingSourceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	source, err := h.Scraping.CreateSource(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, source)
}

// ListSources is GET /scraping/sources.
func (h *ScrapingHandler) ListSources(c *gin.Context) {
	sources, err := h.Scraping.ListSources(boolQuery(c, "active"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sources)
}

// GetSource is GET /scraping/sources/:id.
func (h *ScrapingHandler) GetSource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	source, err := h.Scraping.GetSource(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, source)
}

// UpdateSource is PUT /scraping/sources/:id (admin only).
func (h *ScrapingHandler) UpdateSource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dtos.ScrapingSourceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	source, err := h.Scraping.UpdateSource(id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, source)
}

// CreateJob is POST /scraping/jobs: the run is owned by the caller.
func (h *ScrapingHandler) CreateJob(c *gin.Context) {
	var req dtos.ScrapingJobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user := auth.CurrentUser(c)
	job, err := h.Scraping.CreateJob(user.ID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ListJobs is GET /scraping/jobs. Non-admins only see their own runs.
func (h *ScrapingHandler) ListJobs(c *gin.Context) {
	user := auth.CurrentUser(c)
	userID := user.ID
	if auth.IsAdmin(c) {
		userID = 0
	}

	var sourceID uint
	if raw := c.Query("source_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source_id"})
			return
		}
		sourceID = uint(id)
	}

	skip, limit := skipLimit(c)
	jobs, err := h.Scraping.ListJobs(userID, c.Query("status"), sourceID, skip, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is GET /scraping/jobs/:id (owner, admin, or scraper).
func (h *ScrapingHandler) GetJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	job, err := h.Scraping.GetJob(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	user := auth.CurrentUser(c)
	if job.UserID != user.ID && !auth.IsAdmin(c) && user.Role != models.RoleScraper {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJobStatus is PUT /scraping/jobs/:id/status (admin or scraper role,
// enforced by route middleware).
func (h *ScrapingHandler) UpdateJobStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dtos.ScrapingJobStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	job, err := h.Scraping.UpdateJobStatus(id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

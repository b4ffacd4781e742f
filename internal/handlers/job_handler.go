package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/services"
)

type JobHandler struct {
	Jobs         *services.JobService
	Interactions *services.InteractionService
	Matcher      *services.MatchService
}

func NewJobHandler(jobs *services.JobService, interactions *services.InteractionService, matcher *services.MatchService) *JobHandler {
	return &JobHandler{Jobs: jobs, Interactions: interactions, Matcher: matcher}
}

// Create is POST /jobs. A duplicate source URL returns the existing offer
// with 200 instead of creating a second row.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	offer, created, err := h.Jobs.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, offer)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// Search is GET /jobs: filters, pagination and a sort whitelist. A free-text
// query also lands in the caller's search history.
func (h *JobHandler) Search(c *gin.Context) {
	var q dtos.JobSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.Jobs.Search(&q)
	if err != nil {
		serviceError(c, err)
		return
	}

	if q.Query != "" {
		if user := auth.CurrentUser(c); user != nil {
			if err := h.Interactions.RecordSearch(user.ID, q.Query, q, result.Total); err != nil {
				log.Printf("[jobs] could not record search history: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, result)
}

// Recent is GET /jobs/recent (public).
func (h *JobHandler) Recent(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	if days < 1 || days > 30 {
		days = 7
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 100 {
		limit = 50
	}

	offers, err := h.Jobs.Recent(days, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// Get is GET /jobs/:id. Fetching an offer records a "viewed" interaction for
// the caller.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	offer, err := h.Jobs.Get(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	if user := auth.CurrentUser(c); user != nil {
		if _, err := h.Interactions.Record(user.ID, offer.ID, services.ActionViewed, nil); err != nil {
			log.Printf("[jobs] could not record view: %v", err)
		}
	}

	c.JSON(http.StatusOK, offer)
}

// Update is PUT /jobs/:id.
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	offer, err := h.Jobs.Update(id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// Delete is DELETE /jobs/:id (admin only, enforced by route middleware).
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Jobs.Delete(id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job offer deleted"})
}

// Interact is POST /jobs/:id/interact?action=saved|applied|rejected|interested.
func (h *JobHandler) Interact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	action := c.Query("action")
	switch action {
	case services.ActionSaved, services.ActionApplied, services.ActionRejected, services.ActionInterested:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be one of saved, applied, rejected, interested"})
		return
	}

	if _, err := h.Jobs.Get(id); err != nil {
		serviceError(c, err)
		return
	}

	user := auth.CurrentUser(c)
	interaction, err := h.Interactions.Record(user.ID, id, action, nil)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interaction)
}

// Match is POST /jobs/:id/match: the simulated compatibility analysis of the
// caller's profile against one offer.
func (h *JobHandler) Match(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	offer, err := h.Jobs.Get(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	user := auth.CurrentUser(c)
	c.JSON(http.StatusOK, h.Matcher.Analyze(user, offer))
}

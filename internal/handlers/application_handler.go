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

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Interactions *services.InteractionService
}

func NewApplicationHandler(applications *services.ApplicationService, interactions *services.InteractionService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications, Interactions: interactions}
}

// Create is POST /applications. One application per (user, offer);
// duplicates get 400.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user := auth.CurrentUser(c)
	application, err := h.Applications.Create(user.ID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	// Applying is also an interaction; failure to record it does not fail
	// the application itself.
	if _, err := h.Interactions.Record(user.ID, req.JobOfferID, services.ActionApplied, nil); err != nil {
		log.Printf("[applications] could not record interaction: %v", err)
	}

	c.JSON(http.StatusCreated, application)
}

// List is GET /applications: own rows, or any user's rows for admins via
// ?user_id=.
func (h *ApplicationHandler) List(c *gin.Context) {
	user := auth.CurrentUser(c)
	userID := user.ID
	if auth.IsAdmin(c) {
		if raw := c.Query("user_id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
				return
			}
			userID = uint(id)
		} else {
			userID = 0 // all users
		}
	}

	skip, limit := skipLimit(c)
	applications, err := h.Applications.List(userID, c.Query("status"), skip, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// owns allows the application's owner and admins.
func (h *ApplicationHandler) owns(c *gin.Context, id uint) (found bool) {
	application, err := h.Applications.Get(id)
	if err != nil {
		serviceError(c, err)
		return false
	}
	user := auth.CurrentUser(c)
	if application.UserID != user.ID && !auth.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return false
	}
	return true
}

// Get is GET /applications/:id (owner or admin).
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.owns(c, id) {
		return
	}
	application, err := h.Applications.Get(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// Update is PUT /applications/:id (owner or admin): status and notes only.
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.owns(c, id) {
		return
	}

	var req dtos.ApplicationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	application, err := h.Applications.Update(id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// Delete is DELETE /applications/:id (owner or admin).
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.owns(c, id) {
		return
	}
	if err := h.Applications.Delete(id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "application withdrawn"})
}

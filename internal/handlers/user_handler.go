package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/services"
)

type UserHandler struct {
	Users *services.UserService
	// unexported: Interactions is taken by the route method below.
	interactions *services.InteractionService
}

func NewUserHandler(users *services.UserService, interactions *services.InteractionService) *UserHandler {
	return &UserHandler{Users: users, interactions: interactions}
}

// List is GET /users (admin only, enforced by route middleware).
func (h *UserHandler) List(c *gin.Context) {
	skip, limit := skipLimit(c)
	users, err := h.Users.List(boolQuery(c, "active"), skip, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// canAccessUser allows the user themselves and admins.
func canAccessUser(c *gin.Context, id uint) bool {
	current := auth.CurrentUser(c)
	if current != nil && (current.ID == id || auth.IsAdmin(c)) {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	return false
}

// Get is GET /users/:id (self or admin).
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !canAccessUser(c, id) {
		return
	}

	user, err := h.Users.Get(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update is PUT /users/:id (self or admin).
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !canAccessUser(c, id) {
		return
	}

	var req dtos.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.Users.Update(id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete is DELETE /users/:id (admin only): soft delete via the active flag.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Users.Deactivate(id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deactivated"})
}

// Stats is GET /users/:id/stats (self or admin).
func (h *UserHandler) Stats(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !canAccessUser(c, id) {
		return
	}

	stats, err := h.Users.Stats(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Interactions is GET /users/:id/interactions (self or admin).
func (h *UserHandler) Interactions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !canAccessUser(c, id) {
		return
	}

	skip, limit := skipLimit(c)
	interactions, err := h.interactions.ListByUser(id, c.Query("action"), skip, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interactions)
}

// Searches is GET /users/:id/searches (self or admin).
func (h *UserHandler) Searches(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !canAccessUser(c, id) {
		return
	}

	skip, limit := skipLimit(c)
	history, err := h.interactions.SearchHistoryByUser(id, skip, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventflow/internal/models"
)

// ListUsers - GET /admin/users
// User records for the admin dashboard, password hashes stripped
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, models.UserResponse{
			Username: u.Username,
			Email:    u.Email,
			Role:     u.Role,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// ManageUser - POST /admin/users
// One endpoint for the three dashboard actions: delete, promote, add
func (h *Handlers) ManageUser(c *gin.Context) {
	var req models.AdminUserActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	switch req.Action {
	case "delete":
		if req.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
			return
		}
		if err := h.services.Users.Delete(ctx, req.Username); err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{
			Message: fmt.Sprintf("User '%s' has been deleted.", req.Username),
		})

	case "promote":
		if req.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
			return
		}
		if err := h.services.Users.Promote(ctx, req.Username); err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{
			Message: fmt.Sprintf("User '%s' has been promoted to admin.", req.Username),
		})

	case "add":
		if req.NewUsername == "" || req.NewPassword == "" || req.NewEmail == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "new_username, new_password and new_email are required"})
			return
		}
		if err := h.services.Users.Register(ctx, req.NewUsername, req.NewPassword, req.NewEmail); err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.MessageResponse{
			Message: fmt.Sprintf("User '%s' has been added.", req.NewUsername),
		})
	}
}

// GetAllUserEvents - GET /get_all_user_events
// Admin-wide (user, booked event) report
func (h *Handlers) GetAllUserEvents(c *gin.Context) {
	userEvents, err := h.services.Aggregate.AllUserEvents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, userEvents)
}

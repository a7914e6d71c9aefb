package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventflow/internal/middleware"
	"eventflow/internal/models"
)

// AddNotification - POST /add_notification
// Admin push of a notification to one user
func (h *Handlers) AddNotification(c *gin.Context) {
	var req models.AddNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.services.Notifications.Push(c.Request.Context(), req.Email, req.Text); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.MessageResponse{Message: "Notification sent successfully"})
}

// GetUserNotifications - GET /get_user_notifications
func (h *Handlers) GetUserNotifications(c *gin.Context) {
	ident := middleware.Identity(c)

	notifications, err := h.services.Notifications.ForUser(c.Request.Context(), ident.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

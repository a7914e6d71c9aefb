package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventflow/internal/models"
)

// SendEmail - POST /send-email
// Sends the appointment-confirmation email synchronously through the SMTP
// relay. There is no retry: a delivery failure surfaces as a 500.
func (h *Handlers) SendEmail(c *gin.Context) {
	var req models.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.mailer.SendConfirmation(c.Request.Context(), req.ToEmail, req.Date, req.Time); err != nil {
		slog.Error("failed to send confirmation email", "to", req.ToEmail, "error", err)
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Email sent successfully to %s!", req.ToEmail),
	})
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "eventflow/internal/errors"
	"eventflow/internal/service"
)

// Mailer is the outbound mail boundary, narrowed so tests can fake delivery
type Mailer interface {
	SendConfirmation(ctx context.Context, toEmail, date, timeSlot string) error
}

type Handlers struct {
	services *service.Services
	mailer   Mailer
}

func NewHandlers(services *service.Services, mailer Mailer) *Handlers {
	return &Handlers{
		services: services,
		mailer:   mailer,
	}
}

// handleError maps an error kind to a status code and a JSON error body.
// Validation failures come back 4xx with the concrete reason; storage
// failures mirror the store's own distinction between absence and corruption.
func (h *Handlers) handleError(c *gin.Context, err error) {
	c.Error(err)

	var missing *apperrors.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error()})

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, apperrors.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrBookingNotFound),
		errors.Is(err, apperrors.ErrStoreNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, apperrors.ErrDecode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, apperrors.ErrMailDelivery):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

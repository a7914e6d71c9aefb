package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventflow/internal/middleware"
	"eventflow/internal/models"
)

// BookEvent - POST /book_event
// Books for the logged-in identity; the email always comes from the session,
// never from the request body.
func (h *Handlers) BookEvent(c *gin.Context) {
	var req models.BookEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ident := middleware.Identity(c)

	booking, err := h.services.Bookings.Book(c.Request.Context(), req.EventID, ident.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.BookEventResponse{
		BookingID: booking.BookingID,
		Message:   "Event booked successfully",
	})
}

// CancelRegistration - POST /cancel_registration
// Drops every booking the caller holds for the event in one go
func (h *Handlers) CancelRegistration(c *gin.Context) {
	var req models.BookEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ident := middleware.Identity(c)

	if err := h.services.Bookings.Cancel(c.Request.Context(), req.EventID, ident.Email); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Booking canceled successfully."})
}

// GetUserEvents - GET /get_user_events
// Events the logged-in user holds bookings for
func (h *Handlers) GetUserEvents(c *gin.Context) {
	ident := middleware.Identity(c)

	events, err := h.services.Aggregate.EventsForUser(c.Request.Context(), ident.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

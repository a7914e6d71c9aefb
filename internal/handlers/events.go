package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventflow/internal/models"
)

// AddEvent - POST /add_event
// The body is taken as a free-form object so fields beyond the required five
// survive into the store untouched.
func (h *Handlers) AddEvent(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no JSON data received"})
		return
	}

	eventID, err := h.services.Events.Add(c.Request.Context(), fields)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.AddEventResponse{
		EventID: eventID,
		Message: "Event added successfully",
	})
}

// ListEvents - GET /get_events
func (h *Handlers) ListEvents(c *gin.Context) {
	events, err := h.services.Events.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wedding-rsvp/internal/admin"
	"wedding-rsvp/internal/content"
	"wedding-rsvp/internal/models"
)

// Timeline provides the read projections of the schedule
type Timeline interface {
	AdminTimeline(ctx context.Context) ([]models.WeddingEvent, error)
	LocalizedTimeline(ctx context.Context, lang models.Language) ([]content.LocalizedEvent, error)
}

// EventAdmin manages timeline entries
type EventAdmin interface {
	CreateEvent(ctx context.Context, in admin.EventInput) (*models.WeddingEvent, error)
	GetEvent(ctx context.Context, id string) (*models.WeddingEvent, error)
	UpdateEvent(ctx context.Context, id string, patch admin.EventPatch) (*models.WeddingEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}

// EventHandler serves the timeline routes
type EventHandler struct {
	timeline Timeline
	events   EventAdmin
	log      zerolog.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(timeline Timeline, events EventAdmin, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		timeline: timeline,
		events:   events,
		log:      logger,
	}
}

// requestLanguage prefers ?lang= and falls back to Accept-Language
func requestLanguage(c *gin.Context) models.Language {
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return content.ParseLanguage(lang)
	}
	return content.Negotiate(c.GetHeader("Accept-Language"))
}

// Public returns the visible timeline with text resolved for the visitor's language
func (h *EventHandler) Public(c *gin.Context) {
	events, err := h.timeline.LocalizedTimeline(c.Request.Context(), requestLanguage(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// All returns every entry, hidden ones included
func (h *EventHandler) All(c *gin.Context) {
	events, err := h.timeline.AdminTimeline(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if events == nil {
		events = []models.WeddingEvent{}
	}
	c.JSON(http.StatusOK, events)
}

// Create adds a timeline entry
func (h *EventHandler) Create(c *gin.Context) {
	var in admin.EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	event, err := h.events.CreateEvent(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// Get returns one timeline entry, hidden or not
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.events.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Update applies a partial edit to a timeline entry
func (h *EventHandler) Update(c *gin.Context) {
	var patch admin.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	event, err := h.events.UpdateEvent(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Delete removes a timeline entry
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.events.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

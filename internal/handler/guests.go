package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wedding-rsvp/internal/admin"
	"wedding-rsvp/internal/models"
)

// GuestAdmin manages the guest list
type GuestAdmin interface {
	CreateGuest(ctx context.Context, in admin.GuestInput) (*models.Guest, error)
	GetGuest(ctx context.Context, id string) (*models.Guest, error)
	ListGuests(ctx context.Context, filter models.GuestFilter) ([]models.Guest, error)
	UpdateGuest(ctx context.Context, id string, patch admin.GuestPatch) (*models.Guest, error)
	DeleteGuest(ctx context.Context, id string) error
}

// StatsSource computes attendance statistics
type StatsSource interface {
	ComputeStats(ctx context.Context) (models.Stats, error)
}

// Inviter delivers an invitation to a guest
type Inviter interface {
	SendInvitation(ctx context.Context, guest *models.Guest) error
}

// GuestHandler serves the admin guest routes
type GuestHandler struct {
	guests  GuestAdmin
	stats   StatsSource
	inviter Inviter
	log     zerolog.Logger
}

// NewGuestHandler creates a new guest handler. inviter may be nil when no
// messaging transport is configured.
func NewGuestHandler(guests GuestAdmin, stats StatsSource, inviter Inviter, logger zerolog.Logger) *GuestHandler {
	return &GuestHandler{
		guests:  guests,
		stats:   stats,
		inviter: inviter,
		log:     logger,
	}
}

// List returns guests filtered by the search, rsvp_status and group_name query parameters
func (h *GuestHandler) List(c *gin.Context) {
	filter := models.GuestFilter{
		Search:     c.Query("search"),
		RSVPStatus: models.RSVPStatus(c.Query("rsvp_status")),
		GroupName:  c.Query("group_name"),
	}
	guests, err := h.guests.ListGuests(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if guests == nil {
		guests = []models.Guest{}
	}
	c.JSON(http.StatusOK, guests)
}

// Stats returns attendance counts
func (h *GuestHandler) Stats(c *gin.Context) {
	stats, err := h.stats.ComputeStats(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Create adds a guest with a fresh RSVP code
func (h *GuestHandler) Create(c *gin.Context) {
	var in admin.GuestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	guest, err := h.guests.CreateGuest(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.log.Info().Str("guest_id", guest.ID).Str("admin", AdminSubject(c)).Msg("Guest added")
	c.JSON(http.StatusCreated, guest)
}

// Get returns the full admin record of one guest
func (h *GuestHandler) Get(c *gin.Context) {
	guest, err := h.guests.GetGuest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// Update applies a partial edit to a guest
func (h *GuestHandler) Update(c *gin.Context) {
	var patch admin.GuestPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	guest, err := h.guests.UpdateGuest(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// Delete removes a guest
func (h *GuestHandler) Delete(c *gin.Context) {
	if err := h.guests.DeleteGuest(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Invite sends the invitation of one guest over WhatsApp
func (h *GuestHandler) Invite(c *gin.Context) {
	if h.inviter == nil {
		respondError(c, h.log, errWhatsAppDisabled)
		return
	}
	guest, err := h.guests.GetGuest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.inviter.SendInvitation(c.Request.Context(), guest); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Invitation sent"})
}

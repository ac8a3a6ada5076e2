// Package handler exposes the wedding services over HTTP and WhatsApp.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wedding-rsvp/internal/models"
)

// RSVPService is the code-based protocol guests answer through
type RSVPService interface {
	Lookup(ctx context.Context, code string) (models.RSVPView, error)
	Submit(ctx context.Context, code string, decision models.Decision) (models.RSVPView, error)
}

// RSVPHandler serves the public RSVP routes
type RSVPHandler struct {
	rsvps RSVPService
	log   zerolog.Logger
}

// NewRSVPHandler creates a new RSVP handler
func NewRSVPHandler(rsvps RSVPService, logger zerolog.Logger) *RSVPHandler {
	return &RSVPHandler{
		rsvps: rsvps,
		log:   logger,
	}
}

type submitRequest struct {
	RSVPCode string `json:"rsvp_code"`
	models.Decision
}

type submitResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Guest   models.RSVPView `json:"guest"`
}

// Lookup returns the invitation behind the code in the path
func (h *RSVPHandler) Lookup(c *gin.Context) {
	view, err := h.rsvps.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit records a guest's answer
func (h *RSVPHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.rsvps.Submit(c.Request.Context(), req.RSVPCode, req.Decision)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, submitResponse{
		Success: true,
		Message: "RSVP submitted successfully",
		Guest:   view,
	})
}

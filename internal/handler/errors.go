package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wedding-rsvp/internal/admin"
	"wedding-rsvp/internal/auth"
	"wedding-rsvp/internal/rsvp"
)

// errWhatsAppDisabled is returned by invitation routes when no transport is configured
var errWhatsAppDisabled = errors.New("whatsapp is not enabled")

// statusFor maps a domain error onto an HTTP status code
func statusFor(err error) int {
	var verr *admin.ValidationError
	switch {
	case errors.Is(err, rsvp.ErrNotFound), errors.Is(err, admin.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, rsvp.ErrInvalidStatus), errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errWhatsAppDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError writes err as a JSON body. Internal errors are logged and
// replaced by a generic message.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})
		return
	}

	body := gin.H{"error": err.Error()}
	var verr *admin.ValidationError
	if errors.As(err, &verr) {
		body["field"] = verr.Field
		body["error"] = verr.Message
	}
	c.AbortWithStatusJSON(status, body)
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wedding-rsvp/internal/auth"
)

const subjectKey = "admin_subject"

// TokenVerifier checks admin bearer tokens
type TokenVerifier interface {
	Verify(raw string) (auth.Identity, error)
}

// RequireAdmin rejects requests without a valid admin bearer token
func RequireAdmin(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrUnauthorized.Error()})
			return
		}
		identity, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrUnauthorized.Error()})
			return
		}
		c.Set(subjectKey, identity.Subject)
		c.Next()
	}
}

// AdminSubject returns the verified subject of the current admin request
func AdminSubject(c *gin.Context) string {
	return c.GetString(subjectKey)
}

// RequestLogger logs every request through zerolog. The route template is
// logged instead of the raw path so RSVP codes stay out of the logs.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		evt := log.Info()
		if status >= http.StatusInternalServerError {
			evt = log.Error()
		}
		evt.Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("HTTP request")
	}
}

package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestRequestLoggerKeepsCodesOutOfLogs(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&buf)))
	router.GET("/api/rsvp/lookup/:code", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rsvp/lookup/QX7K2M9P", nil))

	logged := buf.String()
	if strings.Contains(logged, "QX7K2M9P") {
		t.Fatalf("access log leaked the RSVP code: %s", logged)
	}
	if !strings.Contains(logged, `"route":"/api/rsvp/lookup/:code"`) {
		t.Fatalf("access log missing route template: %s", logged)
	}
	if !strings.Contains(logged, `"status":200`) {
		t.Fatalf("access log missing status: %s", logged)
	}
}

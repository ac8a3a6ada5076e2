package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterConfig wires the handlers into one engine
type RouterConfig struct {
	RSVP        *RSVPHandler
	Guests      *GuestHandler
	Events      *EventHandler
	Verifier    TokenVerifier
	CORSOrigins []string
	Logger      zerolog.Logger
}

// NewRouter builds the HTTP API
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(cfg.Logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept-Language"}
	corsConfig.MaxAge = 12 * time.Hour
	if len(corsConfig.AllowOrigins) > 0 {
		router.Use(cors.New(corsConfig))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/rsvp/lookup/:code", cfg.RSVP.Lookup)
		api.POST("/rsvp/submit", cfg.RSVP.Submit)
		api.GET("/events", cfg.Events.Public)
	}

	admin := api.Group("")
	admin.Use(RequireAdmin(cfg.Verifier))
	{
		admin.GET("/events/all", cfg.Events.All)
		admin.POST("/events", cfg.Events.Create)
		admin.GET("/events/:id", cfg.Events.Get)
		admin.PATCH("/events/:id", cfg.Events.Update)
		admin.DELETE("/events/:id", cfg.Events.Delete)

		admin.GET("/guests", cfg.Guests.List)
		admin.GET("/guests/stats", cfg.Guests.Stats)
		admin.POST("/guests", cfg.Guests.Create)
		admin.GET("/guests/:id", cfg.Guests.Get)
		admin.PATCH("/guests/:id", cfg.Guests.Update)
		admin.DELETE("/guests/:id", cfg.Guests.Delete)
		admin.POST("/guests/:id/invite", cfg.Guests.Invite)
	}

	return router
}

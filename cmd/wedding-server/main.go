package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wedding-rsvp/internal/admin"
	"wedding-rsvp/internal/auth"
	"wedding-rsvp/internal/config"
	"wedding-rsvp/internal/handler"
	"wedding-rsvp/internal/rsvp"
	"wedding-rsvp/internal/stats"
	"wedding-rsvp/internal/storage"
	"wedding-rsvp/internal/timeline"
	"wedding-rsvp/internal/whatsapp"
)

func main() {
	fmt.Println("🎉 Wedding RSVP Server")
	fmt.Println("======================")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	// Initialize storage
	store, err := storage.NewStorage(cfg.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("Error initializing storage")
	}
	defer store.Close()

	authenticator, err := auth.NewAuthenticator(auth.Config{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.TokenTTL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Error initializing authenticator")
	}

	rsvps := rsvp.NewService(store, component(logger, "rsvp"))
	adminService := admin.NewService(store, store, component(logger, "admin"))
	aggregator := stats.NewAggregator(store)
	projection := timeline.NewProjection(store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// WhatsApp is optional; without it invitations answer 503
	var inviter handler.Inviter
	if cfg.WhatsAppEnabled {
		whatsappService, err := whatsapp.NewService(ctx, &whatsapp.Config{
			DataDir:            cfg.WhatsAppDataDir,
			DefaultCountryCode: cfg.DefaultCountryCode,
		}, component(logger, "WhatsApp"))
		if err != nil {
			logger.Fatal().Err(err).Msg("Error initializing WhatsApp service")
		}

		bot := handler.NewRSVPBot(whatsappService, store, rsvps, handler.WeddingDetails{
			WeddingDate:     cfg.WeddingDate,
			WeddingLocation: cfg.WeddingLocation,
			BrideName:       cfg.BrideName,
			GroomName:       cfg.GroomName,
			RSVPURL:         cfg.RSVPURL,
		}, component(logger, "bot"))
		whatsappService.SetMessageHandler(bot.HandleMessage)

		logger.Info().Msg("Connecting to WhatsApp...")
		if err := whatsappService.Connect(ctx); err != nil {
			logger.Fatal().Err(err).Msg("Error connecting to WhatsApp")
		}
		defer whatsappService.Disconnect()
		inviter = bot
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	httpLog := component(logger, "http")
	router := handler.NewRouter(handler.RouterConfig{
		RSVP:        handler.NewRSVPHandler(rsvps, httpLog),
		Guests:      handler.NewGuestHandler(adminService, aggregator, inviter, httpLog),
		Events:      handler.NewEventHandler(projection, adminService, httpLog),
		Verifier:    authenticator,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      httpLog,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("HTTP server stopped")
			stop()
		}
	}()

	// Start interactive console
	if cfg.Console {
		go startConsole(ctx, stop, &console{
			guests:  adminService,
			stats:   aggregator,
			inviter: inviter,
		})
	}

	<-ctx.Done()

	logger.Info().Msg("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	fmt.Println("Goodbye! 👋")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout)
	if cfg.LogPretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	}
	return logger.Level(level).With().Timestamp().Logger()
}

func component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

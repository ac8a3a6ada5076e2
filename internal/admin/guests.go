// Package admin implements guest and timeline management for the hosts.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"wedding-rsvp/internal/models"
	"wedding-rsvp/internal/storage"
)

// GuestStore persists guest records
type GuestStore interface {
	CreateGuest(ctx context.Context, guest *models.Guest) error
	GetGuest(ctx context.Context, id string) (*models.Guest, error)
	ListGuests(ctx context.Context, filter models.GuestFilter) ([]models.Guest, error)
	UpdateGuest(ctx context.Context, id string, apply func(*models.Guest) error) (*models.Guest, error)
	DeleteGuest(ctx context.Context, id string) error
}

// EventStore persists timeline entries
type EventStore interface {
	CreateEvent(ctx context.Context, event *models.WeddingEvent) error
	GetEvent(ctx context.Context, id string) (*models.WeddingEvent, error)
	UpdateEvent(ctx context.Context, event *models.WeddingEvent) error
	DeleteEvent(ctx context.Context, id string) error
}

// Service applies admin edits after validating them
type Service struct {
	guests GuestStore
	events EventStore
	log    zerolog.Logger
}

// NewService creates a new admin service
func NewService(guests GuestStore, events EventStore, logger zerolog.Logger) *Service {
	return &Service{
		guests: guests,
		events: events,
		log:    logger,
	}
}

// GuestInput is the payload for creating a guest
type GuestInput struct {
	FirstName           string          `json:"first_name"`
	LastName            string          `json:"last_name"`
	Email               *string         `json:"email"`
	Phone               *string         `json:"phone"`
	GroupName           *string         `json:"group_name"`
	PlusOneAllowed      bool            `json:"plus_one_allowed"`
	DietaryRestrictions *string         `json:"dietary_restrictions"`
	Language            models.Language `json:"language"`
	TableNumber         *int            `json:"table_number"`
	Notes               *string         `json:"notes"`
}

// GuestPatch carries the fields an admin wants to change. Nil means
// unchanged; an empty string clears an optional text field.
type GuestPatch struct {
	FirstName           *string            `json:"first_name"`
	LastName            *string            `json:"last_name"`
	Email               *string            `json:"email"`
	Phone               *string            `json:"phone"`
	GroupName           *string            `json:"group_name"`
	RSVPStatus          *models.RSVPStatus `json:"rsvp_status"`
	PlusOneAllowed      *bool              `json:"plus_one_allowed"`
	PlusOneName         *string            `json:"plus_one_name"`
	PlusOneAttending    *bool              `json:"plus_one_attending"`
	DietaryRestrictions *string            `json:"dietary_restrictions"`
	Message             *string            `json:"message"`
	Language            *models.Language   `json:"language"`
	TableNumber         *int               `json:"table_number"`
	Notes               *string            `json:"notes"`
}

// CreateGuest validates input and stores a new pending guest
func (s *Service) CreateGuest(ctx context.Context, in GuestInput) (*models.Guest, error) {
	guest := &models.Guest{
		FirstName:           strings.TrimSpace(in.FirstName),
		LastName:            strings.TrimSpace(in.LastName),
		Email:               optional(in.Email),
		Phone:               optional(in.Phone),
		GroupName:           optional(in.GroupName),
		RSVPStatus:          models.RSVPPending,
		PlusOneAllowed:      in.PlusOneAllowed,
		DietaryRestrictions: optional(in.DietaryRestrictions),
		Language:            in.Language,
		TableNumber:         in.TableNumber,
		Notes:               optional(in.Notes),
	}
	if guest.Language == "" {
		guest.Language = models.LanguageFR
	}
	if err := validateGuest(guest); err != nil {
		return nil, err
	}

	if err := s.guests.CreateGuest(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}
	s.log.Info().Str("guest_id", guest.ID).Msg("Guest created")
	return guest, nil
}

// GetGuest returns the full admin record of a guest
func (s *Service) GetGuest(ctx context.Context, id string) (*models.Guest, error) {
	guest, err := s.guests.GetGuest(ctx, id)
	if err != nil {
		return nil, notFound(err, "guest")
	}
	return guest, nil
}

// ListGuests returns guests matching filter
func (s *Service) ListGuests(ctx context.Context, filter models.GuestFilter) ([]models.Guest, error) {
	if filter.RSVPStatus != "" && !filter.RSVPStatus.Valid() {
		return nil, invalid("rsvp_status", "unknown status")
	}
	return s.guests.ListGuests(ctx, filter)
}

// UpdateGuest applies patch to the current record of a guest. The patch is
// applied inside the store's transaction so a concurrent RSVP submission is
// never overwritten with stale answers.
func (s *Service) UpdateGuest(ctx context.Context, id string, patch GuestPatch) (*models.Guest, error) {
	guest, err := s.guests.UpdateGuest(ctx, id, func(g *models.Guest) error {
		patch.apply(g)
		return validateGuest(g)
	})
	if err != nil {
		return nil, notFound(err, "guest")
	}
	s.log.Info().Str("guest_id", guest.ID).Str("status", string(guest.RSVPStatus)).Msg("Guest updated")
	return guest, nil
}

func (p GuestPatch) apply(g *models.Guest) {
	if p.FirstName != nil {
		g.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		g.LastName = strings.TrimSpace(*p.LastName)
	}
	setOptional(&g.Email, p.Email)
	setOptional(&g.Phone, p.Phone)
	setOptional(&g.GroupName, p.GroupName)
	if p.RSVPStatus != nil {
		g.RSVPStatus = *p.RSVPStatus
	}
	if p.PlusOneAllowed != nil {
		g.PlusOneAllowed = *p.PlusOneAllowed
	}
	setOptional(&g.PlusOneName, p.PlusOneName)
	if p.PlusOneAttending != nil {
		g.PlusOneAttending = *p.PlusOneAttending
	}
	setOptional(&g.DietaryRestrictions, p.DietaryRestrictions)
	setOptional(&g.Message, p.Message)
	if p.Language != nil {
		g.Language = *p.Language
	}
	if p.TableNumber != nil {
		g.TableNumber = p.TableNumber
	}
	setOptional(&g.Notes, p.Notes)

	// A revoked permission takes the companion with it
	if !g.PlusOneAllowed {
		g.PlusOneAttending = false
		g.PlusOneName = nil
	}
}

// DeleteGuest removes a guest permanently
func (s *Service) DeleteGuest(ctx context.Context, id string) error {
	if err := s.guests.DeleteGuest(ctx, id); err != nil {
		return notFound(err, "guest")
	}
	s.log.Info().Str("guest_id", id).Msg("Guest deleted")
	return nil
}

func validateGuest(g *models.Guest) error {
	if g.FirstName == "" {
		return invalid("first_name", "is required")
	}
	if g.LastName == "" {
		return invalid("last_name", "is required")
	}
	if !g.Language.Valid() {
		return invalid("language", "must be one of fr, en, ar")
	}
	if !g.RSVPStatus.Valid() {
		return invalid("rsvp_status", "must be one of pending, attending, not_attending")
	}
	if g.TableNumber != nil && *g.TableNumber < 0 {
		return invalid("table_number", "must not be negative")
	}
	return nil
}

func notFound(err error, what string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return err
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func setOptional(dst **string, v *string) {
	if v != nil {
		*dst = optional(v)
	}
}

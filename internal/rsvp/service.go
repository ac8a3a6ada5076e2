// Package rsvp implements the code-based lookup and submission protocol
// guests use to answer their invitation.
package rsvp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"wedding-rsvp/internal/models"
	"wedding-rsvp/internal/storage"
)

var (
	// ErrNotFound is returned for any code that does not resolve to a guest,
	// malformed or not.
	ErrNotFound = errors.New("RSVP code not found")
	// ErrInvalidStatus is returned when a visitor submits a status other than
	// attending or not_attending.
	ErrInvalidStatus = errors.New("rsvp_status must be attending or not_attending")
)

// GuestStore is the persistence the protocol needs
type GuestStore interface {
	GetGuestByCode(ctx context.Context, code string) (*models.Guest, error)
	UpdateRSVP(ctx context.Context, code string, apply func(*models.Guest) error) (*models.Guest, error)
}

// Service answers lookups and applies submissions
type Service struct {
	store GuestStore
	locks *keyedMutex
	log   zerolog.Logger
}

// NewService creates a new RSVP service
func NewService(store GuestStore, logger zerolog.Logger) *Service {
	return &Service{
		store: store,
		locks: newKeyedMutex(),
		log:   logger,
	}
}

// Lookup returns the RSVP view of the guest holding code
func (s *Service) Lookup(ctx context.Context, rawCode string) (models.RSVPView, error) {
	code, ok := storage.NormalizeCode(rawCode)
	if !ok {
		return models.RSVPView{}, ErrNotFound
	}

	guest, err := s.store.GetGuestByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.RSVPView{}, ErrNotFound
		}
		return models.RSVPView{}, fmt.Errorf("failed to look up rsvp: %w", err)
	}
	return guest.View(), nil
}

// Submit replaces the RSVP fields of the guest holding code with decision.
// Submissions for the same code are serialised; the stored record always
// reflects exactly one complete decision.
func (s *Service) Submit(ctx context.Context, rawCode string, decision models.Decision) (models.RSVPView, error) {
	code, ok := storage.NormalizeCode(rawCode)
	if !ok {
		return models.RSVPView{}, ErrNotFound
	}

	unlock := s.locks.Lock(code)
	defer unlock()

	guest, err := s.store.UpdateRSVP(ctx, code, func(g *models.Guest) error {
		return ApplyDecision(g, decision)
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return models.RSVPView{}, ErrNotFound
		case errors.Is(err, ErrInvalidStatus):
			return models.RSVPView{}, ErrInvalidStatus
		}
		return models.RSVPView{}, fmt.Errorf("failed to submit rsvp: %w", err)
	}

	s.log.Info().
		Str("guest_id", guest.ID).
		Str("status", string(guest.RSVPStatus)).
		Bool("plus_one", guest.PlusOneAttending).
		Msg("RSVP submitted")
	return guest.View(), nil
}

// ApplyDecision overwrites the visitor-editable fields of g. The host's
// plus-one permission always wins over what the visitor sent, and a
// not_attending answer drops plus-one and dietary details.
func ApplyDecision(g *models.Guest, d models.Decision) error {
	if !d.RSVPStatus.VisitorAllowed() {
		return ErrInvalidStatus
	}

	g.RSVPStatus = d.RSVPStatus
	g.Message = clean(d.Message)
	g.DietaryRestrictions = clean(d.DietaryRestrictions)
	g.PlusOneAttending = g.PlusOneAllowed && d.PlusOneAttending
	g.PlusOneName = nil
	if g.PlusOneAttending {
		g.PlusOneName = clean(d.PlusOneName)
	}

	if d.RSVPStatus == models.RSVPNotAttending {
		g.PlusOneAttending = false
		g.PlusOneName = nil
		g.DietaryRestrictions = nil
	}
	return nil
}

func clean(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

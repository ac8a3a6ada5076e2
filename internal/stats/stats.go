// Package stats derives attendance counts from the guest list.
package stats

import (
	"context"
	"fmt"

	"wedding-rsvp/internal/models"
)

// GuestLister is the read side of the guest store
type GuestLister interface {
	ListGuests(ctx context.Context, filter models.GuestFilter) ([]models.Guest, error)
}

// Aggregator computes statistics from a fresh read of the store on every call
type Aggregator struct {
	guests GuestLister
}

// NewAggregator creates a new stats aggregator
func NewAggregator(guests GuestLister) *Aggregator {
	return &Aggregator{guests: guests}
}

// ComputeStats scans the whole guest list
func (a *Aggregator) ComputeStats(ctx context.Context) (models.Stats, error) {
	guests, err := a.guests.ListGuests(ctx, models.GuestFilter{})
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to compute stats: %w", err)
	}
	return Compute(guests), nil
}

// Compute counts guests by status. A companion is counted only for an
// attending guest whose host allowed a plus-one.
func Compute(guests []models.Guest) models.Stats {
	var s models.Stats
	for _, g := range guests {
		s.Total++
		switch g.RSVPStatus {
		case models.RSVPAttending:
			s.Attending++
			if g.PlusOneAllowed && g.PlusOneAttending {
				s.PlusOnes++
			}
		case models.RSVPNotAttending:
			s.NotAttending++
		default:
			s.Pending++
		}
	}
	s.TotalAttending = s.Attending + s.PlusOnes
	return s
}

// Package timeline provides the read-only projections of the event schedule.
package timeline

import (
	"context"
	"fmt"
	"sort"

	"wedding-rsvp/internal/content"
	"wedding-rsvp/internal/models"
)

// EventLister is the read side of the event store
type EventLister interface {
	ListEvents(ctx context.Context, visibleOnly bool) ([]models.WeddingEvent, error)
}

// Projection builds public and admin views of the schedule
type Projection struct {
	events EventLister
}

// NewProjection creates a new timeline projection
func NewProjection(events EventLister) *Projection {
	return &Projection{events: events}
}

// PublicTimeline returns visible entries in display order
func (p *Projection) PublicTimeline(ctx context.Context) ([]models.WeddingEvent, error) {
	events, err := p.events.ListEvents(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load public timeline: %w", err)
	}
	visible := events[:0]
	for _, e := range events {
		if e.IsVisible {
			visible = append(visible, e)
		}
	}
	Sort(visible)
	return visible, nil
}

// AdminTimeline returns every entry, hidden ones included, in display order
func (p *Projection) AdminTimeline(ctx context.Context) ([]models.WeddingEvent, error) {
	events, err := p.events.ListEvents(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin timeline: %w", err)
	}
	Sort(events)
	return events, nil
}

// LocalizedTimeline returns the public timeline with text resolved for lang
func (p *Projection) LocalizedTimeline(ctx context.Context, lang models.Language) ([]content.LocalizedEvent, error) {
	events, err := p.PublicTimeline(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]content.LocalizedEvent, 0, len(events))
	for _, e := range events {
		out = append(out, content.Localize(e, lang))
	}
	return out, nil
}

// Sort orders events by sort order, ties broken by start time.
func Sort(events []models.WeddingEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Before(&events[j])
	})
}

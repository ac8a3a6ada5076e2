package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wedding-rsvp/internal/models"
)

// EventInput is the payload for creating a timeline entry
type EventInput struct {
	TitleFR       string     `json:"title_fr"`
	TitleEN       *string    `json:"title_en"`
	TitleAR       *string    `json:"title_ar"`
	DescriptionFR *string    `json:"description_fr"`
	DescriptionEN *string    `json:"description_en"`
	DescriptionAR *string    `json:"description_ar"`
	Location      *string    `json:"location"`
	Icon          *string    `json:"icon"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	SortOrder     int        `json:"sort_order"`
	IsVisible     *bool      `json:"is_visible"`
}

// EventPatch carries the timeline fields an admin wants to change
type EventPatch struct {
	TitleFR       *string    `json:"title_fr"`
	TitleEN       *string    `json:"title_en"`
	TitleAR       *string    `json:"title_ar"`
	DescriptionFR *string    `json:"description_fr"`
	DescriptionEN *string    `json:"description_en"`
	DescriptionAR *string    `json:"description_ar"`
	Location      *string    `json:"location"`
	Icon          *string    `json:"icon"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	ClearEndTime  bool       `json:"clear_end_time"`
	SortOrder     *int       `json:"sort_order"`
	IsVisible     *bool      `json:"is_visible"`
}

// CreateEvent validates and stores a new timeline entry
func (s *Service) CreateEvent(ctx context.Context, in EventInput) (*models.WeddingEvent, error) {
	event := &models.WeddingEvent{
		TitleFR:       strings.TrimSpace(in.TitleFR),
		TitleEN:       optional(in.TitleEN),
		TitleAR:       optional(in.TitleAR),
		DescriptionFR: optional(in.DescriptionFR),
		DescriptionEN: optional(in.DescriptionEN),
		DescriptionAR: optional(in.DescriptionAR),
		Location:      optional(in.Location),
		Icon:          optional(in.Icon),
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		SortOrder:     in.SortOrder,
		IsVisible:     true,
	}
	if in.IsVisible != nil {
		event.IsVisible = *in.IsVisible
	}
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	if err := s.events.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	s.log.Info().Str("event_id", event.ID).Msg("Event created")
	return event, nil
}

// GetEvent returns one timeline entry
func (s *Service) GetEvent(ctx context.Context, id string) (*models.WeddingEvent, error) {
	event, err := s.events.GetEvent(ctx, id)
	if err != nil {
		return nil, notFound(err, "event")
	}
	return event, nil
}

// UpdateEvent applies patch to an existing entry. The time range is checked
// on the merged record.
func (s *Service) UpdateEvent(ctx context.Context, id string, patch EventPatch) (*models.WeddingEvent, error) {
	event, err := s.events.GetEvent(ctx, id)
	if err != nil {
		return nil, notFound(err, "event")
	}

	if patch.TitleFR != nil {
		event.TitleFR = strings.TrimSpace(*patch.TitleFR)
	}
	setOptional(&event.TitleEN, patch.TitleEN)
	setOptional(&event.TitleAR, patch.TitleAR)
	setOptional(&event.DescriptionFR, patch.DescriptionFR)
	setOptional(&event.DescriptionEN, patch.DescriptionEN)
	setOptional(&event.DescriptionAR, patch.DescriptionAR)
	setOptional(&event.Location, patch.Location)
	setOptional(&event.Icon, patch.Icon)
	if patch.StartTime != nil {
		event.StartTime = *patch.StartTime
	}
	if patch.ClearEndTime {
		event.EndTime = nil
	} else if patch.EndTime != nil {
		event.EndTime = patch.EndTime
	}
	if patch.SortOrder != nil {
		event.SortOrder = *patch.SortOrder
	}
	if patch.IsVisible != nil {
		event.IsVisible = *patch.IsVisible
	}

	if err := validateEvent(event); err != nil {
		return nil, err
	}
	if err := s.events.UpdateEvent(ctx, event); err != nil {
		return nil, notFound(err, "event")
	}
	s.log.Info().Str("event_id", event.ID).Bool("visible", event.IsVisible).Msg("Event updated")
	return event, nil
}

// DeleteEvent removes a timeline entry
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	if err := s.events.DeleteEvent(ctx, id); err != nil {
		return notFound(err, "event")
	}
	s.log.Info().Str("event_id", id).Msg("Event deleted")
	return nil
}

func validateEvent(e *models.WeddingEvent) error {
	if e.TitleFR == "" {
		return invalid("title_fr", "is required")
	}
	if e.StartTime.IsZero() {
		return invalid("start_time", "is required")
	}
	if e.EndTime != nil && e.EndTime.Before(e.StartTime) {
		return invalid("end_time", "must not be before start_time")
	}
	return nil
}

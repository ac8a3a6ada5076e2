package models

import "time"

// WeddingEvent is one entry of the occasion-day timeline
type WeddingEvent struct {
	ID            string  `json:"id"`
	TitleFR       string  `json:"title_fr"`
	TitleEN       *string `json:"title_en"`
	TitleAR       *string `json:"title_ar"`
	DescriptionFR *string `json:"description_fr"`
	DescriptionEN *string `json:"description_en"`
	DescriptionAR *string `json:"description_ar"`
	Location      *string `json:"location"`
	Icon          *string `json:"icon"`

	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	SortOrder int        `json:"sort_order"`
	IsVisible bool       `json:"is_visible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Before reports whether e is displayed ahead of o on a timeline.
func (e *WeddingEvent) Before(o *WeddingEvent) bool {
	if e.SortOrder != o.SortOrder {
		return e.SortOrder < o.SortOrder
	}
	return e.StartTime.Before(o.StartTime)
}

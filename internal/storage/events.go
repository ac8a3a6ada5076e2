package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wedding-rsvp/internal/models"
)

const eventColumns = `id, title_fr, title_en, title_ar,
	description_fr, description_en, description_ar, location, icon,
	start_time, end_time, sort_order, is_visible, created_at, updated_at`

// CreateEvent inserts a timeline entry, assigning its id and timestamps
func (s *Storage) CreateEvent(ctx context.Context, event *models.WeddingEvent) error {
	now := s.now().UTC()
	event.ID = uuid.NewString()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (`+eventColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.TitleFR, event.TitleEN, event.TitleAR,
		event.DescriptionFR, event.DescriptionEN, event.DescriptionAR, event.Location, event.Icon,
		toMillis(event.StartTime), nullMillis(event.EndTime), event.SortOrder, event.IsVisible,
		toMillis(event.CreatedAt), toMillis(event.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetEvent retrieves a timeline entry by id
func (s *Storage) GetEvent(ctx context.Context, id string) (*models.WeddingEvent, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// ListEvents returns timeline entries ordered by sort order then start time.
// Hidden entries are skipped when visibleOnly is set.
func (s *Storage) ListEvents(ctx context.Context, visibleOnly bool) ([]models.WeddingEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM events`
	if visibleOnly {
		query += ` WHERE is_visible = 1`
	}
	query += ` ORDER BY sort_order, start_time`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]models.WeddingEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// UpdateEvent overwrites every field of an existing timeline entry
func (s *Storage) UpdateEvent(ctx context.Context, event *models.WeddingEvent) error {
	event.UpdatedAt = s.now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE events SET
			title_fr = ?, title_en = ?, title_ar = ?,
			description_fr = ?, description_en = ?, description_ar = ?,
			location = ?, icon = ?, start_time = ?, end_time = ?,
			sort_order = ?, is_visible = ?, updated_at = ?
		 WHERE id = ?`,
		event.TitleFR, event.TitleEN, event.TitleAR,
		event.DescriptionFR, event.DescriptionEN, event.DescriptionAR,
		event.Location, event.Icon, toMillis(event.StartTime), nullMillis(event.EndTime),
		event.SortOrder, event.IsVisible, toMillis(event.UpdatedAt),
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return expectOneRow(res)
}

// DeleteEvent removes a timeline entry
func (s *Storage) DeleteEvent(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return expectOneRow(res)
}

func scanEvent(row rowScanner) (*models.WeddingEvent, error) {
	var (
		e                    models.WeddingEvent
		startTime            int64
		endTime              sql.NullInt64
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&e.ID, &e.TitleFR, &e.TitleEN, &e.TitleAR,
		&e.DescriptionFR, &e.DescriptionEN, &e.DescriptionAR, &e.Location, &e.Icon,
		&startTime, &endTime, &e.SortOrder, &e.IsVisible, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}
	e.StartTime = fromMillis(startTime)
	e.EndTime = timePtr(endTime)
	e.CreatedAt = fromMillis(createdAt)
	e.UpdatedAt = fromMillis(updatedAt)
	return &e, nil
}

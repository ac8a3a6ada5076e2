package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"wedding-rsvp/internal/models"
)

const guestColumns = `id, first_name, last_name, email, phone, group_name,
	rsvp_code, rsvp_status, plus_one_allowed, plus_one_name, plus_one_attending,
	dietary_restrictions, message, language, table_number, notes,
	responded_at, created_at, updated_at`

// CreateGuest inserts a new guest, assigning its id, RSVP code and timestamps
func (s *Storage) CreateGuest(ctx context.Context, guest *models.Guest) error {
	now := s.now().UTC()
	guest.ID = uuid.NewString()
	guest.CreatedAt = now
	guest.UpdatedAt = now
	if guest.RSVPStatus == "" {
		guest.RSVPStatus = models.RSVPPending
	}
	if guest.Language == "" {
		guest.Language = models.LanguageFR
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return err
		}
		guest.RSVPCode = code

		_, err = s.db.ExecContext(ctx,
			`INSERT INTO guests (`+guestColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			guest.ID, guest.FirstName, guest.LastName, guest.Email, guest.Phone, guest.GroupName,
			guest.RSVPCode, string(guest.RSVPStatus), guest.PlusOneAllowed, guest.PlusOneName, guest.PlusOneAttending,
			guest.DietaryRestrictions, guest.Message, string(guest.Language), guest.TableNumber, guest.Notes,
			nullMillis(guest.RespondedAt), toMillis(guest.CreatedAt), toMillis(guest.UpdatedAt),
		)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return fmt.Errorf("failed to insert guest: %w", err)
		}
	}
	guest.RSVPCode = ""
	return ErrCodeConflict
}

// GetGuest retrieves a guest by id
func (s *Storage) GetGuest(ctx context.Context, id string) (*models.Guest, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+guestColumns+` FROM guests WHERE id = ?`, id)
	return scanGuestRow(row)
}

// GetGuestByCode retrieves a guest by its normalized RSVP code
func (s *Storage) GetGuestByCode(ctx context.Context, code string) (*models.Guest, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+guestColumns+` FROM guests WHERE rsvp_code = ?`, code)
	return scanGuestRow(row)
}

// ListGuests returns guests matching filter, ordered by last then first name
func (s *Storage) ListGuests(ctx context.Context, filter models.GuestFilter) ([]models.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE 1=1`
	var args []any

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		query += ` AND (lower(first_name) LIKE ? ESCAPE '\'
			OR lower(last_name) LIKE ? ESCAPE '\'
			OR lower(coalesce(email, '')) LIKE ? ESCAPE '\')`
		args = append(args, pattern, pattern, pattern)
	}
	if filter.RSVPStatus != "" {
		query += ` AND rsvp_status = ?`
		args = append(args, string(filter.RSVPStatus))
	}
	if filter.GroupName != "" {
		query += ` AND group_name = ?`
		args = append(args, filter.GroupName)
	}
	query += ` ORDER BY last_name, first_name, created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	defer rows.Close()

	guests := make([]models.Guest, 0)
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

// UpdateGuest loads the guest with id, lets apply mutate it and writes every
// admin-editable field back inside a single transaction. The id, RSVP code
// and creation time are never changed.
func (s *Storage) UpdateGuest(ctx context.Context, id string, apply func(*models.Guest) error) (*models.Guest, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	guest, err := scanGuestRow(tx.QueryRowContext(ctx, `SELECT `+guestColumns+` FROM guests WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	code, createdAt := guest.RSVPCode, guest.CreatedAt
	if err := apply(guest); err != nil {
		return nil, err
	}
	guest.ID, guest.RSVPCode, guest.CreatedAt = id, code, createdAt
	guest.UpdatedAt = s.now().UTC()

	if _, err := tx.ExecContext(ctx,
		`UPDATE guests SET
			first_name = ?, last_name = ?, email = ?, phone = ?, group_name = ?,
			rsvp_status = ?, plus_one_allowed = ?, plus_one_name = ?, plus_one_attending = ?,
			dietary_restrictions = ?, message = ?, language = ?, table_number = ?, notes = ?,
			responded_at = ?, updated_at = ?
		 WHERE id = ?`,
		guest.FirstName, guest.LastName, guest.Email, guest.Phone, guest.GroupName,
		string(guest.RSVPStatus), guest.PlusOneAllowed, guest.PlusOneName, guest.PlusOneAttending,
		guest.DietaryRestrictions, guest.Message, string(guest.Language), guest.TableNumber, guest.Notes,
		nullMillis(guest.RespondedAt), toMillis(guest.UpdatedAt),
		id,
	); err != nil {
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit guest: %w", err)
	}
	return guest, nil
}

// UpdateRSVP loads the guest holding code, lets apply mutate it and writes
// the RSVP fields back inside a single transaction.
func (s *Storage) UpdateRSVP(ctx context.Context, code string, apply func(*models.Guest) error) (*models.Guest, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	guest, err := scanGuestRow(tx.QueryRowContext(ctx, `SELECT `+guestColumns+` FROM guests WHERE rsvp_code = ?`, code))
	if err != nil {
		return nil, err
	}
	if err := apply(guest); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	guest.RespondedAt = &now
	guest.UpdatedAt = now
	if _, err := tx.ExecContext(ctx,
		`UPDATE guests SET
			rsvp_status = ?, plus_one_name = ?, plus_one_attending = ?,
			dietary_restrictions = ?, message = ?, responded_at = ?, updated_at = ?
		 WHERE id = ?`,
		string(guest.RSVPStatus), guest.PlusOneName, guest.PlusOneAttending,
		guest.DietaryRestrictions, guest.Message, toMillis(now), toMillis(now),
		guest.ID,
	); err != nil {
		return nil, fmt.Errorf("failed to update rsvp: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rsvp: %w", err)
	}
	return guest, nil
}

// DeleteGuest removes a guest permanently
func (s *Storage) DeleteGuest(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM guests WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}
	return expectOneRow(res)
}

func scanGuestRow(row *sql.Row) (*models.Guest, error) {
	g, err := scanGuest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return g, err
}

func scanGuest(row rowScanner) (*models.Guest, error) {
	var (
		g                    models.Guest
		status, language     string
		respondedAt          sql.NullInt64
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone, &g.GroupName,
		&g.RSVPCode, &status, &g.PlusOneAllowed, &g.PlusOneName, &g.PlusOneAttending,
		&g.DietaryRestrictions, &g.Message, &language, &g.TableNumber, &g.Notes,
		&respondedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan guest: %w", err)
	}
	g.RSVPStatus = models.RSVPStatus(status)
	g.Language = models.Language(language)
	g.RespondedAt = timePtr(respondedAt)
	g.CreatedAt = fromMillis(createdAt)
	g.UpdatedAt = fromMillis(updatedAt)
	return &g, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

package models

import "time"

// Guest represents one invited person or household
type Guest struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	GroupName *string `json:"group_name"`

	RSVPCode   string     `json:"rsvp_code"`
	RSVPStatus RSVPStatus `json:"rsvp_status"`

	PlusOneAllowed   bool    `json:"plus_one_allowed"`
	PlusOneName      *string `json:"plus_one_name"`
	PlusOneAttending bool    `json:"plus_one_attending"`

	DietaryRestrictions *string  `json:"dietary_restrictions"`
	Message             *string  `json:"message"`
	Language            Language `json:"language"`

	TableNumber *int    `json:"table_number"`
	Notes       *string `json:"notes"`

	RespondedAt *time.Time `json:"responded_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RSVPStatus represents the attendance confirmation status
type RSVPStatus string

const (
	RSVPPending      RSVPStatus = "pending"
	RSVPAttending    RSVPStatus = "attending"
	RSVPNotAttending RSVPStatus = "not_attending"
)

// Valid reports whether s is one of the three known statuses.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPPending, RSVPAttending, RSVPNotAttending:
		return true
	}
	return false
}

// VisitorAllowed reports whether a guest may submit s through their code.
func (s RSVPStatus) VisitorAllowed() bool {
	return s == RSVPAttending || s == RSVPNotAttending
}

// Language is a guest or content locale
type Language string

const (
	LanguageFR Language = "fr"
	LanguageEN Language = "en"
	LanguageAR Language = "ar"
)

// Languages lists the supported locales, canonical default first.
var Languages = []Language{LanguageFR, LanguageEN, LanguageAR}

// Valid reports whether l is a supported locale.
func (l Language) Valid() bool {
	switch l {
	case LanguageFR, LanguageEN, LanguageAR:
		return true
	}
	return false
}

// Decision is what a visitor sends when answering with their code
type Decision struct {
	RSVPStatus          RSVPStatus `json:"rsvp_status"`
	PlusOneName         *string    `json:"plus_one_name"`
	PlusOneAttending    bool       `json:"plus_one_attending"`
	DietaryRestrictions *string    `json:"dietary_restrictions"`
	Message             *string    `json:"message"`
}

// RSVPView is the part of a guest record visible to the code holder
type RSVPView struct {
	ID                  string     `json:"id"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	RSVPStatus          RSVPStatus `json:"rsvp_status"`
	PlusOneAllowed      bool       `json:"plus_one_allowed"`
	PlusOneName         *string    `json:"plus_one_name"`
	PlusOneAttending    bool       `json:"plus_one_attending"`
	DietaryRestrictions *string    `json:"dietary_restrictions"`
	Message             *string    `json:"message"`
	Language            Language   `json:"language"`
}

// View projects the guest onto the fields a visitor may see.
func (g *Guest) View() RSVPView {
	return RSVPView{
		ID:                  g.ID,
		FirstName:           g.FirstName,
		LastName:            g.LastName,
		RSVPStatus:          g.RSVPStatus,
		PlusOneAllowed:      g.PlusOneAllowed,
		PlusOneName:         g.PlusOneName,
		PlusOneAttending:    g.PlusOneAttending,
		DietaryRestrictions: g.DietaryRestrictions,
		Message:             g.Message,
		Language:            g.Language,
	}
}

// GuestFilter narrows an admin guest listing
type GuestFilter struct {
	Search     string
	RSVPStatus RSVPStatus
	GroupName  string
}

// Stats holds attendance counts across the guest list
type Stats struct {
	Total          int `json:"total"`
	Attending      int `json:"attending"`
	NotAttending   int `json:"not_attending"`
	Pending        int `json:"pending"`
	PlusOnes       int `json:"plus_ones"`
	TotalAttending int `json:"total_attending"`
}

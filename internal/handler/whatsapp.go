package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"go.mau.fi/whatsmeow/types/events"

	"wedding-rsvp/internal/admin"
	"wedding-rsvp/internal/models"
	"wedding-rsvp/internal/rsvp"
	"wedding-rsvp/internal/whatsapp"
)

// Messenger delivers text messages to phone numbers
type Messenger interface {
	SendMessage(ctx context.Context, phoneNumber, message string) error
	Normalize(phoneNumber string) string
}

// GuestLister is the read side of the guest list
type GuestLister interface {
	ListGuests(ctx context.Context, filter models.GuestFilter) ([]models.Guest, error)
}

// WeddingDetails fills the invitation and confirmation texts
type WeddingDetails struct {
	WeddingDate     string
	WeddingLocation string
	BrideName       string
	GroomName       string
	RSVPURL         string
}

// RSVPBot sends invitations and turns WhatsApp replies into RSVP submissions
type RSVPBot struct {
	messenger Messenger
	guests    GuestLister
	rsvps     RSVPService
	details   WeddingDetails
	log       zerolog.Logger
}

// NewRSVPBot creates a new WhatsApp RSVP bot
func NewRSVPBot(messenger Messenger, guests GuestLister, rsvps RSVPService, details WeddingDetails, logger zerolog.Logger) *RSVPBot {
	return &RSVPBot{
		messenger: messenger,
		guests:    guests,
		rsvps:     rsvps,
		details:   details,
		log:       logger,
	}
}

// HandleMessage processes incoming WhatsApp messages for RSVP responses
func (b *RSVPBot) HandleMessage(ctx context.Context, msg *events.Message) error {
	text := whatsapp.MessageText(msg)
	if text == "" {
		return nil
	}
	return b.HandleReply(ctx, whatsapp.SenderPhone(msg), text)
}

// HandleReply submits the answer carried by text for the guest owning phone.
// Unknown senders and unclear replies are ignored.
func (b *RSVPBot) HandleReply(ctx context.Context, phone, text string) error {
	status, ok := classifyReply(text)
	if !ok {
		return nil
	}

	// Only guests on the list with a matching phone can answer
	guest, err := b.findByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if guest == nil {
		b.log.Debug().Str("phone", phone).Msg("Reply from unknown number ignored")
		return nil
	}

	// Keep the answers given on the website; only the status changes
	decision := models.Decision{
		RSVPStatus:          status,
		PlusOneName:         guest.PlusOneName,
		PlusOneAttending:    guest.PlusOneAttending,
		DietaryRestrictions: guest.DietaryRestrictions,
		Message:             guest.Message,
	}
	if _, err := b.rsvps.Submit(ctx, guest.RSVPCode, decision); err != nil {
		if errors.Is(err, rsvp.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to update RSVP: %w", err)
	}
	b.log.Info().Str("guest_id", guest.ID).Str("status", string(status)).Msg("RSVP received over WhatsApp")

	if err := b.messenger.SendMessage(ctx, phone, b.confirmation(guest.Language, status)); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}
	return nil
}

// SendInvitation sends a wedding invitation to a guest
func (b *RSVPBot) SendInvitation(ctx context.Context, guest *models.Guest) error {
	if guest.Phone == nil || b.messenger.Normalize(*guest.Phone) == "" {
		return &admin.ValidationError{Field: "phone", Message: "is required to send an invitation"}
	}

	if err := b.messenger.SendMessage(ctx, *guest.Phone, b.invitation(guest)); err != nil {
		return fmt.Errorf("failed to send invitation: %w", err)
	}
	b.log.Info().Str("guest_id", guest.ID).Msg("Invitation sent")
	return nil
}

func (b *RSVPBot) findByPhone(ctx context.Context, phone string) (*models.Guest, error) {
	want := b.messenger.Normalize(phone)
	if want == "" {
		return nil, nil
	}
	guests, err := b.guests.ListGuests(ctx, models.GuestFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load guests: %w", err)
	}
	for i := range guests {
		if guests[i].Phone != nil && b.messenger.Normalize(*guests[i].Phone) == want {
			return &guests[i], nil
		}
	}
	return nil, nil
}

func (b *RSVPBot) invitation(g *models.Guest) string {
	d := b.details
	var msg string
	switch g.Language {
	case models.LanguageEN:
		msg = fmt.Sprintf(
			"💌 Dear %s,\n\n"+
				"%s & %s are delighted to invite you to their wedding!\n\n"+
				"📅 %s\n📍 %s\n\n"+
				"Your RSVP code: *%s*\n",
			g.FirstName, d.BrideName, d.GroomName, d.WeddingDate, d.WeddingLocation, g.RSVPCode,
		)
		if d.RSVPURL != "" {
			msg += fmt.Sprintf("Answer online: %s\n", rsvpLink(d.RSVPURL, g.RSVPCode))
		}
		msg += "\nOr simply reply *YES* to confirm or *NO* to decline."
	case models.LanguageAR:
		msg = fmt.Sprintf(
			"💌 عزيزي/عزيزتي %s،\n\n"+
				"يسعد %s و%s دعوتكم لحضور حفل زفافهما!\n\n"+
				"📅 %s\n📍 %s\n\n"+
				"رمز الرد الخاص بك: *%s*\n",
			g.FirstName, d.BrideName, d.GroomName, d.WeddingDate, d.WeddingLocation, g.RSVPCode,
		)
		if d.RSVPURL != "" {
			msg += fmt.Sprintf("للرد عبر الإنترنت: %s\n", rsvpLink(d.RSVPURL, g.RSVPCode))
		}
		msg += "\nأو أجب بـ *نعم* للتأكيد أو *لا* للاعتذار."
	default:
		msg = fmt.Sprintf(
			"💌 Cher·e %s,\n\n"+
				"%s & %s ont la joie de vous inviter à leur mariage !\n\n"+
				"📅 %s\n📍 %s\n\n"+
				"Votre code RSVP : *%s*\n",
			g.FirstName, d.BrideName, d.GroomName, d.WeddingDate, d.WeddingLocation, g.RSVPCode,
		)
		if d.RSVPURL != "" {
			msg += fmt.Sprintf("Répondre en ligne : %s\n", rsvpLink(d.RSVPURL, g.RSVPCode))
		}
		msg += "\nOu répondez simplement *OUI* pour confirmer ou *NON* pour décliner."
	}
	return msg
}

func (b *RSVPBot) confirmation(lang models.Language, status models.RSVPStatus) string {
	d := b.details
	attending := status == models.RSVPAttending
	switch lang {
	case models.LanguageEN:
		if attending {
			return fmt.Sprintf("🎉 Wonderful! We've confirmed your attendance for the wedding of %s & %s on %s.\n\nSee you there! 💕",
				d.BrideName, d.GroomName, d.WeddingDate)
		}
		return fmt.Sprintf("Thank you for letting us know. We're sorry you won't be able to join us for the wedding of %s & %s.\n\nWe'll miss you! 💕",
			d.BrideName, d.GroomName)
	case models.LanguageAR:
		if attending {
			return fmt.Sprintf("🎉 رائع! تم تأكيد حضورك لحفل زفاف %s و%s يوم %s.\n\nنراك هناك! 💕",
				d.BrideName, d.GroomName, d.WeddingDate)
		}
		return fmt.Sprintf("شكراً لإعلامنا. يؤسفنا أنك لن تتمكن من حضور حفل زفاف %s و%s.\n\nسنفتقدك! 💕",
			d.BrideName, d.GroomName)
	default:
		if attending {
			return fmt.Sprintf("🎉 Merveilleux ! Votre présence au mariage de %s & %s le %s est confirmée.\n\nÀ très bientôt ! 💕",
				d.BrideName, d.GroomName, d.WeddingDate)
		}
		return fmt.Sprintf("Merci de nous avoir prévenus. Nous regrettons que vous ne puissiez pas être des nôtres au mariage de %s & %s.\n\nVous nous manquerez ! 💕",
			d.BrideName, d.GroomName)
	}
}

func rsvpLink(base, code string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "code=" + code
}

var (
	declinePhrases = []string{"not coming", "can't come", "cannot come", "won't come", "can't make it", "pas venir", "ne pourrai pas", "ne pourrons pas", "❌", "👎"}
	acceptPhrases  = []string{"will come", "will be there", "with pleasure", "avec plaisir", "✅", "👍"}
	acceptWords    = []string{"yes", "yep", "yeah", "accept", "accepting", "attending", "coming", "oui", "présent", "présente", "نعم", "أكيد"}
	declineWords   = []string{"no", "nope", "decline", "declining", "non", "لا"}
)

// classifyReply reads a yes or no answer out of a free-text reply.
// Negative phrases win over the positive words they contain.
func classifyReply(text string) (models.RSVPStatus, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return "", false
	}
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})

	switch {
	case containsAny(text, declinePhrases...):
		return models.RSVPNotAttending, true
	case containsAny(text, acceptPhrases...) || hasWord(words, acceptWords...):
		return models.RSVPAttending, true
	case hasWord(words, declineWords...):
		return models.RSVPNotAttending, true
	}
	return "", false
}

// containsAny checks if the text contains any of the given keywords
func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func hasWord(words []string, keywords ...string) bool {
	for _, w := range words {
		for _, k := range keywords {
			if w == k {
				return true
			}
		}
	}
	return false
}

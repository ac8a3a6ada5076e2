package handler

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"wedding-rsvp/internal/admin"
	"wedding-rsvp/internal/models"
)

func TestClassifyReply(t *testing.T) {
	tests := []struct {
		text   string
		want   models.RSVPStatus
		wantOK bool
	}{
		{text: "YES", want: models.RSVPAttending, wantOK: true},
		{text: "Oui, avec plaisir !", want: models.RSVPAttending, wantOK: true},
		{text: "نعم", want: models.RSVPAttending, wantOK: true},
		{text: "✅", want: models.RSVPAttending, wantOK: true},
		{text: "no", want: models.RSVPNotAttending, wantOK: true},
		{text: "Non désolé", want: models.RSVPNotAttending, wantOK: true},
		{text: "Sorry, not coming this time", want: models.RSVPNotAttending, wantOK: true},
		{text: "yes, no problem", want: models.RSVPAttending, wantOK: true},
		{text: "I know the venue", wantOK: false},
		{text: "السلام عليكم", wantOK: false},
		{text: "   ", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := classifyReply(tt.text)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("classifyReply(%q) = %q, %v, want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestHandleReplySubmitsForKnownGuest(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()
	guest := env.createGuest(t, admin.GuestInput{
		FirstName:      "Leila",
		LastName:       "Benali",
		Phone:          strPtr("06 12 34 56 78"),
		PlusOneAllowed: true,
		Language:       models.LanguageEN,
	})

	if err := env.bot.HandleReply(ctx, "33612345678", "Yes we'll be there"); err != nil {
		t.Fatalf("handle reply: %v", err)
	}
	updated, err := env.admin.GetGuest(ctx, guest.ID)
	if err != nil {
		t.Fatalf("get guest: %v", err)
	}
	if updated.RSVPStatus != models.RSVPAttending || updated.RespondedAt == nil {
		t.Fatalf("guest after reply = %+v", updated)
	}

	sent := env.messenger.messages()
	if len(sent) != 1 || sent[0].phone != "33612345678" {
		t.Fatalf("confirmations = %+v", sent)
	}
	if !strings.Contains(sent[0].text, "confirmed your attendance") {
		t.Fatalf("confirmation not in english: %q", sent[0].text)
	}
}

func TestHandleReplyKeepsWebAnswers(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()
	guest := env.createGuest(t, admin.GuestInput{
		FirstName:      "Leila",
		LastName:       "Benali",
		Phone:          strPtr("+33 6 12 34 56 78"),
		PlusOneAllowed: true,
	})

	decision := models.Decision{
		RSVPStatus:       models.RSVPNotAttending,
		PlusOneName:      strPtr("Sami"),
		PlusOneAttending: true,
		Message:          strPtr("Désolés"),
	}
	if _, err := env.bot.rsvps.Submit(ctx, guest.RSVPCode, decision); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := env.bot.HandleReply(ctx, "33612345678", "oui"); err != nil {
		t.Fatalf("handle reply: %v", err)
	}

	updated, err := env.admin.GetGuest(ctx, guest.ID)
	if err != nil {
		t.Fatalf("get guest: %v", err)
	}
	if updated.RSVPStatus != models.RSVPAttending {
		t.Fatalf("rsvp_status = %q, want attending", updated.RSVPStatus)
	}
	if updated.Message == nil || *updated.Message != "Désolés" {
		t.Fatalf("message = %v, want kept", updated.Message)
	}
}

func TestHandleReplyIgnoresUnknownSenderAndUnclearText(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()
	guest := env.createGuest(t, admin.GuestInput{FirstName: "Leila", LastName: "Benali", Phone: strPtr("0612345678")})

	if err := env.bot.HandleReply(ctx, "33700000000", "yes"); err != nil {
		t.Fatalf("unknown sender: %v", err)
	}
	if err := env.bot.HandleReply(ctx, "33612345678", "what time does it start?"); err != nil {
		t.Fatalf("unclear text: %v", err)
	}

	updated, err := env.admin.GetGuest(ctx, guest.ID)
	if err != nil {
		t.Fatalf("get guest: %v", err)
	}
	if updated.RSVPStatus != models.RSVPPending {
		t.Fatalf("rsvp_status = %q, want pending", updated.RSVPStatus)
	}
	if sent := env.messenger.messages(); len(sent) != 0 {
		t.Fatalf("sent %d messages, want none", len(sent))
	}
}

func TestInvitationLanguage(t *testing.T) {
	bot := NewRSVPBot(&fakeMessenger{}, nil, nil, WeddingDetails{BrideName: "Leila", GroomName: "Karim"}, zerolog.Nop())

	tests := []struct {
		lang models.Language
		want string
	}{
		{lang: models.LanguageFR, want: "Votre code RSVP"},
		{lang: models.LanguageEN, want: "Your RSVP code"},
		{lang: models.LanguageAR, want: "رمز الرد"},
	}
	for _, tt := range tests {
		msg := bot.invitation(&models.Guest{FirstName: "Ana", RSVPCode: "ABCD1234", Language: tt.lang})
		if !strings.Contains(msg, tt.want) || !strings.Contains(msg, "ABCD1234") {
			t.Fatalf("invitation(%s) = %q, want it to contain %q", tt.lang, msg, tt.want)
		}
		if strings.Contains(msg, "code=") {
			t.Fatalf("invitation(%s) has a link without a configured URL", tt.lang)
		}
	}
}

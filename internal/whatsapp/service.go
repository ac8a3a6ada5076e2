package whatsapp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
)

// MessageHandler is a callback function for handling incoming messages
type MessageHandler func(context.Context, *events.Message) error

type Config struct {
	DataDir            string
	DefaultCountryCode string
}

type Service struct {
	client         *whatsmeow.Client
	cfg            *Config
	log            zerolog.Logger
	messageHandler MessageHandler
}

// NewService creates a new WhatsApp service backed by a device store in cfg.DataDir
func NewService(ctx context.Context, cfg *Config, logger zerolog.Logger) (*Service, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Use nil logger - sqlstore will use a no-op logger by default
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(cfg.DataDir, "whatsmeow.db"))
	container, err := sqlstore.New(ctx, "sqlite3", dsn, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create device store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	service := &Service{
		client: whatsmeow.NewClient(deviceStore, nil),
		cfg:    cfg,
		log:    logger,
	}
	service.client.AddEventHandler(service.eventHandler)

	return service, nil
}

// NormalizePhoneNumber reduces a phone number to international digits.
// National numbers written with a leading 0 (0XXXXXXXXX) get countryCode
// instead, and a stray 0 after the country code is dropped.
func NormalizePhoneNumber(phoneNumber, countryCode string) string {
	var b strings.Builder
	for _, r := range phoneNumber {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if countryCode == "" {
		return digits
	}
	if strings.HasPrefix(digits, "00") {
		return digits[2:]
	}
	if strings.HasPrefix(digits, "0") && len(digits) == 10 {
		digits = countryCode + digits[1:]
	}
	if strings.HasPrefix(digits, countryCode+"0") {
		digits = countryCode + digits[len(countryCode)+1:]
	}
	return digits
}

// Normalize applies NormalizePhoneNumber with the configured country code
func (s *Service) Normalize(phoneNumber string) string {
	return NormalizePhoneNumber(phoneNumber, s.cfg.DefaultCountryCode)
}

// Connect connects to WhatsApp, printing a pairing QR code on first use
func (s *Service) Connect(ctx context.Context) error {
	if s.client.Store.ID != nil {
		if err := s.client.Connect(); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		return nil
	}

	qrChan, err := s.client.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("failed to get QR channel: %w", err)
	}
	if err := s.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	for evt := range qrChan {
		if evt.Event != "code" {
			s.log.Info().Str("event", evt.Event).Msg("Login event")
			continue
		}
		q, err := qrcode.New(evt.Code, qrcode.Medium)
		if err != nil {
			s.log.Warn().Err(err).Str("code", evt.Code).Msg("Could not render QR code, pair with the raw code")
			continue
		}
		fmt.Println("\n" + q.ToSmallString(false))
		fmt.Println("Scan the QR code above with WhatsApp: Settings > Linked Devices > Link a Device")
	}
	return nil
}

// Disconnect disconnects from WhatsApp
func (s *Service) Disconnect() {
	s.client.Disconnect()
}

// SendMessage sends a text message to a phone number
func (s *Service) SendMessage(ctx context.Context, phoneNumber, message string) error {
	phoneNumber = s.Normalize(phoneNumber)

	jid, err := s.resolveJID(ctx, phoneNumber)
	if err != nil {
		return err
	}

	s.log.Debug().Str("jid", jid.String()).Msg("Attempting to send message")
	sent, err := s.client.SendMessage(ctx, jid, &waE2E.Message{
		Conversation: &message,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", jid.String(), err)
	}

	s.log.Info().Str("jid", jid.String()).Str("message_id", sent.ID).Msg("Message sent")
	return nil
}

// resolveJID verifies the number is registered on WhatsApp and returns its JID
func (s *Service) resolveJID(ctx context.Context, phoneNumber string) (types.JID, error) {
	resp, err := s.client.IsOnWhatsApp(ctx, []string{"+" + phoneNumber})
	if err != nil {
		return types.JID{}, fmt.Errorf("failed to verify number on WhatsApp: %w", err)
	}
	if len(resp) == 0 || !resp[0].IsIn {
		return types.JID{}, fmt.Errorf("number %s is not registered on WhatsApp", phoneNumber)
	}
	return resp[0].JID, nil
}

// eventHandler handles incoming WhatsApp events
func (s *Service) eventHandler(evt interface{}) {
	switch evt := evt.(type) {
	case *events.Message:
		s.handleMessage(evt)
	case *events.Connected:
		s.log.Info().Msg("Connected to WhatsApp")
	case *events.Disconnected:
		s.log.Info().Msg("Disconnected from WhatsApp")
	case *events.LoggedOut:
		s.log.Warn().Msg("Logged out from WhatsApp")
	}
}

// handleMessage processes incoming messages
func (s *Service) handleMessage(msg *events.Message) {
	// Skip messages from self
	if msg.Info.IsFromMe {
		return
	}

	if s.messageHandler == nil {
		s.log.Debug().Str("sender", msg.Info.Sender.String()).Msg("Received message")
		return
	}
	if err := s.messageHandler(context.Background(), msg); err != nil {
		s.log.Error().Err(err).Str("sender", msg.Info.Sender.String()).Msg("Error handling message")
	}
}

// SetMessageHandler sets a custom handler for incoming messages
func (s *Service) SetMessageHandler(handler MessageHandler) {
	s.messageHandler = handler
}

// MessageText returns the plain text of an incoming message, if any
func MessageText(msg *events.Message) string {
	if msg == nil || msg.Message == nil {
		return ""
	}
	if text := msg.Message.GetConversation(); text != "" {
		return text
	}
	return msg.Message.GetExtendedTextMessage().GetText()
}

// SenderPhone returns the phone digits of the sender of msg. Senders
// addressed by a hidden @lid identity carry their phone JID in SenderAlt.
func SenderPhone(msg *events.Message) string {
	if msg.Info.Sender.Server == types.HiddenUserServer && !msg.Info.SenderAlt.IsEmpty() {
		return msg.Info.SenderAlt.User
	}
	return msg.Info.Sender.User
}

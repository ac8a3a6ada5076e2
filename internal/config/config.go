package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	HTTPAddr     string   `env:"WEDDING_HTTP_ADDR" envDefault:":8000"`
	DatabasePath string   `env:"WEDDING_DB_PATH" envDefault:"data/wedding.db"`
	CORSOrigins  []string `env:"WEDDING_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:5174,http://localhost:3000"`
	Debug        bool     `env:"WEDDING_DEBUG"`
	Console      bool     `env:"WEDDING_CONSOLE"`

	JWTSecret string        `env:"WEDDING_JWT_SECRET"`
	JWTIssuer string        `env:"WEDDING_JWT_ISSUER" envDefault:"wedding-app"`
	TokenTTL  time.Duration `env:"WEDDING_TOKEN_TTL" envDefault:"168h"`

	LogLevel  string `env:"WEDDING_LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"WEDDING_LOG_PRETTY"`

	WhatsAppEnabled    bool   `env:"WHATSAPP_ENABLED"`
	WhatsAppDataDir    string `env:"WHATSAPP_DATA_DIR" envDefault:"data"`
	DefaultCountryCode string `env:"WHATSAPP_DEFAULT_COUNTRY_CODE" envDefault:"33"`
	WeddingDate        string `env:"WEDDING_DATE" envDefault:"Saturday, June 6, 2026"`
	WeddingLocation    string `env:"WEDDING_LOCATION" envDefault:"Venue TBD"`
	BrideName          string `env:"BRIDE_NAME" envDefault:"Bride"`
	GroomName          string `env:"GROOM_NAME" envDefault:"Groom"`
	RSVPURL            string `env:"WEDDING_RSVP_URL"`
}

// LoadConfig loads configuration from an optional .env file and the environment
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("WEDDING_JWT_SECRET is required")
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("WEDDING_DB_PATH is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("WEDDING_TOKEN_TTL must be positive")
	}
	for _, r := range c.DefaultCountryCode {
		if r < '0' || r > '9' {
			return fmt.Errorf("WHATSAPP_DEFAULT_COUNTRY_CODE must contain digits only")
		}
	}
	return nil
}

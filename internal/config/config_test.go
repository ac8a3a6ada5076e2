package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("WEDDING_JWT_SECRET", "s3cret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8000" {
		t.Fatalf("http addr = %q, want :8000", cfg.HTTPAddr)
	}
	if cfg.TokenTTL != 168*time.Hour {
		t.Fatalf("token ttl = %v, want 168h", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 3 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Fatalf("cors origins = %v", cfg.CORSOrigins)
	}
	if cfg.WhatsAppEnabled {
		t.Fatal("whatsapp must be disabled by default")
	}
	if cfg.DefaultCountryCode != "33" {
		t.Fatalf("default country code = %q, want 33", cfg.DefaultCountryCode)
	}
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "WEDDING_JWT_SECRET=from-file\nWEDDING_HTTP_ADDR=:9999\nBRIDE_NAME=Lina\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("WEDDING_JWT_SECRET", "")
	t.Setenv("WEDDING_HTTP_ADDR", "")
	t.Setenv("BRIDE_NAME", "")
	os.Unsetenv("WEDDING_JWT_SECRET")
	os.Unsetenv("WEDDING_HTTP_ADDR")
	os.Unsetenv("BRIDE_NAME")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.JWTSecret != "from-file" || cfg.HTTPAddr != ":9999" || cfg.BrideName != "Lina" {
		t.Fatalf("env file values not applied: %+v", cfg)
	}
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("WEDDING_JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil || !strings.Contains(err.Error(), "WEDDING_JWT_SECRET") {
		t.Fatalf("expected secret error, got %v", err)
	}
}

func TestLoadConfigParseError(t *testing.T) {
	t.Setenv("WEDDING_JWT_SECRET", "s3cret")
	t.Setenv("WEDDING_TOKEN_TTL", "forever")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestValidateCountryCode(t *testing.T) {
	cfg := &Config{JWTSecret: "s", DatabasePath: "db", TokenTTL: time.Hour, DefaultCountryCode: "+33"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected country code error")
	}
}

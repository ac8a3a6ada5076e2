package content

import (
	"testing"

	"wedding-rsvp/internal/models"
)

func strPtr(s string) *string { return &s }

func TestResolveTextFrenchOnlyFallsBackEverywhere(t *testing.T) {
	e := &models.WeddingEvent{TitleFR: "Cérémonie"}

	for _, lang := range []models.Language{models.LanguageFR, models.LanguageEN, models.LanguageAR, "de", ""} {
		if got := ResolveText(e, FieldTitle, lang); got != "Cérémonie" {
			t.Fatalf("ResolveText(%q) = %q, want Cérémonie", lang, got)
		}
	}
}

func TestResolveTextPicksVariant(t *testing.T) {
	e := &models.WeddingEvent{
		TitleFR:       "Dîner",
		TitleEN:       strPtr("Dinner"),
		TitleAR:       strPtr("العشاء"),
		DescriptionFR: strPtr("Au château"),
		DescriptionEN: strPtr("At the castle"),
	}

	tests := []struct {
		field Field
		lang  models.Language
		want  string
	}{
		{FieldTitle, models.LanguageFR, "Dîner"},
		{FieldTitle, models.LanguageEN, "Dinner"},
		{FieldTitle, models.LanguageAR, "العشاء"},
		{FieldTitle, "es", "Dîner"},
		{FieldDescription, models.LanguageEN, "At the castle"},
		{FieldDescription, models.LanguageAR, "Au château"},
		{FieldDescription, "xx", "Au château"},
	}
	for _, tt := range tests {
		if got := ResolveText(e, tt.field, tt.lang); got != tt.want {
			t.Fatalf("ResolveText(%d, %q) = %q, want %q", tt.field, tt.lang, got, tt.want)
		}
	}
}

func TestResolveTextBlankVariantFallsBack(t *testing.T) {
	e := &models.WeddingEvent{TitleFR: "Brunch", TitleAR: strPtr("   ")}

	if got := ResolveText(e, FieldTitle, models.LanguageAR); got != "Brunch" {
		t.Fatalf("ResolveText(ar) = %q, want Brunch", got)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := map[string]models.Language{
		"fr":    models.LanguageFR,
		"EN":    models.LanguageEN,
		" ar ":  models.LanguageAR,
		"en-GB": models.LanguageEN,
		"ar-MA": models.LanguageAR,
		"de":    models.LanguageFR,
		"":      models.LanguageFR,
		"!!":    models.LanguageFR,
	}
	for in, want := range tests {
		if got := ParseLanguage(in); got != want {
			t.Fatalf("ParseLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNegotiate(t *testing.T) {
	tests := map[string]models.Language{
		"":                        models.LanguageFR,
		"en-US,en;q=0.9":          models.LanguageEN,
		"ar;q=0.9, fr;q=0.8":      models.LanguageAR,
		"de-DE, en;q=0.5":         models.LanguageEN,
		"ja":                      models.LanguageFR,
		"fr-CA,fr;q=0.9,en;q=0.8": models.LanguageFR,
	}
	for header, want := range tests {
		if got := Negotiate(header); got != want {
			t.Fatalf("Negotiate(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestLocalize(t *testing.T) {
	e := models.WeddingEvent{ID: "e1", TitleFR: "Cocktail", TitleEN: strPtr("Drinks")}

	got := Localize(e, models.LanguageEN)
	if got.Title != "Drinks" || got.Description != "" || got.ID != "e1" || got.Language != models.LanguageEN {
		t.Fatalf("unexpected localized event: %+v", got)
	}
}

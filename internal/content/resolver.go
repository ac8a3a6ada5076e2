// Package content picks the language variant of multilingual timeline text.
package content

import (
	"strings"

	"golang.org/x/text/language"

	"wedding-rsvp/internal/models"
)

// Field names a multilingual text field of a timeline entry
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
)

// variants returns the fr, en and ar values of field.
func variants(e *models.WeddingEvent, field Field) (fr, en, ar string) {
	switch field {
	case FieldTitle:
		return e.TitleFR, deref(e.TitleEN), deref(e.TitleAR)
	case FieldDescription:
		return deref(e.DescriptionFR), deref(e.DescriptionEN), deref(e.DescriptionAR)
	}
	return "", "", ""
}

// ResolveText returns field in lang, falling back to French when that
// variant is missing or lang is not a supported locale.
func ResolveText(e *models.WeddingEvent, field Field, lang models.Language) string {
	fr, en, ar := variants(e, field)
	switch lang {
	case models.LanguageEN:
		if strings.TrimSpace(en) != "" {
			return en
		}
	case models.LanguageAR:
		if strings.TrimSpace(ar) != "" {
			return ar
		}
	}
	return fr
}

// ParseLanguage maps a raw locale code onto a supported language, fr otherwise.
func ParseLanguage(raw string) models.Language {
	l := models.Language(strings.ToLower(strings.TrimSpace(raw)))
	if l.Valid() {
		return l
	}
	if tag, err := language.Parse(raw); err == nil {
		return match(tag)
	}
	return models.LanguageFR
}

var matcher = language.NewMatcher([]language.Tag{language.French, language.English, language.Arabic})

// Negotiate picks the best supported language for an Accept-Language header.
func Negotiate(acceptLanguage string) models.Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return models.LanguageFR
	}
	return match(tags...)
}

func match(tags ...language.Tag) models.Language {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return models.LanguageFR
	}
	return models.Languages[idx]
}

// LocalizedEvent is a timeline entry with its text resolved for one language
type LocalizedEvent struct {
	models.WeddingEvent
	Language    models.Language `json:"language"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
}

// Localize resolves every multilingual field of e for lang.
func Localize(e models.WeddingEvent, lang models.Language) LocalizedEvent {
	return LocalizedEvent{
		WeddingEvent: e,
		Language:     lang,
		Title:        ResolveText(&e, FieldTitle, lang),
		Description:  ResolveText(&e, FieldDescription, lang),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

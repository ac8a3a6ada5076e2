package timeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"wedding-rsvp/internal/models"
)

type fakeEvents struct {
	events []models.WeddingEvent
	err    error
}

// ListEvents ignores visibleOnly so the projection's own filtering is exercised.
func (f *fakeEvents) ListEvents(context.Context, bool) ([]models.WeddingEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.WeddingEvent, len(f.events))
	copy(out, f.events)
	return out, nil
}

func strPtr(s string) *string { return &s }

func seed() []models.WeddingEvent {
	base := time.Date(2026, time.June, 6, 14, 0, 0, 0, time.UTC)
	return []models.WeddingEvent{
		{ID: "dinner", TitleFR: "Dîner", TitleEN: strPtr("Dinner"), SortOrder: 3, StartTime: base.Add(5 * time.Hour), IsVisible: true},
		{ID: "hidden", TitleFR: "Photos privées", SortOrder: 2, StartTime: base.Add(3 * time.Hour), IsVisible: false},
		{ID: "vows", TitleFR: "Vœux", SortOrder: 1, StartTime: base.Add(time.Hour), IsVisible: true},
		{ID: "welcome", TitleFR: "Accueil", SortOrder: 1, StartTime: base, IsVisible: true},
	}
}

func ids(events []models.WeddingEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPublicTimelineHidesInvisible(t *testing.T) {
	p := NewProjection(&fakeEvents{events: seed()})

	got, err := p.PublicTimeline(context.Background())
	if err != nil {
		t.Fatalf("public timeline: %v", err)
	}
	want := []string{"welcome", "vows", "dinner"}
	if !equal(ids(got), want) {
		t.Fatalf("public timeline = %v, want %v", ids(got), want)
	}
	for _, e := range got {
		if !e.IsVisible {
			t.Fatalf("hidden entry %q exposed", e.ID)
		}
	}
}

func TestAdminTimelineIncludesHidden(t *testing.T) {
	p := NewProjection(&fakeEvents{events: seed()})

	got, err := p.AdminTimeline(context.Background())
	if err != nil {
		t.Fatalf("admin timeline: %v", err)
	}
	want := []string{"welcome", "vows", "hidden", "dinner"}
	if !equal(ids(got), want) {
		t.Fatalf("admin timeline = %v, want %v", ids(got), want)
	}
}

func TestLocalizedTimeline(t *testing.T) {
	p := NewProjection(&fakeEvents{events: seed()})

	got, err := p.LocalizedTimeline(context.Background(), models.LanguageEN)
	if err != nil {
		t.Fatalf("localized timeline: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Title != "Accueil" || got[2].Title != "Dinner" {
		t.Fatalf("unexpected titles: %q, %q", got[0].Title, got[2].Title)
	}
}

func TestTimelinePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	p := NewProjection(&fakeEvents{err: boom})

	if _, err := p.PublicTimeline(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("public: expected wrapped error, got %v", err)
	}
	if _, err := p.AdminTimeline(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("admin: expected wrapped error, got %v", err)
	}
}

package stats

import (
	"context"
	"errors"
	"testing"

	"wedding-rsvp/internal/models"
)

type fakeLister struct {
	guests []models.Guest
	err    error
	calls  int
}

func (f *fakeLister) ListGuests(context.Context, models.GuestFilter) ([]models.Guest, error) {
	f.calls++
	return f.guests, f.err
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		guests []models.Guest
		want   models.Stats
	}{
		{name: "empty", want: models.Stats{}},
		{
			name: "mixed",
			guests: []models.Guest{
				{RSVPStatus: models.RSVPAttending, PlusOneAllowed: true, PlusOneAttending: true},
				{RSVPStatus: models.RSVPAttending, PlusOneAllowed: true},
				{RSVPStatus: models.RSVPAttending},
				{RSVPStatus: models.RSVPNotAttending},
				{RSVPStatus: models.RSVPPending},
				{RSVPStatus: models.RSVPPending},
			},
			want: models.Stats{Total: 6, Attending: 3, NotAttending: 1, Pending: 2, PlusOnes: 1, TotalAttending: 4},
		},
		{
			name: "plus one without permission is ignored",
			guests: []models.Guest{
				{RSVPStatus: models.RSVPAttending, PlusOneAttending: true},
			},
			want: models.Stats{Total: 1, Attending: 1, TotalAttending: 1},
		},
		{
			name: "plus one of a guest reset to pending is ignored",
			guests: []models.Guest{
				{RSVPStatus: models.RSVPPending, PlusOneAllowed: true, PlusOneAttending: true},
			},
			want: models.Stats{Total: 1, Pending: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.guests)
			if got != tt.want {
				t.Fatalf("Compute() = %+v, want %+v", got, tt.want)
			}
			if got.Attending+got.NotAttending+got.Pending != got.Total {
				t.Fatalf("status counts do not add up to total: %+v", got)
			}
			if got.TotalAttending != got.Attending+got.PlusOnes {
				t.Fatalf("total_attending mismatch: %+v", got)
			}
		})
	}
}

func TestComputeStatsReadsFreshEachCall(t *testing.T) {
	lister := &fakeLister{guests: []models.Guest{{RSVPStatus: models.RSVPPending}}}
	agg := NewAggregator(lister)

	first, err := agg.ComputeStats(context.Background())
	if err != nil {
		t.Fatalf("compute stats: %v", err)
	}
	if first.Pending != 1 {
		t.Fatalf("pending = %d, want 1", first.Pending)
	}

	lister.guests = []models.Guest{{RSVPStatus: models.RSVPAttending}}
	second, err := agg.ComputeStats(context.Background())
	if err != nil {
		t.Fatalf("compute stats: %v", err)
	}
	if second.Attending != 1 || second.Pending != 0 {
		t.Fatalf("stale stats: %+v", second)
	}
	if lister.calls != 2 {
		t.Fatalf("store read %d times, want 2", lister.calls)
	}
}

func TestComputeStatsPropagatesStoreError(t *testing.T) {
	boom := errors.New("boom")
	agg := NewAggregator(&fakeLister{err: boom})

	if _, err := agg.ComputeStats(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

package domain

import (
	"errors"
	"testing"
	"time"
)

var (
	sender    = Party{Name: "A", Address: "X"}
	recipient = Party{Name: "B", Address: "Y"}
)

func TestNewParcel_InitialHistory(t *testing.T) {
	now := time.Now().UTC()
	p, err := NewParcel(sender, recipient, 2.5, "books", "standard", now.AddDate(0, 0, 3), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(p.History))
	}
	first := p.History[0]
	if first.Status != StatusCreated {
		t.Errorf("expected initial status %q, got %q", StatusCreated, first.Status)
	}
	if first.Location != "system" {
		t.Errorf("expected location %q, got %q", "system", first.Location)
	}
	if !first.Timestamp.Equal(now) {
		t.Errorf("expected timestamp %v, got %v", now, first.Timestamp)
	}
	if p.CurrentStatus() != StatusCreated {
		t.Errorf("expected current status created, got %s", p.CurrentStatus())
	}
}

func TestNewParcel_Validation(t *testing.T) {
	now := time.Now().UTC()
	cases := []struct {
		name      string
		sender    Party
		recipient Party
		weight    float64
		desc      string
	}{
		{"zero weight", sender, recipient, 0, "books"},
		{"negative weight", sender, recipient, -1, "books"},
		{"empty description", sender, recipient, 1, "  "},
		{"sender without name", Party{Address: "X"}, recipient, 1, "books"},
		{"sender without address", Party{Name: "A"}, recipient, 1, "books"},
		{"recipient without name", sender, Party{Address: "Y"}, 1, "books"},
		{"recipient without address", sender, Party{Name: "B"}, 1, "books"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParcel(tc.sender, tc.recipient, tc.weight, tc.desc, "standard", now, now)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestAppendEvent_AppendsWithoutMutatingInput(t *testing.T) {
	now := time.Now().UTC()
	history := []TrackingEvent{{Status: StatusCreated, Timestamp: now}}

	out := AppendEvent(history, StatusInTransit, "hub", "departed", now.Add(time.Hour))
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if len(history) != 1 {
		t.Fatalf("input history mutated: %d entries", len(history))
	}
	last := out[1]
	if last.Status != StatusInTransit || last.Location != "hub" || last.Description != "departed" {
		t.Errorf("unexpected appended event: %+v", last)
	}
}

func TestAppendEvent_ClampsBackwardsClock(t *testing.T) {
	now := time.Now().UTC()
	history := []TrackingEvent{{Status: StatusCreated, Timestamp: now}}

	// Wall clock went backwards relative to the last entry.
	out := AppendEvent(history, StatusInTransit, "hub", "", now.Add(-time.Minute))

	want := now.Add(time.Millisecond)
	if !out[1].Timestamp.Equal(want) {
		t.Errorf("expected clamped timestamp %v, got %v", want, out[1].Timestamp)
	}
	if out[1].Timestamp.Before(out[0].Timestamp) {
		t.Error("timestamps must be monotonically non-decreasing")
	}
}

func TestCurrentStatus_LastEntryWins(t *testing.T) {
	now := time.Now().UTC()
	p := &Parcel{History: []TrackingEvent{
		{Status: StatusCreated, Timestamp: now},
		{Status: StatusInTransit, Timestamp: now.Add(time.Hour)},
	}}
	if p.CurrentStatus() != StatusInTransit {
		t.Errorf("expected in_transit, got %s", p.CurrentStatus())
	}
}

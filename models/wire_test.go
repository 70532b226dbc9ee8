package models

import (
	"testing"
	"time"
)

func TestNewSessionView(t *testing.T) {
	// 23:30 in UTC+2 is 21:30 UTC; the view must render UTC.
	loc := time.FixedZone("UTC+2", 2*60*60)
	session := Session{
		ID:          7,
		StartAt:     time.Date(2026, 3, 14, 23, 30, 0, 0, loc),
		Description: "Final round",
	}

	view := NewSessionView(session)
	if view.ID != 7 {
		t.Errorf("ID = %d, want 7", view.ID)
	}
	if view.StartDate != "2026-03-14" {
		t.Errorf("StartDate = %q, want 2026-03-14", view.StartDate)
	}
	if view.StartTime != "21:30" {
		t.Errorf("StartTime = %q, want 21:30", view.StartTime)
	}
	if view.Description != "Final round" {
		t.Errorf("Description = %q", view.Description)
	}
}

func TestNewAttemptView(t *testing.T) {
	attempt := Attempt{
		SessionID: 3,
		UserName:  "alice",
		Rate:      88,
		CreatedAt: time.Date(2026, 3, 14, 9, 5, 42, 0, time.UTC),
	}

	view := NewAttemptView(attempt)
	if view.SessionID != 3 || view.UserName != "alice" || view.Rate != 88 {
		t.Errorf("view = %+v", view)
	}
	if view.DateTime != "2026-03-14 09:05" {
		t.Errorf("DateTime = %q, want 2026-03-14 09:05", view.DateTime)
	}
	if view.ID != attempt.ObjectID.Hex() {
		t.Errorf("ID = %q, want hex of ObjectID", view.ID)
	}
}

func TestParseStartAt(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		wantErr bool
	}{
		{"valid", "2026-03-14", "21:30", false},
		{"midnight", "2026-01-01", "00:00", false},
		{"bad date", "2026-13-40", "21:30", true},
		{"bad time", "2026-03-14", "25:99", true},
		{"empty", "", "", true},
		{"wrong layout", "14.03.2026", "21:30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStartAt(tt.date, tt.clock)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStartAt(%q, %q) error = %v, wantErr %v", tt.date, tt.clock, err, tt.wantErr)
			}
			if err == nil && got.Location() != time.UTC {
				t.Errorf("ParseStartAt() location = %v, want UTC", got.Location())
			}
		})
	}

	got, err := ParseStartAt("2026-03-14", "21:30")
	if err != nil {
		t.Fatalf("ParseStartAt() error = %v", err)
	}
	want := time.Date(2026, 3, 14, 21, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseStartAt() = %v, want %v", got, want)
	}
}

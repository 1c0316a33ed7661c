package model

import (
	"testing"
	"time"
)

func TestFormattedDueDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		due  *time.Time
		want string
	}{
		{"no due date", nil, ""},
		{"today", timePtr(time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)), "Today"},
		{"tomorrow", timePtr(time.Date(2026, 3, 11, 8, 0, 0, 0, time.Local)), "Tomorrow"},
		{"same year", timePtr(time.Date(2026, 7, 4, 12, 0, 0, 0, time.Local)), "Jul 4"},
		{"other year", timePtr(time.Date(2027, 1, 2, 12, 0, 0, 0, time.Local)), "Jan 2 2027"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := (Task{DueDate: tt.due}).FormattedDueDate(now)
			if got != tt.want {
				t.Fatalf("FormattedDueDate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPriorityColorAndIcon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p     Priority
		color string
		icon  string
	}{
		{PriorityLow, "success", "○"},
		{PriorityMedium, "warning", "◐"},
		{PriorityHigh, "error", "●"},
		{PriorityUrgent, "error", "‼"},
		{Priority("bogus"), "neutral", "·"},
	}
	for _, tt := range tests {
		if got := tt.p.Color(); got != tt.color {
			t.Fatalf("Color(%q) = %q, want %q", tt.p, got, tt.color)
		}
		if got := tt.p.Icon(); got != tt.icon {
			t.Fatalf("Icon(%q) = %q, want %q", tt.p, got, tt.icon)
		}
	}
}

func TestPriorityValid(t *testing.T) {
	t.Parallel()

	for _, p := range Priorities {
		if !p.Valid() {
			t.Fatalf("expected %q to be valid", p)
		}
	}
	if Priority("").Valid() || Priority("ultra").Valid() {
		t.Fatalf("unexpected valid verdict for unknown priority")
	}
}

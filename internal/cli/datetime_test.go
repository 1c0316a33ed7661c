package cli

import (
	"strings"
	"testing"
	"time"
)

func TestParseDueDate(t *testing.T) {
	t.Parallel()

	got, err := parseDueDate("2026-09-03")
	if err != nil {
		t.Fatalf("parseDueDate: %v", err)
	}
	want := time.Date(2026, 9, 3, 23, 59, 59, 0, time.Local)
	if got == nil || !got.Equal(want) {
		t.Fatalf("date-only input must resolve to end of day; got %v, want %v", got, want)
	}

	got, err = parseDueDate("2026-09-03 14:30")
	if err != nil {
		t.Fatalf("parseDueDate: %v", err)
	}
	want = time.Date(2026, 9, 3, 14, 30, 0, 0, time.Local)
	if got == nil || !got.Equal(want) {
		t.Fatalf("explicit time must be kept exact; got %v, want %v", got, want)
	}

	for _, s := range []string{"", "none", " NONE "} {
		got, err = parseDueDate(s)
		if err != nil || got != nil {
			t.Fatalf("parseDueDate(%q) = %v, %v; want nil, nil", s, got, err)
		}
	}

	if _, err := parseDueDate("soonish"); err == nil {
		t.Fatalf("expected error for unparseable input")
	}
	if _, err := parseDueDate("03/09/2026"); err == nil {
		t.Fatalf("expected error for non-ISO date format")
	}
}

func TestParseDueDate_TodayIsNotImmediatelyOverdue(t *testing.T) {
	t.Parallel()

	got, err := parseDueDate("today")
	if err != nil {
		t.Fatalf("parseDueDate: %v", err)
	}
	if got == nil || got.Before(time.Now()) {
		t.Fatalf("a task due today must not start out overdue; got %v", got)
	}
	if got.Day() != time.Now().Local().Day() {
		t.Fatalf("today must stay on the current calendar day; got %v", got)
	}

	tm, err := parseDueDate("tomorrow")
	if err != nil {
		t.Fatalf("parseDueDate: %v", err)
	}
	if tm == nil || !strings.Contains(tm.Format("15:04:05"), "23:59:59") {
		t.Fatalf("tomorrow must resolve to end of day; got %v", tm)
	}
}

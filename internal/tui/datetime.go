package tui

import (
	"fmt"
	"strings"
	"time"
)

// parseDueInput accepts the editor's due field: "YYYY-MM-DD",
// "YYYY-MM-DD HH:MM", today, tomorrow, or empty/none to clear. Date-only
// input resolves to the end of that calendar day (local time).
func parseDueInput(s string, now time.Time) (*time.Time, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none":
		return nil, nil
	case "today":
		due := endOfDay(now)
		return &due, nil
	case "tomorrow":
		due := endOfDay(now.AddDate(0, 0, 1))
		return &due, nil
	}

	if ts, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return &ts, nil
	}
	if day, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		due := endOfDay(day)
		return &due, nil
	}
	return nil, fmt.Errorf("invalid due date: %q", s)
}

func endOfDay(ts time.Time) time.Time {
	ts = ts.Local()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 23, 59, 59, 0, time.Local)
}

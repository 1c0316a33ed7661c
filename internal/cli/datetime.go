package cli

import (
	"fmt"
	"strings"
	"time"
)

// parseDueDate accepts "YYYY-MM-DD", "YYYY-MM-DD HH:MM", or the keywords
// today/tomorrow/none. Date-only input resolves to the end of that calendar
// day (local time) so a task due "today" does not count as overdue until the
// day is over.
func parseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none":
		return nil, nil
	case "today":
		due := endOfDay(time.Now())
		return &due, nil
	case "tomorrow":
		due := endOfDay(time.Now().AddDate(0, 0, 1))
		return &due, nil
	}

	if ts, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return &ts, nil
	}
	if day, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		due := endOfDay(day)
		return &due, nil
	}
	return nil, fmt.Errorf("invalid due date: %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM, today, tomorrow or none)", s)
}

func endOfDay(ts time.Time) time.Time {
	ts = ts.Local()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 23, 59, 59, 0, time.Local)
}

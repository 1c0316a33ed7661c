package model

import "time"

// FormattedDueDate renders the due date for list rows:
// - same calendar day as now: "Today"
// - next calendar day: "Tomorrow"
// - same year: "Jan 5"
// - otherwise: "Jan 5 2027"
func (t Task) FormattedDueDate(now time.Time) string {
	if t.DueDate == nil {
		return ""
	}
	due := t.DueDate.Local()
	if t.IsDueToday(now) {
		return "Today"
	}
	tomorrow := now.Local().AddDate(0, 0, 1)
	y1, m1, d1 := due.Date()
	y2, m2, d2 := tomorrow.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Tomorrow"
	}
	if due.Year() == now.Local().Year() {
		return due.Format("Jan 2")
	}
	return due.Format("Jan 2 2006")
}

// Color maps a priority to a semantic color name consumed by the UI theme.
// Unknown priorities fall back to neutral.
func (p Priority) Color() string {
	switch p {
	case PriorityLow:
		return "success"
	case PriorityMedium:
		return "warning"
	case PriorityHigh, PriorityUrgent:
		return "error"
	default:
		return "neutral"
	}
}

// Icon maps a priority to a compact list-row glyph.
func (p Priority) Icon() string {
	switch p {
	case PriorityLow:
		return "○"
	case PriorityMedium:
		return "◐"
	case PriorityHigh:
		return "●"
	case PriorityUrgent:
		return "‼"
	default:
		return "·"
	}
}

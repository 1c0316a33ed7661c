package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

const maxTitleLen = 200

type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate checks the task's structural rules. All rules are evaluated (no
// short-circuiting), so Errors may carry more than one message. The order of
// messages is fixed: title presence, title length, priority, due date.
func (t Task) Validate() ValidationResult {
	var errs []string
	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, "Title is required")
	}
	if utf8.RuneCountInString(t.Title) > maxTitleLen {
		errs = append(errs, "Title must be less than 200 characters")
	}
	if !t.Priority.Valid() {
		errs = append(errs, "Invalid priority value")
	}
	if t.DueDate != nil && t.DueDate.IsZero() {
		errs = append(errs, "Invalid due date")
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// IsOverdue reports whether the task's due date has passed. Completed tasks
// are never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return t.DueDate.Before(now)
}

// IsDueToday reports whether the due date falls on the current calendar day
// (local time), regardless of completion.
func (t Task) IsDueToday(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y1, m1, d1 := t.DueDate.Local().Date()
	y2, m2, d2 := now.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDueThisWeek reports whether the due date falls within the next 7 days,
// inclusive of both "due now" and the boundary at exactly 7 days out. Past
// due dates are excluded.
func (t Task) IsDueThisWeek(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	d := t.DueDate.Sub(now)
	return d >= 0 && d <= 7*24*time.Hour
}

// ToggleComplete flips the completion state. CompletedAt is set exactly when
// the task becomes complete and cleared when it reverts to active.
func (t *Task) ToggleComplete(now time.Time) {
	t.Completed = !t.Completed
	if t.Completed {
		ts := now
		t.CompletedAt = &ts
	} else {
		t.CompletedAt = nil
	}
	t.UpdatedAt = now
}

// NormalizeTag trims and lowercases a tag. An empty result means the tag is
// not storable.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// AddTag appends a normalized tag, preserving insertion order. Adding an
// existing or empty tag is a no-op and does not touch UpdatedAt.
func (t *Task) AddTag(tag string, now time.Time) {
	tag = NormalizeTag(tag)
	if tag == "" {
		return
	}
	for _, existing := range t.Tags {
		if existing == tag {
			return
		}
	}
	t.Tags = append(t.Tags, tag)
	t.UpdatedAt = now
}

// RemoveTag drops a normalized tag if present. UpdatedAt is bumped even when
// the tag was absent; callers that treat no-op removals as non-modifications
// should check membership first.
func (t *Task) RemoveTag(tag string, now time.Time) {
	tag = NormalizeTag(tag)
	out := t.Tags[:0]
	for _, existing := range t.Tags {
		if existing != tag {
			out = append(out, existing)
		}
	}
	if len(out) == 0 {
		t.Tags = nil
	} else {
		t.Tags = out
	}
	t.UpdatedAt = now
}

// HasTag reports membership after normalization.
func (t Task) HasTag(tag string) bool {
	tag = NormalizeTag(tag)
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// NormalizeTags converts a comma-separated tag input into a deduplicated,
// trimmed, lowercased sequence (insertion order preserved). This is the
// contract for tag fields coming from editors and CLI flags.
func NormalizeTags(input string) []string {
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(input, ",") {
		tag := NormalizeTag(part)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

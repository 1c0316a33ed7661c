package engine

import (
	"time"

	"taskdeck-cli/internal/model"
)

// Selector is a named display bucket for the list view.
type Selector string

const (
	SelectorAll       Selector = "all" // active tasks
	SelectorToday     Selector = "today"
	SelectorUpcoming  Selector = "upcoming"
	SelectorCompleted Selector = "completed"

	selectorPriorityPrefix = "priority:"
)

// SelectorForPriority returns the per-priority bucket selector.
func SelectorForPriority(p model.Priority) Selector {
	return Selector(selectorPriorityPrefix + string(p))
}

func (sel Selector) priority() (model.Priority, bool) {
	s := string(sel)
	if len(s) > len(selectorPriorityPrefix) && s[:len(selectorPriorityPrefix)] == selectorPriorityPrefix {
		p := model.Priority(s[len(selectorPriorityPrefix):])
		if p.Valid() {
			return p, true
		}
	}
	return "", false
}

// Includes is the selector's inclusion predicate. The search pass reuses it
// so a search never widens the active filter's scope.
func (sel Selector) Includes(t model.Task, now time.Time) bool {
	if p, ok := sel.priority(); ok {
		return !t.Completed && t.Priority == p
	}
	switch sel {
	case SelectorToday:
		return !t.Completed && t.IsDueToday(now)
	case SelectorUpcoming:
		return !t.Completed && t.IsDueThisWeek(now) && !t.IsDueToday(now)
	case SelectorCompleted:
		return t.Completed
	default: // SelectorAll
		return !t.Completed
	}
}

// VisibleTasks runs one render-cycle resolution: base set from the selector,
// intersected with the search-matching set under the same inclusion
// predicate, sorted by creation time descending (the list view's fixed
// order).
func (s *Service) VisibleTasks(sel Selector, search string) ([]model.Task, error) {
	tasks, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	now := s.Now()
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !sel.Includes(t, now) {
			continue
		}
		if !matchesSearch(t, search) {
			continue
		}
		out = append(out, t)
	}
	sorted, err := SortTasks(out, "createdAt", OrderDesc)
	if err != nil {
		return nil, err
	}
	return sorted, nil
}

// Counts are the sidebar badges, computed from the full unfiltered set and
// independent of the currently displayed subset. Per-priority counts exclude
// completed tasks (unlike Statistics.ByPriority).
type Counts struct {
	All       int                    `json:"all"`
	Today     int                    `json:"today"`
	Upcoming  int                    `json:"upcoming"`
	Completed int                    `json:"completed"`
	Overdue   int                    `json:"overdue"`
	Priority  map[model.Priority]int `json:"priority"`
}

func (s *Service) SidebarCounts() (Counts, error) {
	tasks, err := s.snapshot()
	if err != nil {
		return Counts{}, err
	}
	now := s.Now()
	c := Counts{Priority: map[model.Priority]int{}}
	for _, p := range model.Priorities {
		c.Priority[p] = 0
	}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
			continue
		}
		c.All++
		if t.IsDueToday(now) {
			c.Today++
		}
		if t.IsDueThisWeek(now) && !t.IsDueToday(now) {
			c.Upcoming++
		}
		if t.IsOverdue(now) {
			c.Overdue++
		}
		if t.Priority.Valid() {
			c.Priority[t.Priority]++
		}
	}
	return c, nil
}

// Selectors lists the fixed display buckets followed by one per priority,
// in ascending urgency order.
func Selectors() []Selector {
	out := []Selector{SelectorAll, SelectorToday, SelectorUpcoming, SelectorCompleted}
	for _, p := range model.Priorities {
		out = append(out, SelectorForPriority(p))
	}
	return out
}

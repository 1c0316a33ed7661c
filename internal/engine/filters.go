package engine

import (
	"strings"

	"taskdeck-cli/internal/model"
)

// Due-bucket names accepted by Filters.Due.
const (
	DueToday    = "today"
	DueUpcoming = "upcoming"
	DueOverdue  = "overdue"
)

// Filters is a set of independently applicable predicates, AND-combined
// across categories. Tags are OR-matched within the list: a task matches if
// it carries at least one of them.
type Filters struct {
	Completed *bool
	Priority  *model.Priority
	Due       string
	Tags      []string
	Search    string
}

func matchesDue(t model.Task, bucket string, s *Service) bool {
	now := s.Now()
	switch bucket {
	case DueToday:
		return t.IsDueToday(now)
	case DueUpcoming:
		// Due this week but not today.
		return t.IsDueThisWeek(now) && !t.IsDueToday(now)
	case DueOverdue:
		return t.IsOverdue(now)
	default:
		return false
	}
}

func matchesSearch(t model.Task, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

func (s *Service) matches(t model.Task, f Filters) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.Due != "" && !matchesDue(t, f.Due, s) {
		return false
	}
	if len(f.Tags) > 0 {
		any := false
		for _, tag := range f.Tags {
			if t.HasTag(tag) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return matchesSearch(t, f.Search)
}

// FilteredTasks returns the tasks matching all of the filter's predicates,
// read from a fresh store snapshot.
func (s *Service) FilteredTasks(f Filters) ([]model.Task, error) {
	tasks, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if s.matches(t, f) {
			out = append(out, t)
		}
	}
	return out, nil
}

func boolPtr(b bool) *bool { return &b }

// Convenience queries. All exclude completed tasks except CompletedTasks and
// OverdueTasks (overdue is never-completed by construction).

func (s *Service) TodayTasks() ([]model.Task, error) {
	return s.FilteredTasks(Filters{Completed: boolPtr(false), Due: DueToday})
}

func (s *Service) UpcomingTasks() ([]model.Task, error) {
	return s.FilteredTasks(Filters{Completed: boolPtr(false), Due: DueUpcoming})
}

func (s *Service) OverdueTasks() ([]model.Task, error) {
	return s.FilteredTasks(Filters{Due: DueOverdue})
}

func (s *Service) CompletedTasks() ([]model.Task, error) {
	return s.FilteredTasks(Filters{Completed: boolPtr(true)})
}

func (s *Service) TasksByPriority(p model.Priority) ([]model.Task, error) {
	return s.FilteredTasks(Filters{Completed: boolPtr(false), Priority: &p})
}

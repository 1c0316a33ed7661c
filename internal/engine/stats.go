package engine

import (
	"math"
	"sort"

	"taskdeck-cli/internal/model"
)

type Statistics struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
	Overdue   int `json:"overdue"`

	// CompletionRate is a rounded integer percentage in [0,100].
	CompletionRate int `json:"completionRate"`

	// ByPriority counts over the full set, completed tasks included. The
	// sidebar's per-priority counts exclude completed tasks; this breakdown
	// intentionally does not (completed tasks still count toward how many
	// were ever at a given priority).
	ByPriority map[model.Priority]int `json:"byPriority"`
}

// Statistics computes aggregate counts over a fresh snapshot.
func (s *Service) Statistics() (Statistics, error) {
	tasks, err := s.snapshot()
	if err != nil {
		return Statistics{}, err
	}
	now := s.Now()

	st := Statistics{ByPriority: map[model.Priority]int{}}
	for _, p := range model.Priorities {
		st.ByPriority[p] = 0
	}
	for _, t := range tasks {
		st.Total++
		if t.Completed {
			st.Completed++
		} else {
			st.Active++
		}
		if t.IsOverdue(now) {
			st.Overdue++
		}
		if t.Priority.Valid() {
			st.ByPriority[t.Priority]++
		}
	}
	if st.Total > 0 {
		st.CompletionRate = int(math.Round(float64(st.Completed) / float64(st.Total) * 100))
	}
	return st, nil
}

// AllTags returns every tag across all tasks, deduplicated and in
// lexicographic order.
func (s *Service) AllTags() ([]string, error) {
	tasks, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var out []string
	for _, t := range tasks {
		for _, tag := range t.Tags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out, nil
}

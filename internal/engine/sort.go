package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"taskdeck-cli/internal/model"
)

// Sort orders accepted by SortTasks.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// comparator returns <0, 0 or >0 in ascending terms for the field it covers.
type comparator func(a, b model.Task) int

func compareTime(a, b *time.Time) int {
	// Missing values sort as epoch zero (first in ascending order).
	av, bv := int64(0), int64(0)
	if a != nil {
		av = a.UnixMilli()
	}
	if b != nil {
		bv = b.UnixMilli()
	}
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func compareString(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareIntPtr(a, b *int) int {
	av, bv := 0, 0
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av - bv
}

func priorityRank(p model.Priority) int {
	for i, v := range model.Priorities {
		if v == p {
			return i
		}
	}
	return -1
}

// comparators is the per-field registry. Each sort key has an explicitly
// typed comparator; there is no key-name sniffing.
var comparators = map[string]comparator{
	"title":       func(a, b model.Task) int { return compareString(a.Title, b.Title) },
	"description": func(a, b model.Task) int { return compareString(a.Description, b.Description) },
	"priority":    func(a, b model.Task) int { return priorityRank(a.Priority) - priorityRank(b.Priority) },
	"dueDate":     func(a, b model.Task) int { return compareTime(a.DueDate, b.DueDate) },
	"createdAt":   func(a, b model.Task) int { return compareTime(&a.CreatedAt, &b.CreatedAt) },
	"updatedAt":   func(a, b model.Task) int { return compareTime(&a.UpdatedAt, &b.UpdatedAt) },
	"completedAt": func(a, b model.Task) int { return compareTime(a.CompletedAt, b.CompletedAt) },
	"estimatedTime": func(a, b model.Task) int {
		return compareIntPtr(a.EstimatedTime, b.EstimatedTime)
	},
	"actualTime": func(a, b model.Task) int { return compareIntPtr(a.ActualTime, b.ActualTime) },
}

// SortKeys lists the supported sort keys in stable order (for CLI help).
func SortKeys() []string {
	keys := make([]string, 0, len(comparators))
	for k := range comparators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortTasks returns a sorted copy of tasks. The sort is stable: tasks with
// equal key values keep their relative input order for both asc and desc.
func SortTasks(tasks []model.Task, key, order string) ([]model.Task, error) {
	cmp, ok := comparators[key]
	if !ok {
		return nil, fmt.Errorf("unknown sort key: %q (expected one of %s)", key, strings.Join(SortKeys(), "|"))
	}
	desc := false
	switch order {
	case "", OrderAsc:
	case OrderDesc:
		desc = true
	default:
		return nil, fmt.Errorf("unknown sort order: %q (expected asc|desc)", order)
	}

	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out, nil
}

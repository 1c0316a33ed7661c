package model

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestValidate_Table(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task Task
		want []string
	}{
		{
			name: "valid task",
			task: Task{Title: "Write report", Priority: PriorityMedium, DueDate: &due},
			want: nil,
		},
		{
			name: "empty title",
			task: Task{Title: "", Priority: PriorityLow},
			want: []string{"Title is required"},
		},
		{
			name: "whitespace title",
			task: Task{Title: "   ", Priority: PriorityLow},
			want: []string{"Title is required"},
		},
		{
			name: "title too long",
			task: Task{Title: strings.Repeat("x", 201), Priority: PriorityHigh},
			want: []string{"Title must be less than 200 characters"},
		},
		{
			name: "title at limit is fine",
			task: Task{Title: strings.Repeat("x", 200), Priority: PriorityHigh},
			want: nil,
		},
		{
			name: "multibyte runes counted as runes",
			task: Task{Title: strings.Repeat("å", 200), Priority: PriorityHigh},
			want: nil,
		},
		{
			name: "invalid priority",
			task: Task{Title: "ok", Priority: Priority("sometime")},
			want: []string{"Invalid priority value"},
		},
		{
			name: "zero due date",
			task: Task{Title: "ok", Priority: PriorityLow, DueDate: &time.Time{}},
			want: []string{"Invalid due date"},
		},
		{
			name: "all errors accumulate in order",
			task: Task{Title: "", Priority: Priority("nope"), DueDate: &time.Time{}},
			want: []string{"Title is required", "Invalid priority value", "Invalid due date"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.task.Validate()
			if got.Valid != (len(tt.want) == 0) {
				t.Fatalf("Valid = %v, want %v (errors: %v)", got.Valid, len(tt.want) == 0, got.Errors)
			}
			if !reflect.DeepEqual(got.Errors, tt.want) {
				t.Fatalf("Errors = %#v, want %#v", got.Errors, tt.want)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	if (Task{}).IsOverdue(now) {
		t.Fatalf("task without due date must never be overdue")
	}
	if !(Task{DueDate: &past}).IsOverdue(now) {
		t.Fatalf("past due date should be overdue")
	}
	if (Task{DueDate: &future}).IsOverdue(now) {
		t.Fatalf("future due date should not be overdue")
	}
	if (Task{DueDate: &past, Completed: true}).IsOverdue(now) {
		t.Fatalf("completed task must never be overdue")
	}
}

func TestIsDueToday_UsesLocalCalendarDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.Local)

	sameDay := time.Date(2026, 3, 10, 0, 5, 0, 0, time.Local)
	if !(Task{DueDate: &sameDay}).IsDueToday(now) {
		t.Fatalf("due earlier the same local day should count as due today")
	}

	nextDay := time.Date(2026, 3, 11, 0, 5, 0, 0, time.Local)
	if (Task{DueDate: &nextDay}).IsDueToday(now) {
		t.Fatalf("due tomorrow should not count as due today")
	}

	// Completion does not affect the calendar predicate.
	if !(Task{DueDate: &sameDay, Completed: true}).IsDueToday(now) {
		t.Fatalf("completed task due today is still due today")
	}
}

func TestIsDueThisWeek_Boundaries(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	exactlyNow := now
	if !(Task{DueDate: &exactlyNow}).IsDueThisWeek(now) {
		t.Fatalf("due exactly now is inside the window")
	}
	boundary := now.Add(7 * 24 * time.Hour)
	if !(Task{DueDate: &boundary}).IsDueThisWeek(now) {
		t.Fatalf("due exactly 7 days out is inside the window")
	}
	past := now.Add(-time.Minute)
	if (Task{DueDate: &past}).IsDueThisWeek(now) {
		t.Fatalf("past due dates are outside the window")
	}
	beyond := now.Add(7*24*time.Hour + time.Second)
	if (Task{DueDate: &beyond}).IsDueThisWeek(now) {
		t.Fatalf("beyond 7 days is outside the window")
	}
}

func TestToggleComplete_CompletedAtTracksCompleted(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	task := Task{Title: "t", Priority: PriorityLow}

	task.ToggleComplete(now)
	if !task.Completed || task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
		t.Fatalf("after completing: Completed=%v CompletedAt=%v", task.Completed, task.CompletedAt)
	}

	later := now.Add(time.Hour)
	task.ToggleComplete(later)
	if task.Completed || task.CompletedAt != nil {
		t.Fatalf("after reverting: Completed=%v CompletedAt=%v", task.Completed, task.CompletedAt)
	}
	if !task.UpdatedAt.Equal(later) {
		t.Fatalf("UpdatedAt = %v, want %v", task.UpdatedAt, later)
	}
}

func TestAddTag_NormalizesAndDeduplicates(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	task := Task{Title: "t"}

	task.AddTag("  Work ", now)
	task.AddTag("work", now.Add(time.Hour))
	task.AddTag("", now.Add(time.Hour))

	if !reflect.DeepEqual(task.Tags, []string{"work"}) {
		t.Fatalf("Tags = %#v, want [work]", task.Tags)
	}
	if !task.UpdatedAt.Equal(now) {
		t.Fatalf("no-op adds must not bump UpdatedAt; got %v", task.UpdatedAt)
	}
}

func TestRemoveTag_BumpsUpdatedAtEvenWhenAbsent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	task := Task{Title: "t", Tags: []string{"work"}}

	task.RemoveTag("missing", now)
	if !reflect.DeepEqual(task.Tags, []string{"work"}) {
		t.Fatalf("Tags = %#v, want [work]", task.Tags)
	}
	if !task.UpdatedAt.Equal(now) {
		t.Fatalf("RemoveTag always touches UpdatedAt; got %v", task.UpdatedAt)
	}

	later := now.Add(time.Hour)
	task.RemoveTag("WORK", later)
	if task.Tags != nil {
		t.Fatalf("Tags = %#v, want nil after last removal", task.Tags)
	}
}

func TestNormalizeTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"Work, home", []string{"work", "home"}},
		{"a,b,A, b ,c", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		if got := NormalizeTags(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("NormalizeTags(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestHasTag(t *testing.T) {
	t.Parallel()

	task := Task{Tags: []string{"work"}}
	if !task.HasTag(" WORK ") {
		t.Fatalf("expected HasTag to normalize before matching")
	}
	if task.HasTag("home") {
		t.Fatalf("unexpected membership for home")
	}
}

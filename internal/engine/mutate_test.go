package engine

import (
	"errors"
	"strings"
	"testing"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

func TestCreate_DefaultsAndNormalization(t *testing.T) {
	svc := seedService(t, nil)

	got, err := svc.Create(model.Task{Title: "New task", Tags: []string{" Work ", "work", ""}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Priority != model.PriorityMedium {
		t.Fatalf("zero priority must default to medium; got %q", got.Priority)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "work" {
		t.Fatalf("Tags = %v, want [work]", got.Tags)
	}
	if got.ID == "" || got.CreatedAt.IsZero() {
		t.Fatalf("stored record incomplete: %+v", got)
	}
}

func TestCreate_HonorsWorkspaceDefaultPriority(t *testing.T) {
	st := store.Store{Dir: t.TempDir()}
	db := &store.DB{Version: 1, Settings: model.Settings{DefaultPriority: model.PriorityHigh}}
	if err := st.Save(db); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	svc := New(st)

	got, err := svc.Create(model.Task{Title: "Configured default"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Priority != model.PriorityHigh {
		t.Fatalf("Priority = %q, want configured high", got.Priority)
	}

	// An explicit priority still wins.
	got, err = svc.Create(model.Task{Title: "Explicit", Priority: model.PriorityLow})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Priority != model.PriorityLow {
		t.Fatalf("Priority = %q, want low", got.Priority)
	}
}

func TestCreate_InvalidTaskWritesNothing(t *testing.T) {
	svc := seedService(t, nil)

	_, err := svc.Create(model.Task{Title: "   "})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Errors) != 1 || verr.Errors[0] != "Title is required" {
		t.Fatalf("Errors = %v", verr.Errors)
	}

	tasks, err := svc.snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("rejected create must not persist; got %v", ids(tasks))
	}
}

func TestUpdate_ValidatesPatchedResult(t *testing.T) {
	svc := seedService(t, []model.Task{
		{ID: "task-1", Title: "Before", Priority: model.PriorityLow},
	})

	long := strings.Repeat("x", 201)
	_, err := svc.Update("task-1", store.Patch{Title: &long})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	cur, err := svc.Get("task-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cur.Title != "Before" {
		t.Fatalf("invalid update must not persist; Title = %q", cur.Title)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	svc := seedService(t, nil)

	title := "x"
	_, err := svc.Update("task-missing", store.Patch{Title: &title})
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != "task-missing" {
		t.Fatalf("NotFoundError.ID = %q", nf.ID)
	}
}

func TestDelete_UnknownIDLeavesCollection(t *testing.T) {
	svc := seedService(t, []model.Task{
		{ID: "task-1", Title: "Keep", Priority: model.PriorityLow},
	})

	err := svc.Delete("task-missing")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	tasks, _ := svc.snapshot()
	if len(tasks) != 1 || tasks[0].ID != "task-1" {
		t.Fatalf("collection changed: %v", ids(tasks))
	}
}

func TestToggle_RoundTrip(t *testing.T) {
	svc := seedService(t, []model.Task{
		{ID: "task-1", Title: "t", Priority: model.PriorityLow},
	})

	got, err := svc.Toggle("task-1")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !got.Completed || got.CompletedAt == nil {
		t.Fatalf("after first toggle: %+v", got)
	}

	got, err = svc.Toggle("task-1")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got.Completed || got.CompletedAt != nil {
		t.Fatalf("after second toggle: %+v", got)
	}
}

func TestAddTag_NoOpReturnsCurrentTask(t *testing.T) {
	svc := seedService(t, []model.Task{
		{ID: "task-1", Title: "t", Priority: model.PriorityLow, Tags: []string{"work"}},
	})

	before, _ := svc.Get("task-1")
	got, err := svc.AddTag("task-1", " WORK ")
	if err != nil {
		t.Fatalf("AddTag: %v", err)
	}
	if !got.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("duplicate add must not modify the task")
	}

	got, err = svc.AddTag("task-1", "   ")
	if err != nil {
		t.Fatalf("AddTag: %v", err)
	}
	if !got.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("blank add must not modify the task")
	}

	got, err = svc.AddTag("task-1", "Home")
	if err != nil {
		t.Fatalf("AddTag: %v", err)
	}
	if len(got.Tags) != 2 || got.Tags[1] != "home" {
		t.Fatalf("Tags = %v", got.Tags)
	}
}

func TestRemoveTag_LastTagClearsSlice(t *testing.T) {
	svc := seedService(t, []model.Task{
		{ID: "task-1", Title: "t", Priority: model.PriorityLow, Tags: []string{"work"}},
	})

	got, err := svc.RemoveTag("task-1", " Work ")
	if err != nil {
		t.Fatalf("RemoveTag: %v", err)
	}
	if len(got.Tags) != 0 {
		t.Fatalf("Tags = %v, want empty", got.Tags)
	}
}

func TestRemoveTag_AbsentTagStillCountsAsModification(t *testing.T) {
	svc := seedService(t, []model.Task{
		{ID: "task-1", Title: "t", Priority: model.PriorityLow, Tags: []string{"work"}},
	})

	before, _ := svc.Get("task-1")
	got, err := svc.RemoveTag("task-1", "missing")
	if err != nil {
		t.Fatalf("RemoveTag: %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "work" {
		t.Fatalf("Tags = %v", got.Tags)
	}
	if got.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("no-op removal must still bump UpdatedAt")
	}
}

func TestBulkOps_SkipMissingIDs(t *testing.T) {
	svc := seedService(t, []model.Task{
		{ID: "task-1", Title: "a", Priority: model.PriorityLow},
		{ID: "task-2", Title: "b", Priority: model.PriorityLow},
	})

	completed := true
	n, err := svc.BulkUpdate([]string{"task-1", "task-missing", "task-2"}, store.Patch{Completed: &completed})
	if err != nil {
		t.Fatalf("BulkUpdate: %v", err)
	}
	if n != 2 {
		t.Fatalf("BulkUpdate count = %d, want 2", n)
	}

	n, err = svc.BulkDelete([]string{"task-missing", "task-2"})
	if err != nil {
		t.Fatalf("BulkDelete: %v", err)
	}
	if n != 1 {
		t.Fatalf("BulkDelete count = %d, want 1", n)
	}

	tasks, _ := svc.snapshot()
	if len(tasks) != 1 || tasks[0].ID != "task-1" {
		t.Fatalf("remaining = %v", ids(tasks))
	}
}

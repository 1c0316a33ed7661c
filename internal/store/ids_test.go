package store

import (
	"strings"
	"testing"

	"taskdeck-cli/internal/model"
)

func TestNewRandomID_ShapeIsStable(t *testing.T) {
	t.Parallel()

	id, err := newRandomID("task")
	if err != nil {
		t.Fatalf("newRandomID: %v", err)
	}
	if !strings.HasPrefix(id, "task-") {
		t.Fatalf("expected task prefix, got %q", id)
	}
	suffix := strings.TrimPrefix(id, "task-")
	if got, want := len(suffix), 8; got != want {
		t.Fatalf("expected id suffix len %d, got %d (%q)", want, got, suffix)
	}
	if suffix != strings.ToLower(suffix) {
		t.Fatalf("expected lowercase suffix, got %q", suffix)
	}
}

func TestNextID_AvoidsCollisions(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	db := &DB{Tasks: []model.Task{}}

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.NextID(db, "task")
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		db.Tasks = append(db.Tasks, model.Task{ID: id})
	}
}

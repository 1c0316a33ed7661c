package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"taskdeck-cli/internal/model"
)

func TestExportImport_RoundTrip(t *testing.T) {
	t.Parallel()

	src := Store{Dir: t.TempDir()}
	due := time.Date(2026, 5, 1, 23, 59, 59, 0, time.UTC)
	a, err := src.Insert(model.Task{Title: "A", Priority: model.PriorityHigh, DueDate: &due, Tags: []string{"x"}})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := src.Insert(model.Task{Title: "B", Priority: model.PriorityLow}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	env, err := src.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(env.Tasks) != 2 {
		t.Fatalf("exported %d tasks, want 2", len(env.Tasks))
	}
	if env.ExportedAt.IsZero() {
		t.Fatalf("ExportedAt not stamped")
	}

	path := filepath.Join(t.TempDir(), "backup.json")
	if err := WriteEnvelope(path, env); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	loaded, err := ReadEnvelope(path)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}

	dst := Store{Dir: t.TempDir()}
	if _, err := dst.Insert(model.Task{Title: "stale", Priority: model.PriorityLow}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	n, err := dst.Import(loaded)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported %d tasks, want 2", n)
	}

	got, err := dst.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(got, env.Tasks) {
		t.Fatalf("import is not a replacement round trip:\n got: %#v\nwant: %#v", got, env.Tasks)
	}
	if got[0].ID != a.ID {
		t.Fatalf("ids must survive the round trip; got %q want %q", got[0].ID, a.ID)
	}
}

func TestReadEnvelope_InvalidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := WriteEnvelope(path, &Envelope{}); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	if _, err := ReadEnvelope(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing backup file")
	}
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"taskdeck-cli/internal/model"
)

const dbFileName = "db.json"

// DB is the persisted workspace state: a flat array of tasks plus settings.
type DB struct {
	Version  int            `json:"version"`
	Tasks    []model.Task   `json:"tasks"`
	Settings model.Settings `json:"settings"`
}

// Store is a handle to a workspace directory. All persistence is synchronous
// and local; failures surface as errors, never panics.
type Store struct {
	Dir string
}

const currentDBVersion = 1

func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".taskdeck")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, ".taskdeck"), nil
}

func WorkspaceDir(name string) (string, error) {
	name, err := NormalizeWorkspaceName(name)
	if err != nil {
		return "", err
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "workspaces", name), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) dbPath() string {
	return filepath.Join(s.Dir, dbFileName)
}

func (s Store) Load() (*DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.dbPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &DB{Version: currentDBVersion, Tasks: []model.Task{}}, nil
		}
		return nil, err
	}
	var db DB
	if err := json.Unmarshal(b, &db); err != nil {
		return nil, fmt.Errorf("parse %s: %w", dbFileName, err)
	}
	if db.Tasks == nil {
		db.Tasks = []model.Task{}
	}
	if db.Version == 0 {
		db.Version = currentDBVersion
	}
	return &db, nil
}

func (s Store) Save(db *DB) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(s.Dir, dbFileName+".*.tmp", s.dbPath(), b, 0o644)
}

// List returns a fresh snapshot of all stored tasks.
func (s Store) List() ([]model.Task, error) {
	db, err := s.Load()
	if err != nil {
		return nil, err
	}
	return db.Tasks, nil
}

// Insert assigns an id and timestamps, persists the task, and returns the
// stored record.
func (s Store) Insert(t model.Task) (model.Task, error) {
	db, err := s.Load()
	if err != nil {
		return model.Task{}, err
	}
	now := time.Now().UTC()
	t.ID = s.NextID(db, "task")
	t.CreatedAt = now
	t.UpdatedAt = now
	db.Tasks = append(db.Tasks, t)
	if err := s.Save(db); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// Patch is a partial-field update. Nil fields are left untouched.
// ClearDueDate nulls the due date; it wins over DueDate.
type Patch struct {
	Title         *string
	Description   *string
	Completed     *bool
	Priority      *model.Priority
	DueDate       *time.Time
	ClearDueDate  bool
	Tags          []string
	HasTags       bool
	EstimatedTime *int
	ActualTime    *int
	Notes         *string
	Links         []string
	HasLinks      bool
}

func applyPatch(t *model.Task, p Patch, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil && *p.Completed != t.Completed {
		t.ToggleComplete(now)
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.HasTags {
		t.Tags = p.Tags
	}
	if p.EstimatedTime != nil {
		t.EstimatedTime = p.EstimatedTime
	}
	if p.ActualTime != nil {
		t.ActualTime = p.ActualTime
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.HasLinks {
		t.Links = p.Links
	}
	t.UpdatedAt = now
}

// Update applies a partial update to the task with the given id. The second
// return value is false when the id is unknown; that case writes nothing.
func (s Store) Update(id string, p Patch) (model.Task, bool, error) {
	db, err := s.Load()
	if err != nil {
		return model.Task{}, false, err
	}
	idx := -1
	for i := range db.Tasks {
		if db.Tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Task{}, false, nil
	}
	applyPatch(&db.Tasks[idx], p, time.Now().UTC())
	if err := s.Save(db); err != nil {
		return model.Task{}, false, err
	}
	return db.Tasks[idx], true, nil
}

// Remove deletes the task with the given id. Unknown ids report false and
// leave the collection untouched.
func (s Store) Remove(id string) (bool, error) {
	db, err := s.Load()
	if err != nil {
		return false, err
	}
	out := db.Tasks[:0]
	found := false
	for _, t := range db.Tasks {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		return false, nil
	}
	db.Tasks = out
	if err := s.Save(db); err != nil {
		return false, err
	}
	return true, nil
}

// ReplaceAll swaps the entire task collection (bulk import/restore).
func (s Store) ReplaceAll(tasks []model.Task) error {
	db, err := s.Load()
	if err != nil {
		return err
	}
	db.Tasks = normalizeTaskSlice(tasks)
	return s.Save(db)
}

// normalizeTaskSlice keeps db.json's tasks field a JSON array, never null.
func normalizeTaskSlice(tasks []model.Task) []model.Task {
	if tasks == nil {
		return []model.Task{}
	}
	return tasks
}

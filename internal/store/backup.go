package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"taskdeck-cli/internal/model"
)

// Envelope is the backup/restore wire shape. Round-tripping an envelope
// reproduces an equivalent task collection: same ids, same field values.
type Envelope struct {
	Tasks      []model.Task   `json:"tasks"`
	Settings   model.Settings `json:"settings"`
	ExportedAt time.Time      `json:"exportedAt"`
}

// Export captures the current workspace state as an envelope.
func (s Store) Export() (*Envelope, error) {
	db, err := s.Load()
	if err != nil {
		return nil, err
	}
	return &Envelope{
		Tasks:      db.Tasks,
		Settings:   db.Settings,
		ExportedAt: time.Now().UTC(),
	}, nil
}

// Import replaces the workspace state with the envelope's contents and
// returns the number of imported tasks.
func (s Store) Import(env *Envelope) (int, error) {
	db, err := s.Load()
	if err != nil {
		return 0, err
	}
	db.Tasks = normalizeTaskSlice(env.Tasks)
	db.Settings = env.Settings
	if err := s.Save(db); err != nil {
		return 0, err
	}
	return len(db.Tasks), nil
}

// WriteEnvelope writes an envelope to a JSON file.
func WriteEnvelope(path string, env *Envelope) error {
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ReadEnvelope reads an envelope from a JSON file.
func ReadEnvelope(path string) (*Envelope, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}
	return &env, nil
}

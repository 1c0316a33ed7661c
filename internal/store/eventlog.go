package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Activity log: an append-only SQLite table recording task mutations
// (task.create, task.update, task.toggle, task.delete). The log is
// best-effort history for `taskdeck events`; a log failure must never fail
// the mutation it records.

const eventLogFileName = "activity.sqlite"

type Event struct {
	ID      string          `json:"id"`
	TS      time.Time       `json:"ts"`
	Type    string          `json:"type"`
	TaskID  string          `json:"taskId"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (s Store) eventLogPath() string {
	return filepath.Join(s.Dir, eventLogFileName)
}

func (s Store) openEventLog(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.eventLogPath())
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage. WAL enables one writer + many
	// readers; busy_timeout avoids "database is locked" flakiness when the
	// CLI and TUI write concurrently.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS events (
		event_id TEXT PRIMARY KEY,
		ts_unixms INTEGER NOT NULL,
		type TEXT NOT NULL,
		task_id TEXT NOT NULL,
		payload_json TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_events_task ON events(task_id, ts_unixms);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// AppendEvent records a task mutation in the activity log.
func (s Store) AppendEvent(ctx context.Context, typ, taskID string, payload any) error {
	db, err := s.openEventLog(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := newRandomID("ev")
	if err != nil {
		return err
	}
	b, err := json.Marshal(payload)
	if err != nil {
		b = []byte("null")
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO events(event_id, ts_unixms, type, task_id, payload_json) VALUES(?, ?, ?, ?, ?)`,
		id, time.Now().UTC().UnixMilli(), typ, taskID, string(b))
	return err
}

// ReadEvents returns the most recent events, oldest-first within the window.
// limit <= 0 means "all".
func (s Store) ReadEvents(ctx context.Context, limit int) ([]Event, error) {
	return s.readEvents(ctx, "", limit)
}

// ReadEventsForTask returns the most recent events for one task,
// oldest-first within the window. limit <= 0 means "all".
func (s Store) ReadEventsForTask(ctx context.Context, taskID string, limit int) ([]Event, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return []Event{}, nil
	}
	return s.readEvents(ctx, taskID, limit)
}

func (s Store) readEvents(ctx context.Context, taskID string, limit int) ([]Event, error) {
	db, err := s.openEventLog(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT event_id, ts_unixms, type, task_id, payload_json FROM events`
	args := []any{}
	if taskID != "" {
		q += ` WHERE task_id = ?`
		args = append(args, taskID)
	}
	// Take the tail by reading newest-first, then reverse to chronological.
	q += ` ORDER BY ts_unixms DESC, event_id DESC`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			id, typ, tid, payload string
			tsMs                  int64
		)
		if err := rows.Scan(&id, &tsMs, &typ, &tid, &payload); err != nil {
			return nil, err
		}
		raw := json.RawMessage(strings.TrimSpace(payload))
		if len(raw) == 0 {
			raw = json.RawMessage("null")
		}
		out = append(out, Event{
			ID:      id,
			TS:      time.UnixMilli(tsMs).UTC(),
			Type:    typ,
			TaskID:  tid,
			Payload: raw,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if out == nil {
		out = []Event{}
	}
	return out, nil
}

package engine

import (
	"context"
	"time"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

// Confirmer is a capability the UI host supplies for destructive intents.
// Returning false cancels the deletion.
type Confirmer func(model.Task) bool

// Service is the filter/sort/statistics engine plus the mutation surface.
// It holds no task state of its own: every query re-reads a fresh snapshot
// from the injected store, so instances are safe to construct per test.
type Service struct {
	store store.Store

	// Now is the clock used by date predicates; tests override it.
	Now func() time.Time

	// Confirm guards RequestDelete intents. Nil means "always confirmed".
	Confirm Confirmer
}

func New(s store.Store) *Service {
	return &Service{store: s, Now: time.Now}
}

func (s *Service) snapshot() ([]model.Task, error) {
	tasks, err := s.store.List()
	if err != nil {
		return nil, errStore("list", err)
	}
	return tasks, nil
}

func (s *Service) Get(id string) (model.Task, error) {
	tasks, err := s.snapshot()
	if err != nil {
		return model.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, errNotFound(id)
}

// defaultPriority resolves the priority for tasks created without one:
// the workspace settings' defaultPriority when valid, medium otherwise.
func (s *Service) defaultPriority() model.Priority {
	if db, err := s.store.Load(); err == nil && db.Settings.DefaultPriority.Valid() {
		return db.Settings.DefaultPriority
	}
	return model.PriorityMedium
}

// logEvent records a mutation in the activity log. Best-effort: history must
// never fail the mutation it describes.
func (s *Service) logEvent(typ, taskID string, payload any) {
	_ = s.store.AppendEvent(context.Background(), typ, taskID, payload)
}

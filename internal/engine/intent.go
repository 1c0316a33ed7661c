package engine

import "taskdeck-cli/internal/model"

// User actions reach the engine as typed intents rather than UI callbacks,
// so the dispatch path is unit-testable without any particular UI binding.

type Intent interface{ isIntent() }

// ToggleComplete commits immediately; the host re-renders afterwards.
type ToggleComplete struct{ ID string }

// RequestEdit resolves the task for the host's editor collaborator. It does
// not itself mutate state.
type RequestEdit struct{ ID string }

// RequestDelete asks the host's Confirmer before committing the deletion.
type RequestDelete struct{ ID string }

// ChangeFilter re-resolves the visible set for a new selector.
type ChangeFilter struct {
	Selector Selector
	Search   string
}

// ChangeSearch re-resolves the visible set for a new search string.
type ChangeSearch struct {
	Selector Selector
	Search   string
}

func (ToggleComplete) isIntent() {}
func (RequestEdit) isIntent()    {}
func (RequestDelete) isIntent()  {}
func (ChangeFilter) isIntent()   {}
func (ChangeSearch) isIntent()   {}

// Outcome is the result of dispatching one intent.
type Outcome struct {
	// Task is set for ToggleComplete and RequestEdit.
	Task *model.Task
	// Tasks is the visible set for ChangeFilter and ChangeSearch.
	Tasks []model.Task
	// Deleted reports whether RequestDelete committed (false means the
	// confirmer declined).
	Deleted bool
}

// Dispatch consumes a single intent. Mutating intents go through the same
// validation and error taxonomy as the direct service methods.
func (s *Service) Dispatch(in Intent) (Outcome, error) {
	switch in := in.(type) {
	case ToggleComplete:
		t, err := s.Toggle(in.ID)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Task: &t}, nil

	case RequestEdit:
		t, err := s.Get(in.ID)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Task: &t}, nil

	case RequestDelete:
		t, err := s.Get(in.ID)
		if err != nil {
			return Outcome{}, err
		}
		if s.Confirm != nil && !s.Confirm(t) {
			return Outcome{Deleted: false}, nil
		}
		if err := s.Delete(in.ID); err != nil {
			return Outcome{}, err
		}
		return Outcome{Deleted: true}, nil

	case ChangeFilter:
		tasks, err := s.VisibleTasks(in.Selector, in.Search)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Tasks: tasks}, nil

	case ChangeSearch:
		tasks, err := s.VisibleTasks(in.Selector, in.Search)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Tasks: tasks}, nil

	default:
		return Outcome{}, nil
	}
}

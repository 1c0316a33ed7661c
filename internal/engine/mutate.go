package engine

import (
	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

// Create validates and persists a new task. Invalid tasks are rejected with
// a ValidationError and nothing is written. Zero-value priority defaults to
// the workspace's configured default (medium when unset).
func (s *Service) Create(t model.Task) (model.Task, error) {
	if t.Priority == "" {
		t.Priority = s.defaultPriority()
	}
	if len(t.Tags) > 0 {
		tags := make([]string, 0, len(t.Tags))
		seen := map[string]bool{}
		for _, tag := range t.Tags {
			tag = model.NormalizeTag(tag)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
		t.Tags = tags
	}
	if res := t.Validate(); !res.Valid {
		return model.Task{}, ValidationError{Errors: res.Errors}
	}
	stored, err := s.store.Insert(t)
	if err != nil {
		return model.Task{}, errStore("insert", err)
	}
	s.logEvent("task.create", stored.ID, stored)
	return stored, nil
}

// Update applies a partial update. The patched task is validated before
// anything is written; unknown ids return NotFoundError.
func (s *Service) Update(id string, p store.Patch) (model.Task, error) {
	cur, err := s.Get(id)
	if err != nil {
		return model.Task{}, err
	}

	// Validate against a patched copy so invalid updates persist nothing.
	preview := cur
	previewPatch(&preview, p)
	if res := preview.Validate(); !res.Valid {
		return model.Task{}, ValidationError{Errors: res.Errors}
	}

	updated, ok, err := s.store.Update(id, p)
	if err != nil {
		return model.Task{}, errStore("update", err)
	}
	if !ok {
		return model.Task{}, errNotFound(id)
	}
	s.logEvent("task.update", id, updated)
	return updated, nil
}

// previewPatch mirrors the store's patch application for validation only.
// Timestamps and completion bookkeeping are irrelevant to structural rules.
func previewPatch(t *model.Task, p store.Patch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
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
}

// Delete removes a task. Unknown ids return NotFoundError and leave the
// collection untouched.
func (s *Service) Delete(id string) error {
	ok, err := s.store.Remove(id)
	if err != nil {
		return errStore("remove", err)
	}
	if !ok {
		return errNotFound(id)
	}
	s.logEvent("task.delete", id, nil)
	return nil
}

// Toggle flips a task's completion state and returns the updated task.
func (s *Service) Toggle(id string) (model.Task, error) {
	cur, err := s.Get(id)
	if err != nil {
		return model.Task{}, err
	}
	next := !cur.Completed
	updated, ok, err := s.store.Update(id, store.Patch{Completed: &next})
	if err != nil {
		return model.Task{}, errStore("update", err)
	}
	if !ok {
		return model.Task{}, errNotFound(id)
	}
	s.logEvent("task.toggle", id, map[string]bool{"completed": updated.Completed})
	return updated, nil
}

// AddTag attaches a normalized tag to a task. Duplicate or empty tags are a
// no-op that still returns the current task.
func (s *Service) AddTag(id, tag string) (model.Task, error) {
	cur, err := s.Get(id)
	if err != nil {
		return model.Task{}, err
	}
	next := cur
	next.Tags = append([]string(nil), cur.Tags...)
	next.AddTag(tag, s.Now())
	if len(next.Tags) == len(cur.Tags) {
		// Empty or already present; nothing to write.
		return cur, nil
	}
	updated, ok, err := s.store.Update(id, store.Patch{Tags: next.Tags, HasTags: true})
	if err != nil {
		return model.Task{}, errStore("update", err)
	}
	if !ok {
		return model.Task{}, errNotFound(id)
	}
	s.logEvent("task.update", id, updated)
	return updated, nil
}

// RemoveTag drops a tag. UpdatedAt is bumped even when the tag was absent;
// the historical contract counts a no-op removal as a modification.
func (s *Service) RemoveTag(id, tag string) (model.Task, error) {
	cur, err := s.Get(id)
	if err != nil {
		return model.Task{}, err
	}
	next := cur
	next.Tags = append([]string(nil), cur.Tags...)
	next.RemoveTag(tag, s.Now())
	updated, ok, err := s.store.Update(id, store.Patch{Tags: next.Tags, HasTags: true})
	if err != nil {
		return model.Task{}, errStore("update", err)
	}
	if !ok {
		return model.Task{}, errNotFound(id)
	}
	s.logEvent("task.update", id, updated)
	return updated, nil
}

// BulkUpdate applies one patch per id in sequence and returns the number of
// tasks actually updated. Missing ids are skipped, not errors.
func (s *Service) BulkUpdate(ids []string, p store.Patch) (int, error) {
	n := 0
	for _, id := range ids {
		updated, ok, err := s.store.Update(id, p)
		if err != nil {
			return n, errStore("update", err)
		}
		if !ok {
			continue
		}
		s.logEvent("task.update", id, updated)
		n++
	}
	return n, nil
}

// BulkDelete removes each id in sequence and returns the number deleted.
// Missing ids are skipped and do not abort remaining items.
func (s *Service) BulkDelete(ids []string) (int, error) {
	n := 0
	for _, id := range ids {
		ok, err := s.store.Remove(id)
		if err != nil {
			return n, errStore("remove", err)
		}
		if !ok {
			continue
		}
		s.logEvent("task.delete", id, nil)
		n++
	}
	return n, nil
}

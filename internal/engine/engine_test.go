package engine

import (
	"testing"
	"time"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

// testNow is the fixed clock for date-predicate tests: a mid-June Monday,
// noon local time.
var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)

func seedService(t *testing.T, tasks []model.Task) *Service {
	t.Helper()

	st := store.Store{Dir: t.TempDir()}
	if err := st.Save(&store.DB{Version: 1, Tasks: tasks}); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	svc := New(st)
	svc.Now = func() time.Time { return testNow }
	return svc
}

func timePtr(ts time.Time) *time.Time { return &ts }

func intPtr(n int) *int { return &n }

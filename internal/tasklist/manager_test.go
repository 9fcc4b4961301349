package tasklist

import (
	"context"
	"errors"
	"testing"

	"github.com/fixgalleria/fixgalleria/internal/model"
)

type fakeSaver struct {
	saved [][]model.Task
	err   error
}

func (f *fakeSaver) SaveTasks(_ context.Context, tasks []model.Task) error {
	f.saved = append(f.saved, tasks)
	return f.err
}

// checkCursorInvariant: the editing cursor is either unset or references an
// id present in the list.
func checkCursorInvariant(t *testing.T, m *Manager) {
	t.Helper()
	id, ok := m.Editing()
	if !ok {
		return
	}
	if _, found := m.Task(id); !found {
		t.Fatalf("editing cursor references absent id %d", id)
	}
}

func TestAddTrimsAndRejectsEmpty(t *testing.T) {
	ctx := context.Background()
	saver := &fakeSaver{}
	m := NewManager(saver)

	if _, ok := m.Add(ctx, ""); ok {
		t.Fatalf("Add(\"\") should be a no-op")
	}
	if _, ok := m.Add(ctx, "   "); ok {
		t.Fatalf("Add(\"   \") should be a no-op")
	}
	if m.Len() != 0 {
		t.Fatalf("expected empty list, got %d tasks", m.Len())
	}
	if len(saver.saved) != 0 {
		t.Fatalf("no-op add must not persist")
	}

	task, ok := m.Add(ctx, "  Buy milk  ")
	if !ok {
		t.Fatalf("expected add to succeed")
	}
	if task.Text != "Buy milk" {
		t.Fatalf("expected trimmed text, got %q", task.Text)
	}
	if task.Completed {
		t.Fatalf("new task must start incomplete")
	}
	if len(saver.saved) != 1 {
		t.Fatalf("expected 1 persist, got %d", len(saver.saved))
	}
}

func TestAddAssignsUniqueMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	m := NewManager(&fakeSaver{})

	a, _ := m.Add(ctx, "A")
	b, _ := m.Add(ctx, "B")
	if a.ID == b.ID {
		t.Fatalf("ids must be unique, both %d", a.ID)
	}
	if b.ID <= a.ID {
		t.Fatalf("ids must be monotonic: %d then %d", a.ID, b.ID)
	}

	// Ids stay fresh across deletion (no reuse within the session).
	m.Delete(ctx, b.ID)
	c, _ := m.Add(ctx, "C")
	if c.ID == b.ID || c.ID == a.ID {
		t.Fatalf("deleted id reused: %d", c.ID)
	}
}

func TestLoadSeedsNextIDAboveExisting(t *testing.T) {
	ctx := context.Background()
	m := NewManager(&fakeSaver{})
	m.Load([]model.Task{{ID: 7, Text: "old"}, {ID: 3, Text: "older"}})

	task, _ := m.Add(ctx, "new")
	if task.ID <= 7 {
		t.Fatalf("expected fresh id above 7, got %d", task.ID)
	}
}

func TestToggleTwiceRestoresAndKeepsOrder(t *testing.T) {
	ctx := context.Background()
	m := NewManager(&fakeSaver{})
	a, _ := m.Add(ctx, "A")
	b, _ := m.Add(ctx, "B")

	if !m.Toggle(ctx, a.ID) {
		t.Fatalf("toggle existing id failed")
	}
	if got, _ := m.Task(a.ID); !got.Completed {
		t.Fatalf("expected completed after first toggle")
	}
	m.Toggle(ctx, a.ID)
	if got, _ := m.Task(a.ID); got.Completed {
		t.Fatalf("expected original state after second toggle")
	}

	tasks := m.Tasks()
	if tasks[0].ID != a.ID || tasks[1].ID != b.ID {
		t.Fatalf("toggle changed list order: %+v", tasks)
	}

	if m.Toggle(ctx, 999) {
		t.Fatalf("toggle of absent id must be a no-op")
	}
}

func TestDeleteClearsEditingCursor(t *testing.T) {
	ctx := context.Background()
	m := NewManager(&fakeSaver{})
	a, _ := m.Add(ctx, "A")
	b, _ := m.Add(ctx, "B")
	c, _ := m.Add(ctx, "C")

	if !m.BeginEdit(b.ID) {
		t.Fatalf("begin edit failed")
	}
	if !m.Delete(ctx, b.ID) {
		t.Fatalf("delete failed")
	}
	checkCursorInvariant(t, m)
	if _, ok := m.Editing(); ok {
		t.Fatalf("deleting the edited row must clear the cursor")
	}

	tasks := m.Tasks()
	if len(tasks) != 2 || tasks[0].ID != a.ID || tasks[1].ID != c.ID {
		t.Fatalf("expected [A C] preserving order, got %+v", tasks)
	}

	if m.Delete(ctx, 999) {
		t.Fatalf("delete of absent id must be a no-op")
	}
}

func TestBeginEditRequiresPresentID(t *testing.T) {
	m := NewManager(&fakeSaver{})
	if m.BeginEdit(1) {
		t.Fatalf("begin edit on empty list must be a no-op")
	}
	if _, ok := m.Editing(); ok {
		t.Fatalf("cursor must stay unset")
	}
}

func TestSaveEditEmptyBehavesAsCancel(t *testing.T) {
	ctx := context.Background()
	saver := &fakeSaver{}
	m := NewManager(saver)
	a, _ := m.Add(ctx, "A")
	persists := len(saver.saved)

	m.BeginEdit(a.ID)
	if m.SaveEdit(ctx, a.ID, "   ") {
		t.Fatalf("empty save must report cancel")
	}
	if _, ok := m.Editing(); ok {
		t.Fatalf("cursor must be cleared")
	}
	if got, _ := m.Task(a.ID); got.Text != "A" {
		t.Fatalf("original text must be unchanged, got %q", got.Text)
	}
	if len(saver.saved) != persists {
		t.Fatalf("cancel-style save must not persist")
	}

	// Same resulting state as an explicit cancel.
	m.BeginEdit(a.ID)
	m.CancelEdit()
	if _, ok := m.Editing(); ok {
		t.Fatalf("cancel must clear the cursor")
	}
	if got, _ := m.Task(a.ID); got.Text != "A" {
		t.Fatalf("cancel must keep text, got %q", got.Text)
	}
}

func TestSaveEditTrimsAndPersists(t *testing.T) {
	ctx := context.Background()
	saver := &fakeSaver{}
	m := NewManager(saver)
	a, _ := m.Add(ctx, "A")

	m.BeginEdit(a.ID)
	if !m.SaveEdit(ctx, a.ID, "  A2  ") {
		t.Fatalf("save edit failed")
	}
	if got, _ := m.Task(a.ID); got.Text != "A2" {
		t.Fatalf("expected trimmed new text, got %q", got.Text)
	}
	if _, ok := m.Editing(); ok {
		t.Fatalf("save must clear the cursor")
	}
	last := saver.saved[len(saver.saved)-1]
	if last[0].Text != "A2" {
		t.Fatalf("persisted list must carry new text, got %+v", last)
	}
}

func TestScenarioAddToggleSaveEdit(t *testing.T) {
	ctx := context.Background()
	m := NewManager(&fakeSaver{})

	a, _ := m.Add(ctx, "A")
	b, _ := m.Add(ctx, "B")
	m.Toggle(ctx, a.ID)
	m.BeginEdit(b.ID)
	m.SaveEdit(ctx, b.ID, "B2")

	tasks := m.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Text != "A" || !tasks[0].Completed {
		t.Fatalf("expected [A completed], got %+v", tasks[0])
	}
	if tasks[1].Text != "B2" || tasks[1].Completed {
		t.Fatalf("expected [B2 incomplete], got %+v", tasks[1])
	}
	if _, ok := m.Editing(); ok {
		t.Fatalf("expected no editing cursor at end")
	}
}

// Exercise a longer randomized-ish op sequence and re-check the cursor
// invariant after every step.
func TestCursorInvariantAcrossOperationSequences(t *testing.T) {
	ctx := context.Background()
	m := NewManager(&fakeSaver{})

	ids := []int{}
	step := func(name string, f func()) {
		f()
		checkCursorInvariant(t, m)
		_ = name
	}

	for i := 0; i < 5; i++ {
		step("add", func() {
			if task, ok := m.Add(ctx, "task"); ok {
				ids = append(ids, task.ID)
			}
		})
	}
	step("beginEdit", func() { m.BeginEdit(ids[2]) })
	step("toggle", func() { m.Toggle(ctx, ids[0]) })
	step("delete-edited", func() { m.Delete(ctx, ids[2]) })
	step("beginEdit", func() { m.BeginEdit(ids[4]) })
	step("delete-other", func() { m.Delete(ctx, ids[0]) })
	step("saveEdit", func() { m.SaveEdit(ctx, ids[4], "renamed") })
	step("beginEdit-absent", func() { m.BeginEdit(ids[2]) })
	step("cancel", func() { m.CancelEdit() })
}

func TestPersistenceErrorsAreRememberedNotThrown(t *testing.T) {
	ctx := context.Background()
	saver := &fakeSaver{err: errors.New("disk full")}
	m := NewManager(saver)

	if _, ok := m.Add(ctx, "A"); !ok {
		t.Fatalf("add should still mutate in-memory state")
	}
	if m.LastErr() == nil {
		t.Fatalf("expected save error to be remembered")
	}
	if m.Len() != 1 {
		t.Fatalf("in-memory state must survive a failed save")
	}
}

func TestRowsDescriptors(t *testing.T) {
	ctx := context.Background()
	m := NewManager(&fakeSaver{})
	a, _ := m.Add(ctx, "A")
	b, _ := m.Add(ctx, "B")
	m.Toggle(ctx, a.ID)
	m.BeginEdit(b.ID)

	rows := m.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !rows[0].Completed || rows[0].Editing {
		t.Fatalf("row A: %+v", rows[0])
	}
	if !rows[1].Editing {
		t.Fatalf("row B should be editing: %+v", rows[1])
	}
	if got := rows[0].Controls(); got[0] != "edit" || got[1] != "delete" {
		t.Fatalf("viewing controls: %v", got)
	}
	if got := rows[1].Controls(); got[0] != "save" || got[1] != "cancel" {
		t.Fatalf("editing controls: %v", got)
	}

	// At most one row is ever editing.
	editing := 0
	for _, r := range rows {
		if r.Editing {
			editing++
		}
	}
	if editing != 1 {
		t.Fatalf("expected exactly 1 editing row, got %d", editing)
	}
}

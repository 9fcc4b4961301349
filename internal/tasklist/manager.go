// Package tasklist owns the in-memory task list and its single-item editing
// mode. It knows nothing about rendering: callers pull view descriptors from
// Rows and wire the controls themselves.
package tasklist

import (
	"context"
	"strings"

	"github.com/fixgalleria/fixgalleria/internal/model"
)

// Saver persists the full task list after each mutation.
type Saver interface {
	SaveTasks(ctx context.Context, tasks []model.Task) error
}

// Manager is the single owner of the task list and of the editing cursor.
// All reads and writes go through its methods; invalid inputs degrade to
// no-ops rather than propagating failures.
type Manager struct {
	saver Saver

	tasks []model.Task

	// Editing cursor: at most one task is in inline-edit mode. When set,
	// editingID always references an id present in tasks (deletion clears it).
	editingID int
	editing   bool

	nextID int

	lastErr error
}

func NewManager(saver Saver) *Manager {
	return &Manager{saver: saver, nextID: 1}
}

// Load seeds the list from store output. The store already degrades absent or
// malformed data to an empty list, so Load never fails.
func (m *Manager) Load(tasks []model.Task) {
	m.tasks = append([]model.Task(nil), tasks...)
	m.editing = false
	m.nextID = 1
	for _, t := range m.tasks {
		if t.ID >= m.nextID {
			m.nextID = t.ID + 1
		}
	}
}

// Add appends a task with fresh id and Completed=false. Whitespace-only text
// is a no-op.
func (m *Manager) Add(ctx context.Context, text string) (model.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, false
	}
	t := model.Task{ID: m.nextID, Text: text}
	m.nextID++
	m.tasks = append(m.tasks, t)
	m.persist(ctx)
	return t, true
}

// Toggle flips completion for the task with the given id.
func (m *Manager) Toggle(ctx context.Context, id int) bool {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks[i].Completed = !m.tasks[i].Completed
			m.persist(ctx)
			return true
		}
	}
	return false
}

// Delete removes the task with the given id, preserving the order of the
// rest. Deleting the row under edit clears the editing cursor.
func (m *Manager) Delete(ctx context.Context, id int) bool {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			if m.editing && m.editingID == id {
				m.editing = false
			}
			m.persist(ctx)
			return true
		}
	}
	return false
}

// BeginEdit moves the editing cursor to the given id. Transient state: no
// persistence, and an absent id is a no-op.
func (m *Manager) BeginEdit(id int) bool {
	if _, ok := m.find(id); !ok {
		return false
	}
	m.editingID = id
	m.editing = true
	return true
}

// SaveEdit replaces the task's text with the trimmed value and leaves edit
// mode. Whitespace-only text behaves as CancelEdit: cursor cleared, original
// text unchanged.
func (m *Manager) SaveEdit(ctx context.Context, id int, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		m.CancelEdit()
		return false
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks[i].Text = text
			m.editing = false
			m.persist(ctx)
			return true
		}
	}
	return false
}

// CancelEdit clears the editing cursor unconditionally.
func (m *Manager) CancelEdit() {
	m.editing = false
}

// Editing reports the id under edit, if any.
func (m *Manager) Editing() (int, bool) {
	if !m.editing {
		return 0, false
	}
	return m.editingID, true
}

func (m *Manager) Len() int { return len(m.tasks) }

// Task returns a copy of the task with the given id.
func (m *Manager) Task(id int) (model.Task, bool) {
	return m.find(id)
}

// Tasks returns a copy of the list in display order.
func (m *Manager) Tasks() []model.Task {
	return append([]model.Task(nil), m.tasks...)
}

// LastErr reports the most recent persistence failure, if any. Mutations
// never surface save errors directly; the UI shows this out of band.
func (m *Manager) LastErr() error { return m.lastErr }

func (m *Manager) find(id int) (model.Task, bool) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func (m *Manager) persist(ctx context.Context) {
	if m.saver == nil {
		return
	}
	m.lastErr = m.saver.SaveTasks(ctx, m.Tasks())
}

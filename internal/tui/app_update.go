package tui

import (
	"context"
	"strings"
	"time"

	"github.com/fixgalleria/fixgalleria/internal/imagegen"
	"github.com/fixgalleria/fixgalleria/internal/model"
	"github.com/fixgalleria/fixgalleria/internal/tasklist"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type tasksLoadedMsg struct {
	tasks []model.Task
}

type addDelayDoneMsg struct {
	text string
}

type imageResultMsg struct {
	path string
	err  error
	// openErr reports a viewer launch failure; the image is on disk either way.
	openErr error
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadTasksCmd())
}

// loadTasksCmd reads the store off the UI goroutine, after the artificial
// load delay. Store errors degrade to an empty list; startup never fails on
// bad persisted data.
func (m appModel) loadTasksCmd() tea.Cmd {
	s, delay := m.store, m.delays.Load
	return func() tea.Msg {
		if delay > 0 {
			time.Sleep(delay)
		}
		tasks, err := s.LoadTasks(context.Background())
		if err != nil {
			tasks = nil
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m appModel) addDelayCmd(text string) tea.Cmd {
	delay := m.delays.Add
	return func() tea.Msg {
		if delay > 0 {
			time.Sleep(delay)
		}
		return addDelayDoneMsg{text: text}
	}
}

// generateCmd runs the remote call, saves the result under the store dir and
// hands it to the platform image viewer. Failures carry the API's message.
func (m appModel) generateCmd(prompt string, aspect imagegen.AspectRatio) tea.Cmd {
	gen, s := m.gen, m.store
	return func() tea.Msg {
		img, err := gen.Generate(context.Background(), prompt, aspect)
		if err != nil {
			return imageResultMsg{err: err}
		}
		path, err := s.SaveImage(img.Data, img.MIMEType)
		if err != nil {
			return imageResultMsg{err: err}
		}
		return imageResultMsg{path: path, openErr: openPath(path)}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.addPending && !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tasksLoadedMsg:
		m.manager.Load(msg.tasks)
		m.loading = false
		m.clampCursor()
		return m, nil

	case addDelayDoneMsg:
		m.manager.Add(context.Background(), msg.text)
		m.addPending = false
		m.clampCursor()
		return m, nil

	case imageResultMsg:
		m.generating = false
		if msg.err != nil {
			m.genErr = msg.err.Error()
			m.lastImagePath = ""
			m.openErr = ""
			m.debugLogf("generate failed: %s", msg.err)
		} else {
			m.genErr = ""
			m.lastImagePath = msg.path
			m.openErr = ""
			if msg.openErr != nil {
				m.openErr = msg.openErr.Error()
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.debugKeyMsg(msg)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case viewHelp:
		switch msg.String() {
		case "q", "esc", "?":
			m.view = m.helpReturn
		}
		return m, nil
	case viewStudio:
		return m.updateStudioKey(msg)
	default:
		return m.updateTasksKey(msg)
	}
}

func (m appModel) updateTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.manager.Rows()

	// Inline edit captures the keyboard until save or cancel.
	if id, ok := m.manager.Editing(); ok {
		switch msg.String() {
		case "enter":
			m.manager.SaveEdit(context.Background(), id, m.editInput.Value())
			m.editInput.Blur()
			return m, nil
		case "esc":
			m.manager.CancelEdit()
			m.editInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.editInput, cmd = m.editInput.Update(msg)
		return m, cmd
	}

	// Add field captures the keyboard while focused.
	if m.addFocused {
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(m.addInput.Value())
			if text == "" || m.addPending {
				return m, nil
			}
			// Disable the add control until the append lands.
			m.addPending = true
			m.addInput.SetValue("")
			m.addInput.Blur()
			m.addFocused = false
			return m, tea.Batch(m.spin.Tick, m.addDelayCmd(text))
		case "esc":
			m.addInput.SetValue("")
			m.addInput.Blur()
			m.addFocused = false
			return m, nil
		}
		var cmd tea.Cmd
		m.addInput, cmd = m.addInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.helpReturn = m.view
		m.view = viewHelp
		return m, nil
	case "tab":
		m.view = viewStudio
		return m, m.focusPrompt()
	case "a":
		if m.loading || m.addPending {
			return m, nil
		}
		m.addFocused = true
		return m, m.addInput.Focus()
	case "j", "down":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case " ":
		if r, ok := m.selectedRow(rows); ok {
			m.manager.Toggle(context.Background(), r.ID)
		}
		return m, nil
	case "d":
		if r, ok := m.selectedRow(rows); ok {
			m.manager.Delete(context.Background(), r.ID)
			m.clampCursor()
		}
		return m, nil
	case "e", "enter":
		if r, ok := m.selectedRow(rows); ok {
			if m.manager.BeginEdit(r.ID) {
				// Pre-fill with current text, focused, cursor at end.
				m.editInput.SetValue(r.Text)
				m.editInput.CursorEnd()
				return m, m.editInput.Focus()
			}
		}
		return m, nil
	}

	return m, nil
}

func (m appModel) updateStudioKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.promptInput.Blur()
		m.view = viewTasks
		return m, nil
	case "esc", "q":
		if msg.String() == "q" && m.promptInput.Focused() {
			break // plain text entry
		}
		m.promptInput.Blur()
		m.view = viewTasks
		return m, nil
	case "up", "down":
		// Cycle the fixed aspect-ratio set.
		n := len(imagegen.AspectRatios())
		if msg.String() == "down" {
			m.aspectIdx = (m.aspectIdx + 1) % n
		} else {
			m.aspectIdx = (m.aspectIdx + n - 1) % n
		}
		return m, nil
	case "enter":
		prompt := strings.TrimSpace(m.promptInput.Value())
		if prompt == "" || m.generating {
			// Trigger is disabled while a request is outstanding.
			return m, nil
		}
		m.generating = true
		m.genErr = ""
		return m, tea.Batch(m.spin.Tick, m.generateCmd(prompt, m.aspect()))
	}

	if !m.promptInput.Focused() {
		return m, m.focusPrompt()
	}
	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

func (m *appModel) focusPrompt() tea.Cmd {
	return m.promptInput.Focus()
}

func (m appModel) selectedRow(rows []tasklist.Row) (tasklist.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(rows) {
		return tasklist.Row{}, false
	}
	return rows[m.cursor], true
}

func (m *appModel) clampCursor() {
	if n := m.manager.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

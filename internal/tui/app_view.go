package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	switch m.view {
	case viewStudio:
		return m.viewStudio()
	case viewHelp:
		return m.viewHelp()
	default:
		return m.viewTasks()
	}
}

func (m appModel) header(title string) string {
	return lipgloss.NewStyle().Bold(true).Render("Galleria " + glyphSep() + " " + title)
}

func (m appModel) viewTasks() string {
	header := m.header("Tasks")

	var b strings.Builder

	if m.loading {
		b.WriteString(m.spin.View() + " Loading tasks…\n")
	} else {
		rows := m.manager.Rows()
		if len(rows) == 0 {
			b.WriteString(styleMuted().Render("No tasks yet. Press a to add one.") + "\n")
		}
		for i, r := range rows {
			check := "[ ]"
			if r.Completed {
				check = "[x]"
			}

			var line string
			if r.Editing {
				// Editing row: inline text field replaces the label.
				line = check + " " + renderInputLine(m.width, m.editInput.View())
			} else {
				text := r.Text
				if r.Completed {
					text = lipgloss.NewStyle().Foreground(colorDone).Strikethrough(true).Render(text)
				}
				line = check + " " + text
			}

			if i == m.cursor && !r.Editing {
				line = lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	if m.addPending {
		b.WriteString("\n" + m.spin.View() + " Adding…\n")
	} else if m.addFocused {
		b.WriteString("\nAdd: " + renderInputLine(m.width, m.addInput.View()) + "\n")
	}

	if err := m.manager.LastErr(); err != nil {
		b.WriteString("\n" + styleError().Render("save failed: "+err.Error()) + "\n")
	}

	footer := styleMuted().Render(m.tasksFooter())
	return strings.Join([]string{header, b.String(), footer}, "\n")
}

// tasksFooter names the active controls: Edit/Delete while viewing,
// Save/Cancel while a row is in edit mode.
func (m appModel) tasksFooter() string {
	if _, ok := m.manager.Editing(); ok {
		return "enter: save  esc: cancel"
	}
	if m.addFocused {
		return "enter: add  esc: cancel"
	}
	return "a: add  e/enter: edit  d: delete  space: toggle  tab: studio  ?: help  q: quit"
}

func (m appModel) viewStudio() string {
	header := m.header("Image studio")

	var b strings.Builder
	b.WriteString("Prompt: " + renderInputLine(m.width, m.promptInput.View()) + "\n")
	b.WriteString(fmt.Sprintf("Aspect: %s %s\n", m.aspect(), styleMuted().Render("(up/down to change)")))
	b.WriteString("\n")

	switch {
	case m.generating:
		b.WriteString(m.spin.View() + " Generating…\n")
	case m.genErr != "":
		b.WriteString(styleError().Render("error: "+m.genErr) + "\n")
	case m.lastImagePath != "":
		b.WriteString("Saved " + m.lastImagePath + "\n")
		if m.openErr != "" {
			b.WriteString(styleMuted().Render("viewer failed: "+m.openErr) + "\n")
		}
	default:
		b.WriteString(styleMuted().Render("No image yet.") + "\n")
	}

	footer := styleMuted().Render("enter: generate  up/down: aspect  tab: tasks  esc: back")
	return strings.Join([]string{header, b.String(), footer}, "\n")
}

func glyphSep() string { return "·" }

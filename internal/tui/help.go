package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# Galleria

## Tasks

| Key | Action |
|-----|--------|
| a | add a task |
| e / enter | edit the selected task inline |
| d | delete the selected task |
| space | toggle done |
| j / k | move selection |

While editing: **enter** saves, **esc** cancels. Saving empty text cancels.

## Image studio

Type a prompt, pick an aspect ratio with up/down, press **enter**.
The image is saved under the store dir and opened in your viewer.
Requires GEMINI_API_KEY (env or .env).

## Everywhere

tab switches between tasks and studio. q quits. ? toggles this help.
`

var (
	helpMu sync.Mutex
	// Cache renderers by wrap width + style. Creating a renderer with
	// WithAutoStyle can trigger terminal queries that may block on some
	// terminals, so we pin the style and cache.
	helpRenderers = map[string]*glamour.TermRenderer{}
)

func (m appModel) viewHelp() string {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 96 {
		w = 96
	}
	body := renderHelpMarkdown(w)
	footer := styleMuted().Render("esc/q/?: back")
	return strings.Join([]string{m.header("Help"), body, footer}, "\n")
}

func renderHelpMarkdown(width int) string {
	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}
	key := style + ":" + strconv.Itoa(width)

	helpMu.Lock()
	r := helpRenderers[key]
	helpMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return helpMarkdown
		}
		helpMu.Lock()
		if existing := helpRenderers[key]; existing != nil {
			r = existing
		} else {
			helpRenderers[key] = rr
			r = rr
		}
		helpMu.Unlock()
	}

	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}

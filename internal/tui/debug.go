package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debugLogf appends one timestamped line to the file named by
// FIXGALLERIA_TUI_DEBUG_LOG. Diagnostics only; write failures are swallowed
// so logging can never break the UI.
func (m appModel) debugLogf(format string, args ...any) {
	if m.debugLogPath == "" {
		return
	}
	f, err := os.OpenFile(m.debugLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	args = append([]any{time.Now().Format(time.RFC3339)}, args...)
	fmt.Fprintf(f, "%s "+format+"\n", args...)
}

// debugKeyMsg records a key press. Compact but high-signal for diagnosing
// modifier keys and view routing.
func (m appModel) debugKeyMsg(k tea.KeyMsg) {
	if m.debugLogPath == "" {
		return
	}
	m.debugLogf("key view=%s str=%q type=%v alt=%v runes=%q",
		viewToString(m.view), k.String(), k.Type, k.Alt, string(k.Runes))
}

func viewToString(v view) string {
	switch v {
	case viewStudio:
		return "studio"
	case viewHelp:
		return "help"
	default:
		return "tasks"
	}
}

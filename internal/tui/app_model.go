package tui

import (
	"os"
	"strings"
	"time"

	"github.com/fixgalleria/fixgalleria/internal/config"
	"github.com/fixgalleria/fixgalleria/internal/imagegen"
	"github.com/fixgalleria/fixgalleria/internal/store"
	"github.com/fixgalleria/fixgalleria/internal/tasklist"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type view int

const (
	viewTasks view = iota
	viewStudio
	viewHelp
)

// Delays are the artificial pauses before the initial load completes and
// before a submitted task is actually appended. They exist purely so the
// loading indicator is perceptible; zero is valid and changes no semantics.
type Delays struct {
	Load time.Duration
	Add  time.Duration
}

func DefaultDelays() Delays {
	return Delays{Load: 600 * time.Millisecond, Add: 400 * time.Millisecond}
}

type appModel struct {
	store   store.Store
	manager *tasklist.Manager
	gen     *imagegen.Client
	delays  Delays

	width  int
	height int

	view view
	// helpReturn remembers which view "?" was pressed from.
	helpReturn view

	// debugLogPath, when set, receives key and request diagnostics.
	debugLogPath string

	spin spinner.Model

	// Tasks view. loading covers the initial store read; addPending covers
	// the artificial append delay, during which the add control stays
	// disabled (at most one add in flight).
	loading    bool
	addInput   textinput.Model
	addFocused bool
	addPending bool
	editInput  textinput.Model
	cursor     int

	// Studio view. generating disables the trigger while a request is
	// outstanding; exactly one of lastImagePath/genErr describes the last
	// completed attempt.
	promptInput   textinput.Model
	aspectIdx     int
	generating    bool
	lastImagePath string
	genErr        string
	// openErr is a viewer launch failure for lastImagePath; shown next to
	// the saved path, never in place of it.
	openErr string
}

func newAppModel(s store.Store, cfg *config.Config, delays Delays) appModel {
	m := appModel{
		store:   s,
		manager: tasklist.NewManager(s),
		gen:     imagegen.New(cfg),
		delays:  delays,
		view:    viewTasks,
		loading: true,
	}
	m.debugLogPath = strings.TrimSpace(os.Getenv("FIXGALLERIA_TUI_DEBUG_LOG"))

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = styleAccent()

	m.addInput = textinput.New()
	m.addInput.Placeholder = "What needs doing?"
	m.addInput.CharLimit = 200
	m.addInput.Width = 40

	m.editInput = textinput.New()
	m.editInput.CharLimit = 200
	m.editInput.Width = 40

	m.promptInput = textinput.New()
	m.promptInput.Placeholder = "Describe the image…"
	m.promptInput.CharLimit = 400
	m.promptInput.Width = 48

	return m
}

func (m appModel) aspect() imagegen.AspectRatio {
	ratios := imagegen.AspectRatios()
	return ratios[m.aspectIdx%len(ratios)]
}

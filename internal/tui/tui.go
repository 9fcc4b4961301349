package tui

import (
	"github.com/fixgalleria/fixgalleria/internal/config"
	"github.com/fixgalleria/fixgalleria/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(s store.Store, cfg *config.Config, delays Delays) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(s, cfg, delays)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

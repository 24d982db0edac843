package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zerodividas/zerodividas/internal/store"
)

// Run starts the interactive interface over the given store and blocks
// until the user quits.
func Run(s *store.Store) error {
	p := tea.NewProgram(New(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interface: %w", err)
	}
	return nil
}

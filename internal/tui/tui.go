package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oliCHECK24/terminal-portfolio/internal/editor"
	"github.com/oliCHECK24/terminal-portfolio/internal/store"
)

var errEmptyLabel = errors.New("label must not be empty")

// Run starts the interactive editor for one profile. An empty username edits
// the default document.
func Run(s store.Store, username string) error {
	initColorProfile()

	ed := editor.NewList(s, username)
	if err := ed.Load(); err != nil {
		return err
	}

	m := newAppModel(ed)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

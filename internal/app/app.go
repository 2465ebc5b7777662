// Package app wires the catalogue, the TUI, and the post-exit script
// handling together.
package app

import (
	"errors"
	"fmt"

	"rdct/internal/catalog"
	"rdct/internal/distro"
	"rdct/internal/script"
	"rdct/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program, then acts on the
// session outcome. Script execution happens strictly after the interactive
// loop has released the terminal.
func Run(cfg Config) error {
	dist := distro.Detect()
	tree := catalog.Build(dist)
	model := ui.NewModel(tree, dist, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	m, ok := final.(*ui.Model)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}
	if m.Outcome() == ui.OutcomeRun {
		return script.Run(m.FinalScript())
	}
	return nil
}

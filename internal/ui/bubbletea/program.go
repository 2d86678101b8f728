/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ijuttt/trackview/internal/app"
	"github.com/ijuttt/trackview/internal/config"
)

// Program runs App full-screen with mouse support. It implements ui.UI.
type Program struct {
	cfg         *config.Config
	initialPath string
	model       *App
}

// NewProgram creates a program that loads initialPath on start, if set.
func NewProgram(cfg *config.Config, initialPath string) *Program {
	return &Program{cfg: cfg, initialPath: initialPath}
}

// Run implements ui.UI.
func (p *Program) Run(state *app.State) error {
	m := NewApp(state, p.cfg, p.initialPath)
	p.model = &m

	prog := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Report motion while a button is held
	)
	_, err := prog.Run()
	return err
}

// Close implements ui.UI.
func (p *Program) Close() {
	if p.model != nil {
		p.model.Close()
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"console-controller/internal/logger"
	"console-controller/internal/registry"
	"console-controller/internal/ui"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI initializes and runs the Bubble Tea TUI application.
func RunTUI(reg *registry.Registry) error {
	m := ui.InitialModel(reg)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	logger.Info("terminal UI closed")
	return nil
}

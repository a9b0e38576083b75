// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the TUI application.
// Printable keys belong to the command input, so every binding here uses a
// control or navigation key.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Quit   key.Binding // Exit the application
	Enter  key.Binding // Run the typed command
	PgUp   key.Binding // Scroll the transcript up
	PgDown key.Binding // Scroll the transcript down
	Clear  key.Binding // Clear the input line
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc/ctrl+c", "quit"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	PgUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	PgDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll down"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "clear line"),
	),
}

// ShortHelp returns the bindings shown in the footer, in display order.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.PgUp, k.PgDown, k.Clear, k.Quit}
}

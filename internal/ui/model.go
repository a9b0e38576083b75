// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui is a Bubble Tea front end for the command registry. It offers the
// same commands as the line loop, with a scrollable transcript above an input line.
package ui

import (
	"bytes"
	"console-controller/internal/registry"
	"console-controller/internal/repl"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 1 // Title line.
	footerHeight = 2 // Input line plus key help.
)

// transcriptStyles renders diagnostics with lipgloss instead of terminal escapes.
var transcriptStyles = repl.Styles{
	Invalid: func(s string) string { return errorStyle.Render(s) },
	Failure: func(s string) string { return errorStyle.Render(s) },
}

type model struct {
	registry   *registry.Registry
	keymap     KeyMap
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	width      int
	height     int
	quitting   bool
}

// InitialModel returns a model dispatching to reg, with the banner already in
// the transcript and the input focused.
func InitialModel(reg *registry.Registry) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(repl.Prompt)
	ti.Placeholder = "help"
	ti.Focus()

	m := model{
		registry:   reg,
		keymap:     DefaultKeyMap,
		input:      ti,
		viewport:   viewport.New(80, 20),
		transcript: strings.Split(repl.Banner, "\n"),
	}
	m.refreshViewport()
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-headerHeight-footerHeight)
		m.input.Width = max(1, msg.Width-lipgloss.Width(m.input.Prompt)-1)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Enter):
			return m, m.submit()
		case key.Matches(msg, m.keymap.Clear):
			m.input.Reset()
			return m, nil
		case key.Matches(msg, m.keymap.PgUp), key.Matches(msg, m.keymap.PgDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the current input line and appends its output to the transcript.
func (m *model) submit() tea.Cmd {
	line := m.input.Value()
	m.input.Reset()
	m.transcript = append(m.transcript, repl.Prompt+inputStyle.Render(line))

	name, args := repl.Tokenize(line)
	var out bytes.Buffer
	err := repl.Dispatch(m.registry, &out, name, args, transcriptStyles)

	if s := strings.TrimRight(out.String(), "\n"); s != "" {
		m.transcript = append(m.transcript, s)
	}
	if errors.Is(err, registry.ErrExit) {
		m.quitting = true
		return tea.Quit
	}

	m.refreshViewport()
	return nil
}

func (m *model) refreshViewport() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// Transcript returns everything shown above the input line so far.
func (m *model) Transcript() string {
	return strings.Join(m.transcript, "\n")
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Interactive CLI Tool Controller"),
		m.viewport.View(),
		m.input.View(),
		m.renderFooter(),
	)
}

func (m *model) renderFooter() string {
	var help strings.Builder
	for i, b := range m.keymap.ShortHelp() {
		if i > 0 {
			help.WriteString(footerSeparatorStyle.Render(" | "))
		}
		help.WriteString(footerKeyStyle.Render(b.Help().Key))
		help.WriteString(" ")
		help.WriteString(footerDescStyle.Render(b.Help().Desc))
	}
	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render(help.String())
	}
	return help.String()
}

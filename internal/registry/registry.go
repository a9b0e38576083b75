// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package registry holds the fixed, ordered set of commands the controller
// understands. A Registry is built once at startup and is read-only afterwards;
// front ends (the line loop, the TUI, one-shot exec) share it by pointer.
package registry

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrExit is returned by a handler to ask the caller to stop processing input.
	ErrExit = errors.New("exit requested")

	// ErrUnknownCommand is returned by Dispatch when no command matches the name.
	ErrUnknownCommand = errors.New("unknown command")
)

// Context carries what a handler needs for a single invocation.
type Context struct {
	Out      io.Writer
	Args     []string
	Registry *Registry
}

// Handler executes a command given the invocation context.
type Handler func(*Context) error

// Command describes a single registered command.
type Command struct {
	Name        string
	Description string
	Action      Handler
}

// Registry is an immutable, ordered collection of commands.
type Registry struct {
	commands []Command
	index    map[string]int
}

// New builds a registry from cmds, keeping their order. It panics if a name is
// empty, repeated, or has no action.
func New(cmds ...Command) *Registry {
	r := &Registry{
		commands: make([]Command, 0, len(cmds)),
		index:    make(map[string]int, len(cmds)),
	}
	for _, c := range cmds {
		if c.Name == "" {
			panic("command name must not be empty")
		}
		if c.Action == nil {
			panic(fmt.Sprintf("command %s has no action", c.Name))
		}
		if _, exists := r.index[c.Name]; exists {
			panic(fmt.Sprintf("command %s already registered", c.Name))
		}
		r.index[c.Name] = len(r.commands)
		r.commands = append(r.commands, c)
	}
	return r
}

// Commands returns a copy of the registered commands in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Names returns the registered command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.commands))
	for i, c := range r.commands {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the command whose name matches exactly and whether it exists.
func (r *Registry) Lookup(name string) (Command, bool) {
	i, ok := r.index[name]
	if !ok {
		return Command{}, false
	}
	return r.commands[i], true
}

// Len reports how many commands are registered.
func (r *Registry) Len() int { return len(r.commands) }

// Dispatch runs the command registered under name with args, writing to out.
// It returns an error wrapping ErrUnknownCommand when name is not registered,
// and otherwise whatever the handler returns.
func (r *Registry) Dispatch(out io.Writer, name string, args []string) error {
	cmd, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
	return cmd.Action(&Context{Out: out, Args: args, Registry: r})
}

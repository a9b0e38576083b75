// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package commands provides the built-in commands of the controller:
// help, greet and exit.
package commands

import (
	"console-controller/internal/registry"
	"fmt"

	"github.com/fatih/color"
)

var headerColor = color.New(color.Bold)

// Default returns a new registry holding the built-in commands in display order.
func Default() *registry.Registry {
	return registry.New(
		registry.Command{
			Name:        "help",
			Description: "Display available commands",
			Action:      Help,
		},
		registry.Command{
			Name:        "greet",
			Description: "Greet the user with a personalized message",
			Action:      Greet,
		},
		registry.Command{
			Name:        "exit",
			Description: "Exit the program",
			Action:      Exit,
		},
	)
}

// Help lists every registered command with its description. Arguments are ignored.
func Help(ctx *registry.Context) error {
	if _, err := headerColor.Fprintln(ctx.Out, "Available commands:"); err != nil {
		return err
	}
	for _, c := range ctx.Registry.Commands() {
		if _, err := fmt.Fprintf(ctx.Out, "  %s: %s\n", c.Name, c.Description); err != nil {
			return err
		}
	}
	return nil
}

// Greet greets the first argument, or asks for a name when there is none.
func Greet(ctx *registry.Context) error {
	if len(ctx.Args) == 0 {
		_, err := fmt.Fprintln(ctx.Out, "Please provide a name to greet.")
		return err
	}
	_, err := fmt.Fprintf(ctx.Out, "Hello, %s!\n", ctx.Args[0])
	return err
}

// Exit asks the caller to stop reading input.
func Exit(*registry.Context) error {
	return registry.ErrExit
}

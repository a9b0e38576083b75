// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package repl implements the read-dispatch loop: print a prompt, read one
// line, run the matching command, repeat until exit or end of input.
package repl

import (
	"bufio"
	"console-controller/internal/logger"
	"console-controller/internal/registry"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	// Banner is printed once when the loop starts.
	Banner = "Welcome to the Interactive CLI Tool Controller!\n" +
		"Type 'help' to display available commands, or 'exit' to quit."

	// Prompt is printed before every read.
	Prompt = "> "
)

var (
	invalidColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Loop reads commands from an input stream and dispatches them to a registry.
type Loop struct {
	reg     *registry.Registry
	reader  *bufio.Reader
	out     io.Writer
	prompt  string
	banner  string
}

// Option customizes a Loop.
type Option func(*Loop)

// WithPrompt replaces the default prompt.
func WithPrompt(p string) Option {
	return func(l *Loop) { l.prompt = p }
}

// WithoutBanner suppresses the startup banner.
func WithoutBanner() Option {
	return func(l *Loop) { l.banner = "" }
}

// New returns a loop reading lines from in and writing to out.
func New(reg *registry.Registry, in io.Reader, out io.Writer, opts ...Option) *Loop {
	l := &Loop{
		reg:     reg,
		reader:  bufio.NewReader(in),
		out:     out,
		prompt:  Prompt,
		banner:  Banner,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run prints the banner and processes lines until the exit command runs, the
// input ends, or ctx is cancelled. All three are a clean stop and return nil.
func (l *Loop) Run(ctx context.Context) error {
	if l.banner != "" {
		fmt.Fprintln(l.out, l.banner)
	}
	logger.Info("loop started", "commands", l.reg.Names())

	for {
		if err := ctx.Err(); err != nil {
			logger.Info("loop cancelled", "reason", err)
			return nil
		}

		fmt.Fprint(l.out, l.prompt)
		// Lines have no length limit; a final line without a newline still counts.
		line, err := l.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		if err != nil && line == "" {
			logger.Info("input closed")
			return nil
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		if err := Execute(l.reg, l.out, line); errors.Is(err, registry.ErrExit) {
			logger.Info("exit requested")
			return nil
		}
	}
}

// Tokenize splits a line into a command name and its arguments. Runs of
// whitespace separate tokens; a blank line yields an empty name.
func Tokenize(line string) (name string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// InvalidCommandMessage is the line shown for a name that is not registered.
func InvalidCommandMessage(name string) string {
	return fmt.Sprintf("Invalid command: %s. Type 'help' for available commands.", name)
}

// Execute tokenizes line and dispatches it to reg, writing all output to out.
func Execute(reg *registry.Registry, out io.Writer, line string) error {
	name, args := Tokenize(line)
	return ExecuteArgs(reg, out, name, args)
}

// Styles renders diagnostic lines before they are written.
type Styles struct {
	Invalid func(string) string
	Failure func(string) string
}

var terminalStyles = Styles{
	Invalid: func(s string) string { return invalidColor.Sprint(s) },
	Failure: func(s string) string { return errorColor.Sprint(s) },
}

// ExecuteArgs dispatches an already tokenized command with terminal colors.
func ExecuteArgs(reg *registry.Registry, out io.Writer, name string, args []string) error {
	return Dispatch(reg, out, name, args, terminalStyles)
}

// Dispatch runs name with args against reg. Unknown names and handler failures
// are reported on out through styles; the error is still returned so callers
// can decide whether to continue. registry.ErrExit is returned untouched and
// prints nothing.
func Dispatch(reg *registry.Registry, out io.Writer, name string, args []string, styles Styles) error {
	err := reg.Dispatch(out, name, args)
	logger.Debug("dispatch", "command", name, "args", args, "found", !errors.Is(err, registry.ErrUnknownCommand))

	switch {
	case err == nil, errors.Is(err, registry.ErrExit):
	case errors.Is(err, registry.ErrUnknownCommand):
		fmt.Fprintln(out, styles.Invalid(InvalidCommandMessage(name)))
	default:
		logger.Error("command failed", "command", name, "error", err)
		fmt.Fprintln(out, styles.Failure(fmt.Sprintf("Error: %v", err)))
	}
	return err
}

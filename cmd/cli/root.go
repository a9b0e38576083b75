// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"console-controller/cmd/tui"
	"console-controller/internal/commands"
	"console-controller/internal/config"
	"console-controller/internal/logger"
	"console-controller/internal/registry"
	"console-controller/internal/repl"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

// errReported marks a failure whose message has already been printed.
var errReported = errors.New("command failed")

var rootCmd = &cobra.Command{
	Use:   "controller",
	Short: "Interactive CLI tool controller",
	Long: `An interactive command loop. Run without arguments to get a prompt that
understands 'help', 'greet <name>' and 'exit'. End of input also exits.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, loadErr := config.LoadConfig()
		// A broken optional file must not keep the prompt from starting;
		// only config show, which prints it, treats it as fatal.
		lenient := loadErr != nil && cmd != configShowCmd
		if loadErr != nil && !lenient {
			return loadErr
		}
		if lenient {
			errorColor.Fprintf(cmd.ErrOrStderr(), "Warning: %v. Using default settings.\n", loadErr)
			cfg = config.Default()
		}
		level, err := cfg.Level()
		if err != nil {
			return err
		}
		applyColorMode(cfg.Color)
		logger.Init(logger.Options{
			Level:  level,
			ToFile: !cfg.DisableLogFile,
			// stderr would draw over the full-screen UI
			ToStderr: cfg.LogToStderr && cmd != tuiCmd,
		})
		if lenient {
			logger.Warn("ignoring invalid configuration", "error", loadErr)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		loop := repl.New(commands.Default(), cmd.InOrStdin(), cmd.OutOrStdout())
		return loop.Run(cmd.Context())
	},
}

func RunCLI() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)
}

// applyColorMode overrides fatih/color's terminal detection when asked to.
func applyColorMode(mode string) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Run a single command without entering the prompt",
	Example: `  controller exec help
  controller exec greet alice`,
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	ValidArgsFunction:  commandCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "-h" || args[0] == "--help" {
			return cmd.Help()
		}
		err := repl.ExecuteArgs(commands.Default(), cmd.OutOrStdout(), args[0], args[1:])
		if err == nil || errors.Is(err, registry.ErrExit) {
			return nil
		}
		return fmt.Errorf("%w: %w", errReported, err)
	},
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands understood by the prompt",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, c := range commands.Default().Commands() {
			fmt.Fprintf(out, "%s %s\n", identifierColor.Sprintf("%-8s", c.Name), c.Description)
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the prompt in a full-screen terminal UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI(commands.Default())
	},
}

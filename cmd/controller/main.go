package main

import "console-controller/cmd/cli"

func main() {
	// With no arguments this is the interactive prompt; subcommands cover
	// one-shot exec, the terminal UI and config management.
	cli.RunCLI()
}

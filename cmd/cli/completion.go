// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"console-controller/internal/commands"
	"strings"

	"github.com/spf13/cobra"
)

// commandCompletionFunc completes the first argument of exec with registered
// command names. Later arguments are free-form.
func commandCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var suggestions []string
	for _, c := range commands.Default().Commands() {
		if strings.HasPrefix(c.Name, toComplete) {
			suggestions = append(suggestions, c.Name+"\t"+c.Description)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

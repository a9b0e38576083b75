// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package commands

import (
	"bytes"
	"console-controller/internal/registry"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

const helpOutput = "Available commands:\n" +
	"  help: Display available commands\n" +
	"  greet: Greet the user with a personalized message\n" +
	"  exit: Exit the program\n"

func TestDefaultRegistryOrder(t *testing.T) {
	reg := Default()
	assert.Equal(t, []string{"help", "greet", "exit"}, reg.Names())
}

func TestHelp(t *testing.T) {
	reg := Default()
	var out bytes.Buffer

	require.NoError(t, reg.Dispatch(&out, "help", nil))
	assert.Equal(t, helpOutput, out.String())

	out.Reset()
	require.NoError(t, reg.Dispatch(&out, "help", []string{"ignored", "args"}))
	assert.Equal(t, helpOutput, out.String())
}

func TestHelpIsIdempotent(t *testing.T) {
	reg := Default()
	var out bytes.Buffer
	for n := 0; n < 5; n++ {
		require.NoError(t, reg.Dispatch(&out, "help", nil))
	}
	assert.Equal(t, helpOutput+helpOutput+helpOutput+helpOutput+helpOutput, out.String())
}

func TestGreet(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "single name", args: []string{"alice"}, want: "Hello, alice!\n"},
		{name: "extra args ignored", args: []string{"alice", "bob"}, want: "Hello, alice!\n"},
		{name: "no args", args: nil, want: "Please provide a name to greet.\n"},
		{name: "empty slice", args: []string{}, want: "Please provide a name to greet.\n"},
		{name: "unicode name", args: []string{"Zoë"}, want: "Hello, Zoë!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Greet(&registry.Context{Out: &out, Args: tt.args}))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestExit(t *testing.T) {
	var out bytes.Buffer
	err := Default().Dispatch(&out, "exit", nil)
	assert.ErrorIs(t, err, registry.ErrExit)
	assert.Empty(t, out.String())
}

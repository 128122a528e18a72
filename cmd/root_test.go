package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Help(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "no arguments shows help",
			args: []string{},
		},
		{
			name: "help flag",
			args: []string{"--help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)

			var output bytes.Buffer
			rootCmd.SetOut(&output)
			rootCmd.SetErr(&output)

			assert.NotPanics(t, func() {
				_ = rootCmd.Execute()
			})
			assert.Contains(t, output.String(), "skiff")
		})
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "deploy")
	assert.Contains(t, names, "status")
	assert.Contains(t, names, "version")
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Execute(t *testing.T) {
	t.Run("root command shows help", func(t *testing.T) {
		_, err := executeCmd(t)
		assert.NoError(t, err)
	})

	t.Run("help flag", func(t *testing.T) {
		output, err := executeCmd(t, "--help")
		assert.NoError(t, err)
		assert.Contains(t, output, "stevedore")
		assert.Contains(t, output, "fleet")
	})
}

func TestRootCmd_Structure(t *testing.T) {
	t.Run("has expected subcommands", func(t *testing.T) {
		commands := rootCmd.Commands()
		commandNames := make([]string, 0, len(commands))
		for _, cmd := range commands {
			commandNames = append(commandNames, cmd.Name())
		}

		assert.Contains(t, commandNames, "deploy")
		assert.Contains(t, commandNames, "render")
		assert.Contains(t, commandNames, "status")
		assert.Contains(t, commandNames, "doctor")
		assert.Contains(t, commandNames, "init")
		assert.Contains(t, commandNames, "update")
	})

	t.Run("heave command is hidden", func(t *testing.T) {
		heaveFound := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == "heave" {
				heaveFound = true
				assert.True(t, cmd.Hidden)
			}
		}
		assert.True(t, heaveFound, "heave command should exist")
	})
}

func TestHeaveCmd(t *testing.T) {
	t.Run("heave command executes", func(t *testing.T) {
		_, err := executeCmd(t, "heave")
		assert.NoError(t, err)
	})
}

func TestRootCmd_Description(t *testing.T) {
	assert.Contains(t, rootCmd.Short, "fleet")
	assert.Contains(t, rootCmd.Long, "CARGO COMMANDS")
	assert.Contains(t, rootCmd.Long, "DOCKSIDE")
	assert.Contains(t, rootCmd.Long, "SETUP")
}

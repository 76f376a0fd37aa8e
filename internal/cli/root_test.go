package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, name string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(append([]string{name}, args...))
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand([]string{"/usr/local/bin/argreport"})
	require.NotNil(t, cmd)
	assert.Equal(t, "argreport", cmd.Use)
	assert.True(t, cmd.DisableFlagParsing)

	// Only hidden commands that shadow cobra's reserved names.
	assert.False(t, cmd.HasAvailableSubCommands())
	for _, sub := range cmd.Commands() {
		assert.True(t, sub.Hidden, "%s should be hidden", sub.Name())
		assert.True(t, sub.DisableFlagParsing, "%s should not parse flags", sub.Name())
	}
}

func TestRootCommand_EmptyArgv(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(nil)
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Script Name: <nil>\nArgument 1: <nil>\nArgument 2: <nil>\nArgument 3: <nil>\n", buf.String())
}

func TestRootCommand_NoArguments(t *testing.T) {
	out, err := execute(t, "./argreport")
	require.NoError(t, err)
	assert.Equal(t, "Script Name: ./argreport\nArgument 1: <nil>\nArgument 2: <nil>\nArgument 3: <nil>\n", out)
}

func TestRootCommand_TwoArguments(t *testing.T) {
	out, err := execute(t, "rotateCW", "left", "90")
	require.NoError(t, err)
	assert.Equal(t, "Script Name: rotateCW\nArgument 1: left\nArgument 2: 90\nArgument 3: <nil>\n", out)
}

func TestRootCommand_ExtraArgumentsIgnored(t *testing.T) {
	out, err := execute(t, "prog", "a", "b", "c", "d")
	require.NoError(t, err)
	assert.NotContains(t, out, "d\n")
	assert.Contains(t, out, "Argument 3: c\n")
}

func TestRootCommand_FlagsArePositional(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"help flag", []string{"--help"}, "Argument 1: --help\n"},
		{"short flag", []string{"-h", "-v"}, "Argument 2: -v\n"},
		{"help word", []string{"help"}, "Argument 1: help\n"},
		{"double dash", []string{"--", "x"}, "Argument 1: --\n"},
		{"completion request", []string{"__complete", "left", "90"}, "Argument 1: __complete\nArgument 2: left\nArgument 3: 90\n"},
		{"completion request no desc", []string{"__completeNoDesc", ""}, "Argument 1: __completeNoDesc\nArgument 2: \n"},
		{"completion after flag", []string{"--a=b", "__complete", "x"}, "Argument 1: --a=b\nArgument 2: __complete\nArgument 3: x\n"},
		{"help then args", []string{"help", "me", "now"}, "Argument 1: help\nArgument 2: me\nArgument 3: now\n"},
		{"completion word", []string{"completion", "bash"}, "Argument 1: completion\nArgument 2: bash\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "prog", tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "Usage:")
			assert.NotContains(t, out, "ShellCompDirective")
			assert.Equal(t, 4, strings.Count(out, "\n"))
		})
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRootCommand_WriteFailure(t *testing.T) {
	cmd := NewRootCommand([]string{"prog", "a"})
	cmd.SetOut(brokenWriter{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "broken pipe")
}

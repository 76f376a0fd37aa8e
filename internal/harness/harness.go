package harness

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/argreport/internal/cli"
	"github.com/roach88/argreport/internal/report"
)

// Harness executes scenarios against the root command.
type Harness struct {
	logger *slog.Logger
}

// New creates a harness that logs to logger. A nil logger discards output.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{logger: logger}
}

// Run executes a scenario with a silent harness.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Build the root command for Argv with an in-memory stdout
// 2. Execute it
// 3. Check the fixed line count
// 4. Compare against Expect, then evaluate assertions
//
// A non-nil error means the command itself failed; report mismatches are
// recorded in Result.Errors instead.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	if len(scenario.Argv) == 0 {
		return nil, fmt.Errorf("scenario %q: argv is empty", scenario.Name)
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := cli.NewRootCommand(scenario.Argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		return nil, fmt.Errorf("scenario %q: command failed: %w", scenario.Name, err)
	}

	result := NewResult()
	result.Output = stdout.String()
	result.Lines = splitLines(result.Output)

	if stderr.Len() > 0 {
		result.AddError(fmt.Sprintf("unexpected stderr output: %q", stderr.String()))
	}

	if want := report.Slots + 1; len(result.Lines) != want {
		result.AddError(fmt.Sprintf("expected %d lines, got %d", want, len(result.Lines)))
	}

	if len(scenario.Expect) > 0 {
		compareLines(scenario.Expect, result)
	}

	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(errMsg)
	}

	h.logger.Info("scenario completed",
		"name", scenario.Name,
		"args", len(scenario.Argv)-1,
		"pass", result.Pass,
		"errors", len(result.Errors),
	)

	return result, nil
}

// compareLines records a mismatch for every differing or missing line.
func compareLines(expect []string, result *Result) {
	n := max(len(expect), len(result.Lines))
	for i := 0; i < n; i++ {
		var want, got string
		if i < len(expect) {
			want = expect[i]
		}
		if i < len(result.Lines) {
			got = result.Lines[i]
		}
		if i >= len(expect) || i >= len(result.Lines) || want != got {
			result.AddError(fmt.Sprintf("line %d: expected %q, got %q", i+1, want, got))
		}
	}
}

func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

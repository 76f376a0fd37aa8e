package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/argreport/internal/report"
)

// AssertionError is returned when an assertion fails.
// It includes the captured report to help debug the failure.
type AssertionError struct {
	Type     string   // Assertion type for categorization
	Expected string   // Human-readable expected outcome
	Actual   string   // Human-readable actual outcome
	Lines    []string // Full report for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull report:\n")
	for i, line := range e.Lines {
		fmt.Fprintf(&buf, "  [%d] %s\n", i+1, line)
	}

	return buf.String()
}

// EvaluateAssertions runs every assertion and returns failure messages.
// An empty slice means all assertions passed.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string
	for i, a := range assertions {
		if err := evaluateAssertion(result.Lines, a); err != nil {
			errs = append(errs, fmt.Sprintf("assertion %d: %v", i, err))
		}
	}
	return errs
}

func evaluateAssertion(lines []string, a Assertion) error {
	switch a.Type {
	case AssertLineEquals:
		return assertLineEquals(lines, a.Line, a.Value)
	case AssertLineCount:
		return assertLineCount(lines, a.Count)
	case AssertAbsent:
		return assertSlot(lines, a.Slot, report.NullMarker, AssertAbsent)
	case AssertPresent:
		return assertSlot(lines, a.Slot, a.Value, AssertPresent)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// assertLineEquals checks that the 1-indexed line equals want exactly.
func assertLineEquals(lines []string, line int, want string) error {
	if line < 1 || line > len(lines) {
		return &AssertionError{
			Type:     AssertLineEquals,
			Expected: fmt.Sprintf("line %d = %q", line, want),
			Actual:   fmt.Sprintf("report has %d lines", len(lines)),
			Lines:    lines,
		}
	}
	if got := lines[line-1]; got != want {
		return &AssertionError{
			Type:     AssertLineEquals,
			Expected: fmt.Sprintf("line %d = %q", line, want),
			Actual:   fmt.Sprintf("%q", got),
			Lines:    lines,
		}
	}
	return nil
}

func assertLineCount(lines []string, want int) error {
	if len(lines) != want {
		return &AssertionError{
			Type:     AssertLineCount,
			Expected: fmt.Sprintf("%d lines", want),
			Actual:   fmt.Sprintf("%d lines", len(lines)),
			Lines:    lines,
		}
	}
	return nil
}

// assertSlot checks the argument line for slot. Argument lines follow the
// script name line, so slot N is report line N+1.
func assertSlot(lines []string, slot int, value, kind string) error {
	want := fmt.Sprintf("Argument %d: %s", slot, value)
	if err := assertLineEquals(lines, slot+1, want); err != nil {
		err.(*AssertionError).Type = kind
		return err
	}
	return nil
}

// Package report renders the argument report: the invocation name followed by
// the first three positional arguments, one labeled line each.
//
// Slots are fixed. Arguments beyond the third are ignored and missing ones are
// rendered as NullMarker. Values are written byte-for-byte with no quoting or
// trimming, so an empty argument ("") is distinguishable from an absent one.
package report

import (
	"fmt"
	"io"
)

// NullMarker is printed for a slot the caller did not supply.
// It matches what fmt prints for a nil value.
const NullMarker = "<nil>"

// Slots is the number of positional arguments reported.
const Slots = 3

// Report holds one invocation's name and positional argument slots.
// A nil pointer means the value was absent.
type Report struct {
	ScriptName *string
	Args       [Slots]*string
}

// FromArgv builds a Report from a host-style argv, where argv[0] is the
// invocation name. An empty argv yields an absent name.
func FromArgv(argv []string) Report {
	var r Report
	if len(argv) > 0 {
		r.ScriptName = &argv[0]
	}
	for i := 1; i <= Slots; i++ {
		if i < len(argv) {
			r.Args[i-1] = &argv[i]
		}
	}
	return r
}

// Lines returns the labeled report lines, without trailing newlines.
func (r Report) Lines() []string {
	lines := make([]string, 0, Slots+1)
	lines = append(lines, "Script Name: "+render(r.ScriptName))
	for i, a := range r.Args {
		lines = append(lines, fmt.Sprintf("Argument %d: %s", i+1, render(a)))
	}
	return lines
}

// WriteTo writes each line followed by a newline.
// The only possible error is one returned by w.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range r.Lines() {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Run reports argv to w.
func Run(w io.Writer, argv []string) error {
	if _, err := FromArgv(argv).WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func render(v *string) string {
	if v == nil {
		return NullMarker
	}
	return *v
}

// Package harness provides conformance testing for the argreport command.
//
// A scenario supplies an argv, runs it through the real root command with an
// in-memory stdout, and checks the captured report.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: left_ninety
//	description: "Two arguments, third slot absent"
//	argv: [rotateCW, left, "90"]
//	expect:
//	  - "Script Name: rotateCW"
//	  - "Argument 1: left"
//	  - "Argument 2: 90"
//	  - "Argument 3: <nil>"
//	assertions:
//	  - type: line_equals
//	    line: 2
//	    value: "Argument 1: left"
//	  - type: absent
//	    slot: 3
//
// argv[0] is the invocation name. Quote numeric arguments so YAML keeps
// them as strings.
//
// # Assertion Types
//
//   - line_equals: line N (1-indexed) equals value exactly
//   - line_count: the report has exactly count lines
//   - absent: argument slot N shows the null marker
//   - present: argument slot N shows value
//
// # Golden Files
//
// RunWithGolden compares the raw report against testdata/golden/{name}.golden.
// Regenerate with:
//
//	go test ./internal/harness -update
package harness

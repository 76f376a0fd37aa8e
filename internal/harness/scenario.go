package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: one invocation and the report
// it must produce.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Argv is the full argument vector; Argv[0] is the invocation name.
	Argv []string `yaml:"argv"`

	// Expect is the full expected report, one entry per line.
	// If empty, only assertions are checked.
	Expect []string `yaml:"expect,omitempty"`

	// Assertions are targeted checks against the captured report.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion validates part of the captured report.
type Assertion struct {
	// Type specifies the assertion type:
	// - "line_equals": line Line equals Value
	// - "line_count": report has exactly Count lines
	// - "absent": argument slot Slot shows the null marker
	// - "present": argument slot Slot shows Value
	Type string `yaml:"type"`

	// Line is the 1-indexed report line (used by line_equals).
	Line int `yaml:"line,omitempty"`

	// Slot is the 1-indexed argument slot (used by absent, present).
	Slot int `yaml:"slot,omitempty"`

	// Value is the expected text (used by line_equals, present).
	Value string `yaml:"value,omitempty"`

	// Count is the expected number of lines (used by line_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertLineEquals = "line_equals"
	AssertLineCount  = "line_count"
	AssertAbsent     = "absent"
	AssertPresent    = "present"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
// Scenario names must be unique within the directory.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	sort.Strings(paths)

	seen := make(map[string]string, len(paths))
	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if prev, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("duplicate scenario name %q in %s and %s", s.Name, prev, filepath.Base(path))
		}
		seen[s.Name] = filepath.Base(path)
		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(s.Argv) == 0 {
		return fmt.Errorf("argv is required and must include the invocation name")
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, a); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertLineEquals:
		if a.Line < 1 {
			return fmt.Errorf("assertions[%d]: line must be >= 1 for line_equals", index)
		}
	case AssertLineCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be >= 0 for line_count", index)
		}
	case AssertAbsent, AssertPresent:
		if a.Slot < 1 {
			return fmt.Errorf("assertions[%d]: slot must be >= 1 for %s", index, a.Type)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown type %q", index, a.Type)
	}
	return nil
}

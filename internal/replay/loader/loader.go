package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseScenario parses a scenario from YAML bytes.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if err := Validate(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// ParseSuite parses a suite of scenarios from YAML bytes.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if len(s.Scenarios) == 0 {
		return nil, &LoadError{Message: "suite must have at least one scenario"}
	}

	seen := make(map[string]bool)
	for i, sc := range s.Scenarios {
		if sc == nil {
			return nil, &LoadError{Message: fmt.Sprintf("scenario %d is empty", i+1)}
		}
		if err := Validate(sc); err != nil {
			return nil, err
		}
		if seen[sc.ID] {
			return nil, &LoadError{Message: fmt.Sprintf("duplicate scenario ID %q", sc.ID)}
		}
		seen[sc.ID] = true
	}
	return &s, nil
}

// Validate checks a scenario for structural errors.
func Validate(sc *Scenario) error {
	if sc == nil {
		return &LoadError{Message: "scenario is empty"}
	}
	if sc.ID == "" {
		return &LoadError{Message: "scenario ID is required"}
	}
	if len(sc.Steps) == 0 {
		return &LoadError{Message: fmt.Sprintf("scenario %s must have at least one step", sc.ID)}
	}

	for i, step := range sc.Steps {
		if err := validateStep(step); err != nil {
			return &LoadError{
				Message: fmt.Sprintf("scenario %s step %d", sc.ID, i+1),
				Cause:   err,
			}
		}
	}
	return nil
}

func validateStep(step Step) error {
	switch step.Action {
	case ActionContentLoaded:
		if step.Content == nil {
			return errors.New("content_loaded requires content")
		}
	case ActionDeviceChanged:
	case ActionContentRemoved, ActionDeviceRemoved:
		if step.OldKey != "" {
			return fmt.Errorf("%s does not take old_key", step.Action)
		}
	case "":
		return errors.New("action is required")
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}

	if step.Key == "" {
		return errors.New("key is required")
	}

	for _, e := range step.Expect {
		if e.Event != EventLoaded && e.Event != EventRemoved {
			return fmt.Errorf("unknown expected event %q", e.Event)
		}
		if e.Key == "" {
			return errors.New("expected emission requires key")
		}
	}
	return nil
}

// LoadFile loads a file holding either a single scenario or a suite
// (a top-level "scenarios" list).
func LoadFile(path string) ([]*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	var head struct {
		Scenarios []yaml.Node `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, &LoadError{File: path, Message: "failed to parse YAML", Cause: err}
	}

	if len(head.Scenarios) > 0 {
		suite, err := ParseSuite(data)
		if err != nil {
			return nil, withFile(err, path)
		}
		return suite.Scenarios, nil
	}

	sc, err := ParseScenario(data)
	if err != nil {
		return nil, withFile(err, path)
	}
	return []*Scenario{sc}, nil
}

// LoadDirectory loads all scenarios from .yaml/.yml files in dir, in
// lexical file order. Subdirectories are not visited.
func LoadDirectory(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	var scenarios []*Scenario
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}

		loaded, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, loaded...)
	}

	return scenarios, nil
}

// LoadPath loads scenarios from a file or a directory.
func LoadPath(path string) ([]*Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to stat path", Cause: err}
	}
	if info.IsDir() {
		return LoadDirectory(path)
	}
	return LoadFile(path)
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func withFile(err error, path string) error {
	var le *LoadError
	if errors.As(err, &le) {
		le.File = path
		return le
	}
	return &LoadError{File: path, Message: err.Error()}
}

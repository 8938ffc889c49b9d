package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Case is one conformance scenario: a source program plus exactly one
// expected outcome.
type Case struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	// Type is the expected formatted type of a well-typed program.
	Type string `yaml:"type,omitempty"`
	// Result is the expected printed value, when evaluation is expected to
	// succeed. Requires Type.
	Result string `yaml:"result,omitempty"`
	// CheckError is the expected type-error kind (e.g. "UnboundVariable").
	CheckError string `yaml:"check_error,omitempty"`
	// ParseError marks a program expected to fail before checking.
	ParseError bool `yaml:"parse_error,omitempty"`
}

// Suite is a named collection of conformance cases.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// LoadSuite parses a conformance suite from disk.
func LoadSuite(path string) (*Suite, error) {
	if path == "" {
		return nil, fmt.Errorf("suite: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("suite: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var suite Suite
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("suite: parse %s: %w", abs, err)
	}
	if err := suite.validate(); err != nil {
		return nil, fmt.Errorf("suite: %s: %w", abs, err)
	}
	return &suite, nil
}

func (s *Suite) validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("no cases")
	}
	for i, c := range s.Cases {
		label := c.Name
		if label == "" {
			return fmt.Errorf("case %d: missing name", i)
		}
		if strings.TrimSpace(c.Source) == "" {
			return fmt.Errorf("case %s: missing source", label)
		}
		expectations := 0
		if c.Type != "" {
			expectations++
		}
		if c.CheckError != "" {
			expectations++
		}
		if c.ParseError {
			expectations++
		}
		if expectations != 1 {
			return fmt.Errorf("case %s: want exactly one of type, check_error, parse_error", label)
		}
		if c.Result != "" && c.Type == "" {
			return fmt.Errorf("case %s: result requires type", label)
		}
	}
	return nil
}

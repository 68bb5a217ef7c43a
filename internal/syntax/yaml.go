package syntax

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape a syntax table loads from: a flat list of
// operator spellings plus a map of block openers to their closers.
type document struct {
	Operators []string          `yaml:"operators"`
	Blocks    map[string]string `yaml:"blocks"`
}

// LoadTableYAML reads a syntax table description in the form:
//
//	operators: ["+", "-", "*", "/", "<=", ...]
//	blocks:
//	  "(": ")"
//	  "[": "]"
func LoadTableYAML(r io.Reader) (Table, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("syntax: decode table: %w", err)
	}
	return New(doc.Operators, doc.Blocks), nil
}

package aoc

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Answers are the known answers for the real puzzle input, keyed by day and
// then part.
//
// The YAML form is
//
//	1:
//	  "1": "988771"
//	  "2": "171933104"
type Answers map[int]map[string]string

// Lookup returns the recorded answer for the day and part.
func (a Answers) Lookup(day int, part string) (string, bool) {
	v, ok := a[day][part]
	return v, ok
}

// ParseAnswers parses the YAML form of Answers.
func ParseAnswers(b []byte) (Answers, error) {
	var a Answers
	if err := yaml.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}
	return a, nil
}

// LoadAnswers reads and parses the named answers file from fsys. A missing
// file yields no answers.
func LoadAnswers(fsys fs.FS, name string) (Answers, error) {
	b, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseAnswers(b)
}

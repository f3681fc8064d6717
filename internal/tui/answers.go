package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAnswers reads form answers from a YAML file. Unknown keys are
// rejected so typos do not silently drop a value.
func LoadAnswers(path string) (*Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening answers file: %w", err)
	}
	defer f.Close()

	return decodeAnswers(f)
}

func decodeAnswers(r io.Reader) (*Answers, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var a Answers
	if err := dec.Decode(&a); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding answers file: %w", err)
	}
	return &a, nil
}
